package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessage_BundledCatalog(t *testing.T) {
	got := GetMessage("climate.error.range-order", "2017-02-01", "2017-01-01")
	want := "start date 2017-02-01 is after end date 2017-01-01"
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}
}

func TestGetMessage_Missing(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "Message not found: does.not.exist" {
		t.Fatalf("GetMessage = %q", got)
	}
}

func TestGetMessage_NonPrimitiveArgIsJSON(t *testing.T) {
	got := GetMessage("cache.warn.get-failed", []string{"a"}, 3)
	want := `Cache read failed for key ["a"]: 3`
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}
}

func TestInit_OverlaysCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "custom:\n  greeting: \"hello {0}\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetMessage("custom.greeting", "station"); got != "hello station" {
		t.Fatalf("GetMessage = %q", got)
	}
	if got := GetMessage("app.stop"); got != "Shutting down climate-api" {
		t.Fatalf("bundled message lost after overlay: %q", got)
	}
}

func TestInit_MissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("Init on a missing file should fail")
	}
}
