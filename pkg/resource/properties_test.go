package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProperties = `
app:
  name: climate-api
  server:
    port: ${TEST_CLIMATE_PORT:8080}
    context-path: ${TEST_CLIMATE_CONTEXT:}
  db:
    driver: sqlite
    max-open-conns: 4
  redis:
    cache-ttl: 15m
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(testProperties), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestInit_ResolvesDefaults(t *testing.T) {
	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetString("app.name"); got != "climate-api" {
		t.Errorf("app.name = %q", got)
	}
	if got := GetInt("app.server.port"); got != 8080 {
		t.Errorf("app.server.port = %d, want 8080", got)
	}
	if got := GetString("app.server.context-path"); got != "" {
		t.Errorf("app.server.context-path = %q, want empty", got)
	}
	if got := GetInt("app.db.max-open-conns"); got != 4 {
		t.Errorf("app.db.max-open-conns = %d, want 4", got)
	}
	if got := GetDuration("app.redis.cache-ttl"); got != 15*time.Minute {
		t.Errorf("app.redis.cache-ttl = %v, want 15m", got)
	}
}

func TestInit_ResolvesEnvironment(t *testing.T) {
	t.Setenv("TEST_CLIMATE_PORT", "9090")
	t.Setenv("TEST_CLIMATE_CONTEXT", "/climate")

	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("app.server.port = %d, want 9090", got)
	}
	if got := GetString("app.server.context-path"); got != "/climate" {
		t.Errorf("app.server.context-path = %q, want /climate", got)
	}
}

func TestSetDefault(t *testing.T) {
	SetDefault("app.test.only-default", "fallback")
	if got := GetString("app.test.only-default"); got != "fallback" {
		t.Errorf("GetString = %q, want fallback", got)
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TEST_CLIMATE_SET", "value")

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "${TEST_CLIMATE_SET:other}", want: "value"},
		{in: "${TEST_CLIMATE_UNSET:other}", want: "other"},
		{in: "${TEST_CLIMATE_UNSET}", want: ""},
		{in: "0 */30 * * * *", want: "0 */30 * * * *"},
	}

	for _, tt := range tests {
		if got := resolveEnvVariable(tt.in); got != tt.want {
			t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInit_MissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("Init on a missing file should fail")
	}
}
