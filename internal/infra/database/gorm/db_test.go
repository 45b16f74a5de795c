package gorm

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"climate-api/internal/infra/database"
	"climate-api/internal/testinfra"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/gorm/logger"
)

func createDatabase(t *testing.T, schema string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hawaii.sqlite")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	db, err := Open(database.Config{Driver: database.DriverSQLite, Access: database.AccessGorm, Path: createDatabase(t, testinfra.Schema), LogLevel: "silent"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if db.Dialector.Name() != "sqlite" {
		t.Fatalf("dialector = %s", db.Dialector.Name())
	}
	if err := Close(db); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_MissingTable(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE station (id INTEGER PRIMARY KEY, station TEXT);`)

	_, err := Open(database.Config{Driver: database.DriverSQLite, Access: database.AccessGorm, Path: path, LogLevel: "silent"})
	if err == nil || !strings.Contains(err.Error(), "measurement") {
		t.Fatalf("Open error = %v, want missing measurement table", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(database.Config{Driver: "oracle"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		" info ": logger.Info,
		"warn":   logger.Warn,
		"":       logger.Warn,
	}

	for value, want := range tests {
		if got := parseLogLevel(value); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", value, got, want)
		}
	}
}
