package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"climate-api/internal/infra/database"
	"climate-api/pkg/msg"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTableQuery   = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`
	postgresTableQuery = `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1`
)

// Open connects database/sql to the configured driver and checks the climate tables exist
func Open(cfg database.Config) (*sql.DB, error) {
	driverName, dsn, err := driverAndDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := VerifySchema(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// VerifySchema fails when one of the required tables is absent
func VerifySchema(ctx context.Context, db *sql.DB, driver string) error {
	query := sqliteTableQuery
	if driver == database.DriverPostgres {
		query = postgresTableQuery
	}

	for _, table := range database.RequiredTables {
		var count int
		if err := db.QueryRowContext(ctx, query, table).Scan(&count); err != nil {
			return fmt.Errorf("inspect table %s: %w", table, err)
		}
		if count == 0 {
			return errors.New(msg.GetMessage("db.error.missing-table", table))
		}
	}
	return nil
}

// Close releases the pool
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

func driverAndDSN(cfg database.Config) (string, string, error) {
	switch cfg.Driver {
	case database.DriverSQLite:
		return "sqlite3", cfg.SQLiteDSN(), nil
	case database.DriverPostgres:
		return "postgres", cfg.PostgresDSN(), nil
	default:
		return "", "", errors.New(msg.GetMessage("db.error.unsupported-driver", cfg.Driver))
	}
}
