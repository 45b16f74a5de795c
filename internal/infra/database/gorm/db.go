package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"climate-api/internal/domain/entity"
	"climate-api/internal/infra/database"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects GORM to the configured driver and checks the climate tables exist
func Open(cfg database.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case database.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLiteDSN())
	case database.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, errors.New(msg.GetMessage("db.error.unsupported-driver", cfg.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newLogger(cfg.LogLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("gorm ping: %w", err)
	}

	if err := VerifySchema(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// VerifySchema fails when the measurement or station table is absent
func VerifySchema(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range []interface{}{&entity.Measurement{}, &entity.Station{}} {
		if !migrator.HasTable(model) {
			name := model.(interface{ TableName() string }).TableName()
			return errors.New(msg.GetMessage("db.error.missing-table", name))
		}
	}
	return nil
}

// Close releases the pool behind the GORM handle
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// zapWriter forwards GORM log lines to the application logger
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func newLogger(level string) logger.Interface {
	return logger.New(zapWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
