package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"climate-api/pkg/msg"
	"climate-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	AccessGorm = "gorm"
	AccessSQLC = "sqlc"
)

// RequiredTables are the tables the climate gateways read from
var RequiredTables = []string{"measurement", "station"}

// Config describes the data source, read from the app.db.* properties
type Config struct {
	Driver          string
	Access          string
	Path            string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// LoadConfig builds the Config from the loaded properties
func LoadConfig() Config {
	return Config{
		Driver:          strings.ToLower(resource.GetString("app.db.driver")),
		Access:          strings.ToLower(resource.GetString("app.db.access")),
		Path:            resource.GetString("app.db.path"),
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetString("app.db.schema"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
		LogLevel:        resource.GetString("app.db.log-level"),
	}
}

// Validate checks driver and access mode before any connection is attempted
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("app.db.path is required for the %s driver", c.Driver)
		}
	case DriverPostgres:
	default:
		return errors.New(msg.GetMessage("db.error.unsupported-driver", c.Driver))
	}

	switch c.Access {
	case AccessGorm, AccessSQLC:
	default:
		return errors.New(msg.GetMessage("db.error.unsupported-access", c.Access))
	}
	return nil
}

// SQLiteDSN opens the database file read-only; an absent file is an error, never created
func (c Config) SQLiteDSN() string {
	if strings.HasPrefix(c.Path, "file:") {
		return c.Path
	}
	return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", c.Path)
}

// PostgresDSN builds a libpq keyword/value connection string
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.Schema)
}
