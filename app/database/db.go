package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/joefazee/travelsheet/models"

	// import necessary for gorm to recognize the postgres driver
	_ "github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver      string `env:"DB_DRIVER" env-default:"postgres"`
	Host        string `env:"DB_HOST"`
	Port        string `env:"DB_PORT" env-default:"5432"`
	User        string `env:"DB_USER"`
	Password    string `env:"DB_PASSWORD"`
	Database    string `env:"DB_NAME"`
	SQLitePath  string `env:"DB_SQLITE_PATH" env-default:"travelsheet.db"`
	UseSSL      bool   `env:"DB_SSL_MODE"`
	LogQuery    bool   `env:"DB_LOG_QUERY"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" ||
			c.Password == "" || c.Database == "" || c.User == "" {
			return models.ErrDatabaseCredentialNotConfigured
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return models.ErrDatabaseCredentialNotConfigured
		}
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownDatabaseDriver, c.Driver)
	}
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}

	SSLMode := "disable"
	if c.UseSSL {
		SSLMode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, SSLMode)
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	dialector := postgres.Open(c.DSN())
	if c.Driver == DriverSQLite {
		dialector = sqlite.Open(c.DSN())
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if c.Driver == DriverSQLite {
		// sqlite serialises writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if c.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the tables owned by the service
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Favorite{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
