package app

import (
	"time"

	"github.com/joefazee/travelsheet/app/browse"
	"github.com/joefazee/travelsheet/app/countries"
	"github.com/joefazee/travelsheet/app/database"
	"github.com/joefazee/travelsheet/app/favorites"
	"github.com/joefazee/travelsheet/internal/nexus"
)

type Config struct {
	DB        database.Config
	Countries countries.Config
	Favorites favorites.Config
	Browse    browse.Config

	VisitorTokenKey string        `env:"VISITOR_TOKEN_KEY" validate:"len=32"`
	VisitorTokenTTL time.Duration `env:"VISITOR_TOKEN_TTL" env-default:"8760h"`

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error off"`
}

// Validate checks every module configuration. The database is only required
// when favorites are stored in it.
func (c *Config) Validate() error {
	if err := c.Countries.Validate(); err != nil {
		return err
	}
	if err := c.Favorites.Validate(); err != nil {
		return err
	}
	if err := c.Browse.Validate(); err != nil {
		return err
	}
	if c.Favorites.Backend == favorites.BackendDatabase {
		return c.DB.Validate()
	}
	return nil
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	if err := nexus.NewLoader().Load(c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}
