package countries

import (
	"time"

	"github.com/joefazee/travelsheet/models"
)

// Config represents the configuration for the countries module
type Config struct {
	DataPath    string        `env:"DATA_PATH" env-default:"data.json"`
	DataURL     string        `env:"DATA_URL"`
	LoadTimeout time.Duration `env:"DATA_LOAD_TIMEOUT" env-default:"30s"`
}

// Validate validates the countries configuration
func (c *Config) Validate() error {
	if c.DataPath == "" && c.DataURL == "" {
		return models.ErrNoDataSource
	}
	return nil
}

// NewSource picks the remote document when DataURL is set, the local file otherwise.
func (c *Config) NewSource() Source {
	if c.DataURL != "" {
		return NewHTTPSource(c.DataURL, nil)
	}
	return NewFileSource(c.DataPath)
}
