package favorites

import (
	"fmt"
	"time"

	"github.com/joefazee/travelsheet/internal/kvstore"
	"github.com/joefazee/travelsheet/models"
)

const (
	BackendMemory   = kvstore.MemoryBackend
	BackendRedis    = kvstore.RedisBackend
	BackendDatabase = "database"
)

// Config represents the configuration for the favorites module
type Config struct {
	Backend  string        `env:"FAVORITES_BACKEND" env-default:"memory"`
	StoreTTL time.Duration `env:"FAVORITES_STORE_TTL" env-default:"30m"`
	Redis    kvstore.RedisOptions
}

// Validate validates the favorites configuration
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendRedis, BackendDatabase:
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownFavoritesMode, c.Backend)
	}
	if c.StoreTTL < 0 {
		return fmt.Errorf("favorites store ttl must not be negative")
	}
	return nil
}
