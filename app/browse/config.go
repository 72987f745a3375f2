package browse

import (
	"errors"
	"time"
)

// Config represents the configuration for the browse module
type Config struct {
	SessionTTL    time.Duration `env:"BROWSE_SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `env:"BROWSE_SWEEP_INTERVAL" env-default:"1m"`
}

// Validate validates the browse configuration
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return errors.New("browse session ttl must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("browse sweep interval must be positive")
	}
	return nil
}
