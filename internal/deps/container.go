package deps

import (
	"gorm.io/gorm"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/sanitizer"
	"github.com/joefazee/travelsheet/internal/security"
)

// Service keys shared by main and the module mounters.
const (
	ServiceCatalog   = "catalog"
	ServiceFavorites = "favorites"
	ServiceSessions  = "browse.sessions"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger

	// Store services as interfaces to avoid imports
	services map[string]interface{}
}

func NewContainer(db *gorm.DB, tokenMaker security.Maker, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Container {
	return &Container{
		DB:         db,
		TokenMaker: tokenMaker,
		Sanitizer:  sanitizer,
		Logger:     logger,
		services:   make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
