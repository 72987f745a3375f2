package favorites

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/travelsheet/internal/kvstore"
	"github.com/joefazee/travelsheet/internal/logger"
)

// Dependencies represent the dependencies needed for the favorites module
type Dependencies struct {
	Service Service
	Logger  logger.Logger
}

// NewPersistence builds the persistence selected by cfg. db is only needed
// for the database backend.
func NewPersistence(cfg *Config, db *gorm.DB) (Persistence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Backend == BackendDatabase {
		if db == nil {
			return nil, fmt.Errorf("favorites backend %q requires a database", cfg.Backend)
		}
		return NewRepository(db), nil
	}

	store, err := kvstore.New[[]string](cfg.Backend, &cfg.Redis)
	if err != nil {
		return nil, err
	}
	return NewKVPersistence(store), nil
}

// Init mounts the favorites routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Service, deps.Logger)

	favoritesGroup := r.Group("/favorites")
	favoritesGroup.GET("", handler.ListFavorites)
	favoritesGroup.POST("/:code/toggle", handler.ToggleFavorite)
}
