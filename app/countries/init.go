package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/sanitizer"
)

// Dependencies represent the dependencies needed for the countries module
type Dependencies struct {
	Catalog   Repository
	Favorites FavoritesProvider
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
}

// Init initializes the countries module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	srvs := NewService(deps.Catalog)
	handler := NewHandler(srvs, deps.Favorites, deps.Sanitizer, deps.Logger)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.ListCountries)
	countriesGroup.GET("/:code", handler.GetCountry)
	countriesGroup.GET("/:code/neighbors", handler.GetNeighbors)

	r.GET("/aliases/:code", handler.GetAliases)
}
