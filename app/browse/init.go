package browse

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travelsheet/internal/logger"
)

// Dependencies represent the dependencies needed for the browse module
type Dependencies struct {
	Sessions *Sessions
	Catalog  Catalog
	Logger   logger.Logger
}

// Init initializes the browse module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	srvs := NewService(deps.Sessions, deps.Catalog)
	handler := NewHandler(srvs, deps.Logger)

	browseGroup := r.Group("/browse")
	browseGroup.GET("", handler.GetState)
	browseGroup.GET("/sections", handler.ListSections)
	browseGroup.GET("/location", handler.OpenLocation)
	browseGroup.POST("/select/:code", handler.Select)
	browseGroup.POST("/deselect", handler.Deselect)
	browseGroup.POST("/navigate/:direction", handler.Navigate)
	browseGroup.POST("/back", handler.Back)
	browseGroup.POST("/forward", handler.Forward)
	browseGroup.PUT("/section/:id", handler.SetSection)
}
