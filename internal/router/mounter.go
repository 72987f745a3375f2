package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// Public routes - no visitor identity required
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	group := engine.Group("/api/v1")
	return &RouteGroup{group: group, container: m.container}
}

// Visitor routes - every request carries a visitor identity, issued on first use
func (m *Mounter) Visitor(engine *gin.Engine, tokenTTL time.Duration) *RouteGroup {
	group := engine.Group("/api/v1")
	group.Use(api.VisitorMiddleware(m.container.TokenMaker, tokenTTL, m.container.Logger))
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	subGroup := rg.group.Group(path)
	return &RouteGroup{group: subGroup, container: rg.container}
}

// WithMiddleware adds middleware to every route mounted afterwards
func (rg *RouteGroup) WithMiddleware(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
