package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/travelsheet/app"
	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/app/browse"
	"github.com/joefazee/travelsheet/app/countries"
	"github.com/joefazee/travelsheet/app/database"
	"github.com/joefazee/travelsheet/app/favorites"
	"github.com/joefazee/travelsheet/internal/deps"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/router"
	"github.com/joefazee/travelsheet/internal/sanitizer"
	"github.com/joefazee/travelsheet/internal/security"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "travelsheet",
		"env":     cfg.Env,
	})

	var db *gorm.DB
	if cfg.Favorites.Backend == favorites.BackendDatabase {
		db, err = database.New(&cfg.DB)
		if err != nil {
			appLogger.Fatal(fmt.Errorf("failed to connect to database: %w", err), nil)
		}
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.VisitorTokenKey)
	if err != nil {
		appLogger.Fatal(fmt.Errorf("cannot create token maker: %w", err), nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := countries.NewCatalog(appLogger.With(logger.Fields{"component": "catalog"}))
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.Countries.LoadTimeout)
		defer cancel()
		// Failure is logged by the catalog; it stays empty and pending deep links fall back to listing.
		_ = catalog.Load(loadCtx, cfg.Countries.NewSource())
	}()

	persistence, err := favorites.NewPersistence(&cfg.Favorites, db)
	if err != nil {
		appLogger.Fatal(fmt.Errorf("cannot create favorites storage: %w", err), nil)
	}
	favoritesService := favorites.NewService(persistence, catalog, cfg.Favorites.StoreTTL, appLogger)

	sessions := browse.NewSessions(catalog, cfg.Browse.SessionTTL, appLogger)
	go sessions.Run(ctx, cfg.Browse.SweepInterval)

	container := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), appLogger)
	container.RegisterService(deps.ServiceCatalog, catalog)
	container.RegisterService(deps.ServiceFavorites, favoritesService)
	container.RegisterService(deps.ServiceSessions, sessions)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware())

	mounter := router.NewMounter(container)
	mounter.Public(r).Mount(mountHealth)
	mounter.Visitor(r, cfg.VisitorTokenTTL).
		Mount(mountCountries).
		Mount(mountFavorites).
		Mount(mountBrowse)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error(err, map[string]interface{}{"action": "shutdown"})
		}
	}()

	appLogger.Info("starting travelsheet API server", map[string]interface{}{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLogger.Fatal(fmt.Errorf("failed to start server: %w", err), nil)
	}
}

func mountHealth(r *gin.RouterGroup, _ *deps.Container) {
	r.GET("/healthz", api.HealthCheck)
}

func mountCountries(r *gin.RouterGroup, c *deps.Container) {
	countries.Init(r, countries.Dependencies{
		Catalog:   c.GetService(deps.ServiceCatalog).(*countries.Catalog),
		Favorites: c.GetService(deps.ServiceFavorites).(favorites.Service),
		Sanitizer: c.Sanitizer,
		Logger:    c.Logger,
	})
}

func mountFavorites(r *gin.RouterGroup, c *deps.Container) {
	favorites.Init(r, favorites.Dependencies{
		Service: c.GetService(deps.ServiceFavorites).(favorites.Service),
		Logger:  c.Logger,
	})
}

func mountBrowse(r *gin.RouterGroup, c *deps.Container) {
	browse.Init(r, browse.Dependencies{
		Sessions: c.GetService(deps.ServiceSessions).(*browse.Sessions),
		Catalog:  c.GetService(deps.ServiceCatalog).(*countries.Catalog),
		Logger:   c.Logger,
	})
}
