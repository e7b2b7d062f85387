package api

import (
	"github.com/chimera-audio/trinity-api/internal/api/handlers"
	apimiddleware "github.com/chimera-audio/trinity-api/internal/api/middleware"
	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/config"
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, registry *engines.Registry, store *catalogue.Store, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(store, version)
	router.GET("/health", healthHandler.HealthCheck)

	// API routes v1. The service is stateless and runs behind network
	// isolation; no per-request auth.
	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.NoAuth())
	{
		enginesHandler := handlers.NewEnginesHandler(registry)
		v1.GET("/engines", enginesHandler.List)
		v1.GET("/engines/:id", enginesHandler.Get)

		presetsHandler := handlers.NewPresetsHandler(cfg, registry, store, cw)
		v1.POST("/presets/generate", presetsHandler.Generate)
		v1.POST("/presets/match", presetsHandler.Match)
		v1.POST("/presets/validate", presetsHandler.Validate)
	}

	return router
}
