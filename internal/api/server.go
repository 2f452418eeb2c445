package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dealdesk/triage/internal/config"
	"github.com/dealdesk/triage/internal/httpserver"
	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/telemetry"
)

// NewServer creates the triage HTTP server with standard middleware, health
// and metrics endpoints, and the assessment routes.
func NewServer(
	handler *Handler,
	cfg *config.Config,
	provider *telemetry.Provider,
	log logging.Logger,
) *httpserver.Server {
	return httpserver.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithShutdownTimeout(cfg.Service.ShutdownTimeout).
		WithTelemetry(provider).
		WithRoutes(func(router *gin.Engine) {
			// Health and metrics routes are added by the builder
			SetupServiceRoutes(router, handler, cfg)
		}).
		Build()
}

// SetupServiceRoutes configures service-specific API routes. The /api/v1
// group requires a JWT bearer token when auth is enabled.
func SetupServiceRoutes(router *gin.Engine, handler *Handler, cfg *config.Config) {
	jwtSecret := ""
	if cfg.Auth.Enabled {
		jwtSecret = cfg.Auth.JWTSecret
	}

	v1 := httpserver.ProtectedGroup(router, "/api/v1", jwtSecret)

	// Assessment endpoints
	assess := v1.Group("/assess")
	assess.POST("", handler.Assess)            // POST /api/v1/assess
	assess.POST("/batch", handler.AssessBatch) // POST /api/v1/assess/batch

	// Pattern library introspection
	v1.GET("/patterns", handler.GetPatterns) // GET /api/v1/patterns

	// Batch processor statistics
	v1.GET("/stats", handler.GetStats) // GET /api/v1/stats

	// Readiness probe stays public
	router.GET("/ready", handler.ReadyCheck)
}
