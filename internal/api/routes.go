package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes without authentication. Production
// wiring goes through SetupServiceRoutes, which protects /api/v1 with JWT.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Readiness check
	router.GET("/ready", handler.ReadyCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Assessment endpoints
		assess := v1.Group("/assess")
		{
			assess.POST("", handler.Assess)            // POST /api/v1/assess
			assess.POST("/batch", handler.AssessBatch) // POST /api/v1/assess/batch
		}

		// Pattern library introspection
		v1.GET("/patterns", handler.GetPatterns) // GET /api/v1/patterns

		// Batch processor statistics
		v1.GET("/stats", handler.GetStats) // GET /api/v1/stats
	}
}
