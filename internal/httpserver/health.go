package httpserver

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus represents the status of a health check.
type HealthStatus string

const (
	// HealthStatusHealthy indicates the service is healthy.
	HealthStatusHealthy HealthStatus = "healthy"
)

// HealthResponse is the standardized health check response format.
type HealthResponse struct {
	Status  HealthStatus `json:"status"`
	Service string       `json:"service"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime,omitempty"`
}

// healthState tracks server start time for uptime reporting.
var healthState = struct {
	sync.Once
	startTime time.Time
}{}

// RegisterHealthRoutes adds standardized health endpoints to a Gin router.
// Endpoints:
//   - GET /health - health check with status, service name, version, uptime
//   - HEAD /health - lightweight health check for load balancers
func RegisterHealthRoutes(router *gin.Engine, serviceName, version string) {
	healthState.Do(func() {
		healthState.startTime = time.Now()
	})

	router.GET("/health", healthHandler(serviceName, version))
	router.HEAD("/health", headHealthHandler())
}

// healthHandler returns a Gin handler for the health endpoint.
func healthHandler(serviceName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  HealthStatusHealthy,
			Service: serviceName,
			Version: version,
			Uptime:  formatUptime(time.Since(healthState.startTime)),
		})
	}
}

// headHealthHandler returns a Gin handler for HEAD /health requests.
func headHealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
}

// formatUptime formats a duration as a human-readable string such as
// "2d 4h 11m" or "59s", dropping units that are not yet relevant.
func formatUptime(d time.Duration) string {
	const (
		hoursPerDay    = 24
		minutesPerHour = 60
		secondsPerMin  = 60
	)

	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	minutes := int(d.Minutes()) % minutesPerHour
	seconds := int(d.Seconds()) % secondsPerMin

	switch {
	case days > 0:
		return strconv.Itoa(days) + "d " + strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m"
	case minutes > 0:
		return strconv.Itoa(minutes) + "m " + strconv.Itoa(seconds) + "s"
	default:
		return strconv.Itoa(seconds) + "s"
	}
}
