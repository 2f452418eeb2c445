package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/telemetry"
)

// ServerBuilder provides a fluent API for building HTTP servers.
type ServerBuilder struct {
	config      *Config
	logger      logging.Logger
	telemetry   *telemetry.Provider
	setupRoutes func(*gin.Engine)
}

// NewServerBuilder creates a new server builder with the given configuration.
func NewServerBuilder(serviceName string, port int) *ServerBuilder {
	return &ServerBuilder{
		config: NewConfig(serviceName, port),
	}
}

// WithConfig sets a custom configuration.
func (b *ServerBuilder) WithConfig(cfg *Config) *ServerBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the logger.
func (b *ServerBuilder) WithLogger(log logging.Logger) *ServerBuilder {
	b.logger = log
	return b
}

// WithDebug enables or disables debug mode.
func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.config.Debug = debug
	return b
}

// WithVersion sets the service version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.config.ServiceVersion = version
	return b
}

// WithCORSOrigins sets allowed CORS origins.
func (b *ServerBuilder) WithCORSOrigins(origins []string) *ServerBuilder {
	b.config.CORS.AllowedOrigins = origins
	return b
}

// WithTimeouts sets all timeout values for the HTTP server.
func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	b.config.ReadTimeout = read
	b.config.WriteTimeout = write
	b.config.IdleTimeout = idle
	return b
}

// WithShutdownTimeout sets the graceful shutdown deadline.
func (b *ServerBuilder) WithShutdownTimeout(timeout time.Duration) *ServerBuilder {
	b.config.ShutdownTimeout = timeout
	return b
}

// WithTelemetry attaches a telemetry provider. The server records HTTP
// request metrics and exposes GET /metrics in Prometheus format.
func (b *ServerBuilder) WithTelemetry(provider *telemetry.Provider) *ServerBuilder {
	b.telemetry = provider
	return b
}

// WithRoutes sets the route setup function.
func (b *ServerBuilder) WithRoutes(setupRoutes func(*gin.Engine)) *ServerBuilder {
	b.setupRoutes = setupRoutes
	return b
}

// Build creates the server with all configured options.
func (b *ServerBuilder) Build() *Server {
	if b.logger == nil {
		b.logger = logging.Must(logging.Config{
			Level:       logging.DefaultLevel,
			Development: b.config.Debug,
		})
	}

	// Wrapper adds health and metrics routes before service-specific ones
	wrappedSetup := func(router *gin.Engine) {
		RegisterHealthRoutes(router, b.config.ServiceName, b.config.ServiceVersion)

		if b.telemetry != nil {
			router.GET("/metrics", gin.WrapH(b.telemetry.Handler()))
		}

		if b.setupRoutes != nil {
			b.setupRoutes(router)
		}
	}

	return NewServer(b.config, b.logger, b.telemetry, wrappedSetup)
}

// ProtectedGroup creates a router group with JWT authentication middleware.
// An empty secret leaves the group open, for deployments behind a trusted
// gateway.
func ProtectedGroup(router *gin.Engine, path, jwtSecret string) *gin.RouterGroup {
	group := router.Group(path)
	if jwtSecret != "" {
		group.Use(JWTAuthMiddleware(jwtSecret))
	}
	return group
}

// PublicGroup creates a router group without authentication.
func PublicGroup(router *gin.Engine, path string) *gin.RouterGroup {
	return router.Group(path)
}
