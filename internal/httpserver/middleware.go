package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/telemetry"
)

const (
	// requestIDBytes is the number of random bytes in a generated request ID
	// (hex-encoded to twice this length).
	requestIDBytes = 16

	// maxRequestIDLen caps inbound X-Request-ID headers. Longer values are
	// replaced with a generated ID.
	maxRequestIDLen = 128

	// requestIDKey is the gin context key holding the request ID.
	requestIDKey = "request_id"
)

// RequestIDLoggerMiddleware assigns each request an ID and stores a logger
// enriched with that ID in the request context. Inbound X-Request-ID headers
// are honored so traces can span services; oversized values are discarded.
func RequestIDLoggerMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = generateRequestID()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		reqLogger := log.With(logging.String(requestIDKey, requestID))
		ctx := logging.WithContext(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// generateRequestID creates a unique request ID from random bytes.
func generateRequestID() string {
	buf := make([]byte, requestIDBytes)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to a timestamp-derived ID; rand.Read failing means the
		// system entropy source is broken.
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}

// LoggerMiddleware creates a Gin middleware for structured HTTP request
// logging. It logs method, path, status, duration, and client IP once per
// request, folding any handler errors into the same entry.
func LoggerMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []logging.Field{
			logging.String("method", method),
			logging.String("path", path),
			logging.Int("status", statusCode),
			logging.Duration("duration", duration),
			logging.String("client_ip", c.ClientIP()),
		}

		if query != "" {
			fields = append(fields, logging.String("query", query))
		}

		if requestID, ok := c.Get(requestIDKey); ok {
			if id, isString := requestID.(string); isString {
				fields = append(fields, logging.String(requestIDKey, id))
			}
		}

		// Skip user agent noise for health probes
		if !strings.HasPrefix(path, "/health") && path != "/ready" {
			fields = append(fields, logging.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			errorMessages := make([]string, len(c.Errors))
			for i, err := range c.Errors {
				errorMessages[i] = err.Err.Error()
			}
			fields = append(fields, logging.Strings("errors", errorMessages))
			log.Error("HTTP request with errors", fields...)
			return
		}

		log.Info("HTTP request", fields...)
	}
}

// MetricsMiddleware records per-request duration metrics with the route
// template as the label, so /api/v1/assess and /api/v1/assess/batch stay
// distinct series without unbounded cardinality from raw paths.
func MetricsMiddleware(provider *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		provider.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware creates a Gin middleware for handling Cross-Origin Resource
// Sharing with configurable origins, methods, and headers.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	cfg.SetDefaults()

	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")
	allowCredentials := "false"
	if cfg.AllowCredentials {
		allowCredentials = "true"
	}
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")

		allowedOrigin := determineAllowedOrigin(origin, cfg.AllowedOrigins)
		if allowedOrigin == "" {
			// Origin not allowed, continue without CORS headers
			c.Next()
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", allowCredentials)
		c.Writer.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		c.Writer.Header().Set("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// determineAllowedOrigin checks if the origin is in the allowed list.
// Returns the origin to use in the response, or empty string if not allowed.
func determineAllowedOrigin(origin string, allowedOrigins []string) string {
	// No origin header means a same-origin request
	if origin == "" {
		return "*"
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}

	return ""
}

// RecoveryMiddleware catches panics, logs them, and returns a 500 error
// envelope instead of dropping the connection.
func RecoveryMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logging.Any("error", err),
					logging.String("path", c.Request.URL.Path),
					logging.String("method", c.Request.Method),
					logging.String("client_ip", c.ClientIP()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				})
			}
		}()

		c.Next()
	}
}
