package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/triage/internal/httpserver"
	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/telemetry"
)

// Prometheus collectors register globally, so all tests share one provider.
var (
	providerOnce sync.Once
	provider     *telemetry.Provider
)

func testProvider() *telemetry.Provider {
	providerOnce.Do(func() {
		provider = telemetry.NewProvider()
	})
	return provider
}

func TestServerBuilder_HealthRoute(t *testing.T) {
	server := httpserver.NewServerBuilder("triage", 0).
		WithLogger(logging.NewNop()).
		WithVersion("2.1.0").
		Build()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp httpserver.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling health response: %v", err)
	}
	if resp.Status != httpserver.HealthStatusHealthy {
		t.Errorf("health status = %q, want %q", resp.Status, httpserver.HealthStatusHealthy)
	}
	if resp.Service != "triage" {
		t.Errorf("health service = %q, want %q", resp.Service, "triage")
	}
	if resp.Version != "2.1.0" {
		t.Errorf("health version = %q, want %q", resp.Version, "2.1.0")
	}
	if resp.Uptime == "" {
		t.Error("health uptime is empty")
	}
}

func TestServerBuilder_HeadHealthRoute(t *testing.T) {
	server := httpserver.NewServerBuilder("triage", 0).
		WithLogger(logging.NewNop()).
		Build()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/health", http.NoBody)
	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HEAD /health status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestServerBuilder_MetricsRoute(t *testing.T) {
	server := httpserver.NewServerBuilder("triage", 0).
		WithLogger(logging.NewNop()).
		WithTelemetry(testProvider()).
		Build()

	// Drive one request through the middleware so the duration series exists
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	server.Router().ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "triage_http_request_duration_seconds") {
		t.Error("metrics output missing triage_http_request_duration_seconds series")
	}
}

func TestServerBuilder_CustomRoutes(t *testing.T) {
	server := httpserver.NewServerBuilder("triage", 0).
		WithLogger(logging.NewNop()).
		WithRoutes(func(router *gin.Engine) {
			router.GET("/custom", func(c *gin.Context) {
				c.String(http.StatusOK, "custom")
			})
		}).
		Build()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/custom", http.NoBody)
	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /custom status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "custom" {
		t.Errorf("GET /custom body = %q, want %q", w.Body.String(), "custom")
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := &httpserver.Config{Port: 8084, ServiceName: "triage"}
	cfg.SetDefaults()

	if cfg.ReadTimeout != httpserver.DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, httpserver.DefaultReadTimeout)
	}
	if cfg.WriteTimeout != httpserver.DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", cfg.WriteTimeout, httpserver.DefaultWriteTimeout)
	}
	if cfg.IdleTimeout != httpserver.DefaultIdleTimeout {
		t.Errorf("IdleTimeout = %v, want %v", cfg.IdleTimeout, httpserver.DefaultIdleTimeout)
	}
	if cfg.ShutdownTimeout != httpserver.DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, httpserver.DefaultShutdownTimeout)
	}
	if !cfg.CORS.Enabled {
		t.Error("CORS not enabled by default")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("CORS.AllowedOrigins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}
