// Package bootstrap wires configuration, logging, telemetry, the assessment
// engine, and the HTTP server into runnable components for the binaries.
package bootstrap

import (
	"github.com/dealdesk/triage/internal/api"
	"github.com/dealdesk/triage/internal/completeness"
	"github.com/dealdesk/triage/internal/config"
	"github.com/dealdesk/triage/internal/httpserver"
	"github.com/dealdesk/triage/internal/logging"
	"github.com/dealdesk/triage/internal/processor"
	"github.com/dealdesk/triage/internal/telemetry"
)

// HTTPComponents holds all components needed for the HTTP server.
type HTTPComponents struct {
	Engine    *completeness.Engine
	Processor *processor.BatchProcessor
	Handler   *api.Handler
	Server    *httpserver.Server
	Telemetry *telemetry.Provider
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logging.Logger) *HTTPComponents {
	var provider *telemetry.Provider
	if cfg.Telemetry.Enabled {
		provider = telemetry.NewProvider()
		log.Info("Telemetry enabled")
	}

	kv := logging.NewKeyValueAdapter(log)

	engine := completeness.NewEngine(kv)
	log.Info("Assessment engine initialized",
		logging.String("patterns_version", completeness.PatternLibraryVersion),
	)

	batchProcessor := NewBatchProcessor(engine, cfg, provider, log)

	handler := api.NewHandler(
		engine,
		batchProcessor,
		provider,
		cfg.Assessment.MaxTextBytes,
		cfg.Assessment.MaxBatchSize,
		kv,
	)

	server := api.NewServer(handler, cfg, provider, log)

	return &HTTPComponents{
		Engine:    engine,
		Processor: batchProcessor,
		Handler:   handler,
		Server:    server,
		Telemetry: provider,
	}
}

// NewBatchProcessor creates the worker pool with the configured concurrency,
// rate limit, and telemetry.
func NewBatchProcessor(
	engine *completeness.Engine,
	cfg *config.Config,
	provider *telemetry.Provider,
	log logging.Logger,
) *processor.BatchProcessor {
	kv := logging.NewKeyValueAdapter(log)

	batchProcessor := processor.NewBatchProcessor(engine, cfg.Assessment.Concurrency, kv)
	batchProcessor.SetTelemetry(provider)

	if cfg.Assessment.RateLimitPerSec > 0 {
		limiter := processor.NewRateLimiter(cfg.Assessment.RateLimitPerSec, cfg.Assessment.RateLimitBurst, kv)
		batchProcessor.SetRateLimiter(limiter)
		log.Info("Rate limiter enabled",
			logging.Float64("docs_per_second", cfg.Assessment.RateLimitPerSec),
			logging.Int("burst", cfg.Assessment.RateLimitBurst),
		)
	}

	log.Info("Batch processor initialized",
		logging.Int("concurrency", cfg.Assessment.Concurrency),
	)

	return batchProcessor
}
