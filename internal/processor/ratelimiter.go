package processor

import (
	"context"

	"golang.org/x/time/rate"
)

// defaultDocsPerSecond is used when callers pass a non-positive rate.
const defaultDocsPerSecond = 100

// RateLimiter caps how many documents per second the pool assesses. It
// wraps a shared token bucket; all workers draw from the same bucket.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  Logger
}

// NewRateLimiter creates a new rate limiter.
// docsPerSec: documents per second across all workers.
// burst: maximum burst size.
func NewRateLimiter(docsPerSec float64, burst int, logger Logger) *RateLimiter {
	if docsPerSec <= 0 {
		docsPerSec = defaultDocsPerSecond
	}
	if burst <= 0 {
		burst = int(docsPerSec)
		if burst < 1 {
			burst = 1
		}
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(docsPerSec), burst),
		logger:  logger,
	}
}

// Wait blocks until the rate limit allows one more document.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("Rate limiter wait failed", "error", err)
		return err
	}
	return nil
}

// Allow checks if a document may proceed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// SetLimit updates the documents-per-second rate.
func (r *RateLimiter) SetLimit(docsPerSec float64) {
	r.limiter.SetLimit(rate.Limit(docsPerSec))
	r.logger.Info("Rate limit updated", "new_docs_per_sec", docsPerSec)
}

// SetBurst updates the burst size.
func (r *RateLimiter) SetBurst(burst int) {
	r.limiter.SetBurst(burst)
	r.logger.Info("Burst size updated", "new_burst", burst)
}
