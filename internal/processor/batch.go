// Package processor runs bulk document assessment on a bounded worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/dealdesk/triage/internal/completeness"
	"github.com/dealdesk/triage/internal/domain"
	"github.com/dealdesk/triage/internal/telemetry"
)

// defaultConcurrency is used when callers pass a non-positive pool size.
const defaultConcurrency = 10

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Result holds the outcome for a single document in a batch. Either
// Assessment is populated or Err explains why the document was skipped;
// Index points back at the input slice.
type Result struct {
	Index      int
	Filename   string
	Assessment domain.Assessment
	Err        error
}

// BatchProcessor assesses documents in parallel using a worker pool. The
// engine is pure and safe for concurrent use, so workers share one instance.
type BatchProcessor struct {
	engine      *completeness.Engine
	concurrency int
	limiter     *RateLimiter
	telemetry   *telemetry.Provider
	logger      Logger
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(engine *completeness.Engine, concurrency int, logger Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		engine:      engine,
		concurrency: concurrency,
		logger:      logger,
	}
}

// SetRateLimiter installs a documents-per-second limiter applied before
// each assessment. A nil limiter disables rate limiting.
func (b *BatchProcessor) SetRateLimiter(limiter *RateLimiter) {
	b.limiter = limiter
}

// SetTelemetry installs a telemetry provider so each assessment records
// score and duration metrics. A nil provider disables recording.
func (b *BatchProcessor) SetTelemetry(provider *telemetry.Provider) {
	b.telemetry = provider
}

type job struct {
	index int
	doc   domain.RawDocument
}

// Process assesses a batch of documents using the worker pool. The result
// slice always has one entry per input document, in input order; documents
// skipped after cancellation carry the context error.
func (b *BatchProcessor) Process(ctx context.Context, docs []domain.RawDocument) ([]Result, error) {
	if len(docs) == 0 {
		return []Result{}, nil
	}

	b.logger.Info("Starting batch assessment",
		"batch_size", len(docs),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	jobs := make(chan job, len(docs))
	out := make(chan Result, len(docs))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, out, &wg)
	}

	for i, doc := range docs {
		jobs <- job{index: i, doc: doc}
	}
	close(jobs)

	wg.Wait()
	close(out)

	results := make([]Result, len(docs))
	for result := range out {
		results[result.Index] = result
	}

	duration := time.Since(startTime)
	successCount := 0
	errorCount := 0

	for _, result := range results {
		if result.Err == nil {
			successCount++
		} else {
			errorCount++
		}
	}

	b.logger.Info("Batch assessment complete",
		"total", len(docs),
		"success", successCount,
		"errors", errorCount,
		"duration_ms", duration.Milliseconds(),
		"items_per_second", float64(len(docs))/duration.Seconds(),
	)

	return results, nil
}

// worker assesses jobs until the channel drains. After cancellation the
// remaining jobs are drained into error results so every input document
// has an entry.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan job,
	out chan<- Result,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	b.logger.Debug("Worker started", "worker_id", id)

	for j := range jobs {
		select {
		case <-ctx.Done():
			out <- Result{Index: j.index, Filename: j.doc.Filename, Err: ctx.Err()}
			continue
		default:
		}

		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				out <- Result{Index: j.index, Filename: j.doc.Filename, Err: err}
				continue
			}
		}

		out <- b.assess(ctx, j)
	}

	b.logger.Debug("Worker finished", "worker_id", id)
}

// assess runs one document through the engine.
func (b *BatchProcessor) assess(ctx context.Context, j job) Result {
	start := time.Now()
	assessment := b.engine.Assess(j.doc)

	if b.telemetry != nil {
		b.telemetry.RecordAssessment(ctx,
			string(assessment.Analyzer),
			string(assessment.Classification),
			assessment.OverallScore,
			time.Since(start),
		)
	}

	b.logger.Debug("Document assessed",
		"filename", j.doc.Filename,
		"analyzer", assessment.Analyzer,
		"classification", assessment.Classification,
		"score", assessment.OverallScore,
	)

	return Result{
		Index:      j.index,
		Filename:   j.doc.Filename,
		Assessment: assessment,
	}
}

// GetStats returns statistics about the batch processor
func (b *BatchProcessor) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"concurrency":  b.concurrency,
		"rate_limited": b.limiter != nil,
	}
}
