package processor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/triage/internal/completeness"
	"github.com/dealdesk/triage/internal/domain"
	"github.com/dealdesk/triage/internal/processor"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

func newTestProcessor(concurrency int) *processor.BatchProcessor {
	logger := &mockLogger{}
	engine := completeness.NewEngine(logger)
	return processor.NewBatchProcessor(engine, concurrency, logger)
}

func TestBatchProcessor_Process_KeepsInputOrder(t *testing.T) {
	docs := []domain.RawDocument{
		{Filename: "merger-agreement.pdf", Text: "merger between the parties"},
		{Filename: "meeting-notes.txt", Text: "agenda for tuesday standup"},
		{Filename: "balances.xlsx", Text: ""},
	}

	results, err := newTestProcessor(2).Process(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for i, result := range results {
		assert.Equal(t, i, result.Index)
		assert.Equal(t, docs[i].Filename, result.Filename)
		assert.NoError(t, result.Err)
	}

	assert.Equal(t, domain.AnalyzerLegal, results[0].Assessment.Analyzer)
	assert.Equal(t, domain.AnalyzerNone, results[1].Assessment.Analyzer)
	assert.Equal(t, domain.AnalyzerFinancial, results[2].Assessment.Analyzer)

	// An unroutable document is a rejected assessment, not an error.
	assert.Equal(t, domain.ClassificationRejectIncomplete, results[1].Assessment.Classification)
	assert.NotEmpty(t, results[1].Assessment.Reason)
}

func TestBatchProcessor_Process_EmptyBatch(t *testing.T) {
	results, err := newTestProcessor(2).Process(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchProcessor_Process_MoreDocsThanWorkers(t *testing.T) {
	docs := make([]domain.RawDocument, 25)
	for i := range docs {
		docs[i] = domain.RawDocument{Filename: "merger.pdf", Text: "merger terms"}
	}

	results, err := newTestProcessor(4).Process(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for i, result := range results {
		assert.Equal(t, i, result.Index)
		require.NoError(t, result.Err)
		assert.Equal(t, domain.AnalyzerLegal, result.Assessment.Analyzer)
	}
}

func TestBatchProcessor_Process_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []domain.RawDocument{
		{Filename: "merger.pdf", Text: "merger terms"},
		{Filename: "balances.xlsx"},
	}

	results, err := newTestProcessor(2).Process(ctx, docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for _, result := range results {
		assert.ErrorIs(t, result.Err, context.Canceled)
	}
}

func TestBatchProcessor_Process_WithRateLimiter(t *testing.T) {
	logger := &mockLogger{}
	proc := newTestProcessor(2)
	proc.SetRateLimiter(processor.NewRateLimiter(1000, 10, logger))

	docs := make([]domain.RawDocument, 5)
	for i := range docs {
		docs[i] = domain.RawDocument{Filename: "merger.pdf", Text: "merger terms"}
	}

	results, err := proc.Process(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))
	for _, result := range results {
		assert.NoError(t, result.Err)
	}
}

func TestRateLimiter_AllowExhaustsBurst(t *testing.T) {
	limiter := processor.NewRateLimiter(0.5, 1, &mockLogger{})

	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_WaitHonorsCancellation(t *testing.T) {
	limiter := processor.NewRateLimiter(0.001, 1, &mockLogger{})
	require.True(t, limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, limiter.Wait(ctx))
}
