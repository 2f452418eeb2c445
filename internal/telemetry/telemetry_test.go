package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dealdesk/triage/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordAssessment(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordAssessment(ctx, "legal", "accept_ok", 96, 10*time.Millisecond)
	provider.RecordAssessment(ctx, "financial", "reject_incomplete", 2, 5*time.Millisecond)
	provider.RecordAssessment(ctx, "none", "reject_incomplete", 0, time.Millisecond)
}

func TestRecordValidationFailure(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordValidationFailure(ctx, "filename")
	provider.RecordValidationFailure(ctx, "size")
}

func TestRecordBatchAndRequest(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.RecordBatchSize(25)
	provider.RecordHTTPRequest("POST", "/api/v1/assess", 200, 12*time.Millisecond)
}

func TestStartSpan(t *testing.T) {
	provider := getTestProvider(t)

	ctx, span := provider.StartSpan(context.Background(), "assess")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	span.End()
}

func TestHandler(t *testing.T) {
	provider := getTestProvider(t)
	if provider.Handler() == nil {
		t.Fatal("expected non-nil metrics handler")
	}
}
