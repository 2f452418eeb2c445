// Package telemetry provides OpenTelemetry instrumentation for the triage
// service. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "triage"

// Metrics holds all triage Prometheus metrics
type Metrics struct {
	// Assessment metrics
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentDuration *prometheus.HistogramVec
	AssessmentScore    *prometheus.HistogramVec

	// Intake metrics
	ValidationFailures *prometheus.CounterVec
	BatchSize          prometheus.Histogram

	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	metrics := initMetrics()
	tracer := otel.Tracer(serviceName)

	return &Provider{
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAssessmentMetrics(m)
	initIntakeMetrics(m)
	initHTTPMetrics(m)
	return m
}

func initAssessmentMetrics(m *Metrics) {
	m.AssessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_assessments_total",
		Help: "Total documents assessed, by analyzer and classification",
	}, []string{"analyzer", "classification"})

	m.AssessmentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_assessment_duration_seconds",
		Help:    "Time to assess a single document",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"analyzer"})

	m.AssessmentScore = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_assessment_score",
		Help:    "Distribution of overall completeness scores",
		Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"analyzer"})
}

func initIntakeMetrics(m *Metrics) {
	m.ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_validation_failures_total",
		Help: "Documents rejected before analysis, by intake check",
	}, []string{"check"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_batch_size",
		Help:    "Number of documents per batch request",
		Buckets: []float64{1, 5, 10, 25, 50, 100},
	})
}

func initHTTPMetrics(m *Metrics) {
	m.RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	}, []string{"method", "route", "status"})
}

// RecordAssessment records metrics for a single assessment
func (p *Provider) RecordAssessment(ctx context.Context, analyzer, classification string, score int, duration time.Duration) {
	p.Metrics.AssessmentsTotal.WithLabelValues(analyzer, classification).Inc()
	p.Metrics.AssessmentDuration.WithLabelValues(analyzer).Observe(duration.Seconds())
	p.Metrics.AssessmentScore.WithLabelValues(analyzer).Observe(float64(score))
}

// RecordValidationFailure records a document rejected by an intake check
// (filename or size).
func (p *Provider) RecordValidationFailure(ctx context.Context, check string) {
	p.Metrics.ValidationFailures.WithLabelValues(check).Inc()
}

// RecordBatchSize records the size of a batch request
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordHTTPRequest records one served request
func (p *Provider) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	p.Metrics.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
