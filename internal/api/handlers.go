// Package api exposes document assessment over HTTP: single and batch
// scoring, pattern library introspection, and readiness probes.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dealdesk/triage/internal/completeness"
	"github.com/dealdesk/triage/internal/domain"
	"github.com/dealdesk/triage/internal/processor"
	"github.com/dealdesk/triage/internal/telemetry"
)

// Handler handles HTTP requests for the triage API
type Handler struct {
	engine         *completeness.Engine
	batchProcessor *processor.BatchProcessor
	telemetry      *telemetry.Provider
	maxTextBytes   int
	maxBatchSize   int
	logger         Logger
}

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// NewHandler creates a new API handler. A nil telemetry provider disables
// metrics recording.
func NewHandler(
	engine *completeness.Engine,
	batchProcessor *processor.BatchProcessor,
	provider *telemetry.Provider,
	maxTextBytes int,
	maxBatchSize int,
	logger Logger,
) *Handler {
	return &Handler{
		engine:         engine,
		batchProcessor: batchProcessor,
		telemetry:      provider,
		maxTextBytes:   maxTextBytes,
		maxBatchSize:   maxBatchSize,
		logger:         logger,
	}
}

// Assess handles POST /api/v1/assess
func (h *Handler) Assess(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid assessment request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.admit(c, req.Document) {
		return
	}

	h.logger.Info("Assessing document",
		"filename", req.Document.Filename,
		"text_bytes", len(req.Document.Text),
	)

	ctx := c.Request.Context()
	if h.telemetry != nil {
		var span trace.Span
		ctx, span = h.telemetry.StartSpan(ctx, "assess_document")
		defer span.End()
	}

	start := time.Now()
	assessment := h.engine.Assess(*req.Document)
	duration := time.Since(start)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("analyzer", string(assessment.Analyzer)),
		attribute.String("classification", string(assessment.Classification)),
		attribute.Int("score", assessment.OverallScore),
	)

	if h.telemetry != nil {
		h.telemetry.RecordAssessment(ctx,
			string(assessment.Analyzer),
			string(assessment.Classification),
			assessment.OverallScore,
			duration,
		)
	}

	h.logger.Info("Document assessed",
		"filename", assessment.Filename,
		"analyzer", assessment.Analyzer,
		"classification", assessment.Classification,
		"overall_score", assessment.OverallScore,
	)

	c.JSON(http.StatusOK, assessment)
}

// AssessBatch handles POST /api/v1/assess/batch
func (h *Handler) AssessBatch(c *gin.Context) {
	var req BatchAssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch assessment request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.maxBatchSize > 0 && len(req.Documents) > h.maxBatchSize {
		h.logger.Warn("Batch exceeds configured limit",
			"batch_size", len(req.Documents),
			"max_batch_size", h.maxBatchSize,
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("batch exceeds maximum size of %d documents", h.maxBatchSize),
			"code":  "BATCH_TOO_LARGE",
		})
		return
	}

	for i := range req.Documents {
		if !h.admitBatchItem(c, i, &req.Documents[i]) {
			return
		}
	}

	h.logger.Info("Batch assessing documents", "batch_size", len(req.Documents))

	ctx := c.Request.Context()
	if h.telemetry != nil {
		h.telemetry.RecordBatchSize(len(req.Documents))

		var span trace.Span
		ctx, span = h.telemetry.StartSpan(ctx, "assess_batch",
			attribute.Int("batch_size", len(req.Documents)))
		defer span.End()
	}

	results, err := h.batchProcessor.Process(ctx, req.Documents)
	if err != nil {
		h.logger.Error("Batch assessment failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Count successes and failures
	success := 0
	failed := 0
	items := make([]BatchResultItem, len(results))
	for i, result := range results {
		items[i] = toBatchResultItem(result)
		if result.Err != nil {
			failed++
		} else {
			success++
		}
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("success", success),
		attribute.Int("failed", failed),
	)

	h.logger.Info("Batch assessment completed",
		"total", len(results),
		"success", success,
		"failed", failed,
	)

	c.JSON(http.StatusOK, BatchAssessResponse{
		Results: items,
		Total:   len(results),
		Success: success,
		Failed:  failed,
	})
}

// GetPatterns handles GET /api/v1/patterns
func (h *Handler) GetPatterns(c *gin.Context) {
	h.logger.Debug("Serving pattern library snapshot")

	c.JSON(http.StatusOK, completeness.Patterns())
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	h.logger.Debug("Getting batch processor stats")

	c.JSON(http.StatusOK, h.batchProcessor.GetStats())
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// admit validates a single document before it reaches the engine. On
// rejection it writes the error response and reports false.
func (h *Handler) admit(c *gin.Context, doc *domain.RawDocument) bool {
	if v := completeness.ValidateFilename(doc.Filename); !v.Valid {
		h.logger.Warn("Rejected document",
			"filename", doc.Filename,
			"reason", v.Reason,
		)
		h.recordValidationFailure(c, "filename")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": v.Reason,
			"code":  "INVALID_FILENAME",
		})
		return false
	}

	if h.maxTextBytes > 0 && len(doc.Text) > h.maxTextBytes {
		h.logger.Warn("Rejected document",
			"filename", doc.Filename,
			"text_bytes", len(doc.Text),
			"max_text_bytes", h.maxTextBytes,
		)
		h.recordValidationFailure(c, "size")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("document text exceeds maximum of %d bytes", h.maxTextBytes),
			"code":  "TEXT_TOO_LARGE",
		})
		return false
	}

	return true
}

// admitBatchItem validates one batch entry, reporting the offending index
// in the error envelope.
func (h *Handler) admitBatchItem(c *gin.Context, index int, doc *domain.RawDocument) bool {
	if v := completeness.ValidateFilename(doc.Filename); !v.Valid {
		h.logger.Warn("Rejected batch document",
			"index", index,
			"filename", doc.Filename,
			"reason", v.Reason,
		)
		h.recordValidationFailure(c, "filename")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("document %d: %s", index, v.Reason),
			"code":  "INVALID_FILENAME",
		})
		return false
	}

	if h.maxTextBytes > 0 && len(doc.Text) > h.maxTextBytes {
		h.logger.Warn("Rejected batch document",
			"index", index,
			"filename", doc.Filename,
			"text_bytes", len(doc.Text),
		)
		h.recordValidationFailure(c, "size")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("document %d: text exceeds maximum of %d bytes", index, h.maxTextBytes),
			"code":  "TEXT_TOO_LARGE",
		})
		return false
	}

	return true
}

func (h *Handler) recordValidationFailure(c *gin.Context, check string) {
	if h.telemetry != nil {
		h.telemetry.RecordValidationFailure(c.Request.Context(), check)
	}
}
