package api

import (
	"github.com/dealdesk/triage/internal/domain"
	"github.com/dealdesk/triage/internal/processor"
)

// AssessRequest represents a single assessment request
type AssessRequest struct {
	Document *domain.RawDocument `json:"document" binding:"required"`
}

// BatchAssessRequest represents a batch assessment request
type BatchAssessRequest struct {
	Documents []domain.RawDocument `json:"documents" binding:"required,min=1,max=100"`
}

// BatchResultItem represents the outcome for one document in a batch
type BatchResultItem struct {
	Index      int                `json:"index"`
	Filename   string             `json:"filename"`
	Assessment *domain.Assessment `json:"assessment,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// BatchAssessResponse represents a batch assessment response
type BatchAssessResponse struct {
	Results []BatchResultItem `json:"results"`
	Total   int               `json:"total"`
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
}

// toBatchResultItem converts a processor result to an API response item.
func toBatchResultItem(result processor.Result) BatchResultItem {
	item := BatchResultItem{
		Index:    result.Index,
		Filename: result.Filename,
	}

	if result.Err != nil {
		item.Error = result.Err.Error()
		return item
	}

	assessment := result.Assessment
	item.Assessment = &assessment
	return item
}
