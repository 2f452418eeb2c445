package domain

// Assessment is the routed outcome for one document: which analyzer ran,
// its classification, and the matching detail block. Exactly one of Legal
// and Financial is set unless no analyzer accepted the document, in which
// case both are nil and Reason explains the rejection.
type Assessment struct {
	Filename       string                         `json:"filename"`
	Analyzer       AnalyzerKind                   `json:"analyzer"`
	Classification Classification                 `json:"classification"`
	OverallScore   int                            `json:"overall_score"`
	Reason         string                         `json:"reason,omitempty"`
	Legal          *DealCompletenessAnalysis      `json:"legal,omitempty"`
	Financial      *FinancialCompletenessAnalysis `json:"financial,omitempty"`
}
