// Package completeness scores due-diligence documents for substantive
// content before expensive downstream analysis. Two rule-based analyzers
// cover deal documents and financial statements; both turn raw extracted
// text into a bounded score, a three-tier classification, and explanatory
// flags using static keyword and regex tables.
package completeness

import "github.com/dealdesk/triage/internal/domain"

// routeRejectReason explains assessments for documents no analyzer accepts.
const routeRejectReason = "unrecognized document family: expected deal paperwork or financial statements"

// Engine routes raw documents to the matching analyzer and wraps the
// result in a tagged assessment. One engine serves all callers; both
// analyzers are safe for concurrent use.
type Engine struct {
	legal     *LegalAnalyzer
	financial *FinancialAnalyzer
	logger    Logger
}

// NewEngine builds the engine and both analyzers.
func NewEngine(logger Logger) *Engine {
	return &Engine{
		legal:     NewLegalAnalyzer(logger),
		financial: NewFinancialAnalyzer(logger),
		logger:    logger,
	}
}

// Legal exposes the deal-document analyzer for callers that already know
// the document family.
func (e *Engine) Legal() *LegalAnalyzer { return e.legal }

// Financial exposes the financial-statements analyzer.
func (e *Engine) Financial() *FinancialAnalyzer { return e.financial }

// Assess routes one document and runs the matching analyzer. Documents no
// analyzer accepts come back rejected with a reason rather than an error;
// the same input always produces the same assessment.
func (e *Engine) Assess(doc domain.RawDocument) domain.Assessment {
	switch Route(doc.Filename, doc.Text) {
	case domain.AnalyzerLegal:
		analysis := e.legal.Analyze(doc)
		return domain.Assessment{
			Filename:       doc.Filename,
			Analyzer:       domain.AnalyzerLegal,
			Classification: analysis.Scores.Classification,
			OverallScore:   analysis.Scores.OverallScore,
			Legal:          &analysis,
		}
	case domain.AnalyzerFinancial:
		analysis := e.financial.Analyze(doc)
		return domain.Assessment{
			Filename:       doc.Filename,
			Analyzer:       domain.AnalyzerFinancial,
			Classification: analysis.Scores.Classification,
			OverallScore:   analysis.Scores.OverallScore,
			Financial:      &analysis,
		}
	default:
		e.logger.Warn("no analyzer accepted document", "filename", doc.Filename)
		return domain.Assessment{
			Filename:       doc.Filename,
			Analyzer:       domain.AnalyzerNone,
			Classification: domain.ClassificationRejectIncomplete,
			Reason:         routeRejectReason,
		}
	}
}
