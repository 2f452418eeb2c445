package domain

// Classification is the three-tier outcome of a completeness assessment.
type Classification string

const (
	// ClassificationRejectIncomplete marks documents too thin to review.
	ClassificationRejectIncomplete Classification = "reject_incomplete"
	// ClassificationAcceptWithWarnings marks documents usable with caveats.
	ClassificationAcceptWithWarnings Classification = "accept_with_warnings"
	// ClassificationAcceptOK marks documents complete enough for review.
	ClassificationAcceptOK Classification = "accept_ok"
)

// Valid reports whether c is one of the defined tiers.
func (c Classification) Valid() bool {
	switch c {
	case ClassificationRejectIncomplete, ClassificationAcceptWithWarnings, ClassificationAcceptOK:
		return true
	}
	return false
}

// AnalyzerKind names the rule family that produced an assessment.
type AnalyzerKind string

const (
	AnalyzerLegal     AnalyzerKind = "legal"
	AnalyzerFinancial AnalyzerKind = "financial"
	AnalyzerNone      AnalyzerKind = "none"
)

// MaxOverallScore bounds every overall completeness score.
const MaxOverallScore = 100

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
