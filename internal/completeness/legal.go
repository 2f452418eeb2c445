// triage/internal/completeness/legal.go
package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// Classification thresholds for the overall legal score.
const (
	legalWarnFloor   = 50
	legalAcceptFloor = 70
)

// Evidence strength weights. The sum is capped at MaxEvidenceStrengthScore.
const (
	evidenceCurrencyOrNumbersPoints = 6
	evidenceDatesPoints             = 6
	evidencePercentagesPoints       = 4
	evidenceDefinedTermsPoints      = 7
	evidenceSchedulesPoints         = 7
)

// Hard-fail rule thresholds.
const (
	minResolvedParties   = 2
	genericCoverageFloor = 30
)

// hardFailPrefix marks the rejection reason carried in missing_core_buckets
// when a hard-fail rule fires.
const hardFailPrefix = "HARD_FAIL: "

// Hard-fail reasons, reported verbatim.
const (
	reasonNoParties               = "No parties: Buyer/seller/target names not found (at least 2 of 3 missing)"
	reasonNoStructure             = "No transaction structure: No 'asset purchase/share purchase/merger/acquisition' style hits"
	reasonGenericOnly             = "Generic-only indicator: High narrative keywords but missing hard evidence"
	reasonUnsupportedNoLitigation = "Unsupported 'no litigation' claim without schedule references"
)

// LegalAnalyzer scores deal documents for completeness. It is stateless
// across calls and safe for concurrent use.
type LegalAnalyzer struct {
	scanners *scannerSet
	logger   Logger
}

// NewLegalAnalyzer builds the analyzer and its keyword automata.
func NewLegalAnalyzer(logger Logger) *LegalAnalyzer {
	return &LegalAnalyzer{
		scanners: newScannerSet(legalKeywordLists),
		logger:   logger,
	}
}

// Analyze scores one deal document. Stages run in a fixed order: signal
// extraction, bucket aggregation, advisory flags, hard-fail rules, and
// only then score-threshold classification. Flags are derived before the
// hard-fail rules run so the rules read settled flag values, never
// defaults.
func (a *LegalAnalyzer) Analyze(doc domain.RawDocument) domain.DealCompletenessAnalysis {
	normText := normalizeText(doc.Text)
	lower := strings.ToLower(normText)

	analysis := domain.DealCompletenessAnalysis{
		DocMeta:                  analyzeDocumentMeta(doc.Filename, lower, doc.PageCount),
		Entities:                 extractEntities(normText),
		Deal:                     analyzeDealInfo(normText, lower),
		PriceAndPayment:          a.analyzePricePayment(normText, lower),
		RepsAndWarranties:        a.analyzeRepsWarranties(normText, lower),
		Covenants:                a.analyzeCovenants(normText, lower),
		ClosingConditions:        a.analyzeClosingConditions(normText, lower),
		TerminationAndRemedies:   a.analyzeTermination(normText, lower),
		IndemnitiesAndLimits:     a.analyzeIndemnities(normText, lower),
		Financials:               a.analyzeFinancials(normText, lower),
		CapitalAndDebt:           a.analyzeCapitalDebt(normText, lower),
		Tax:                      a.analyzeTax(normText, lower),
		LitigationAndAllegations: a.analyzeLitigation(normText, lower),
		Compliance:               a.analyzeCompliance(normText, lower),
		EvidenceStrength:         analyzeEvidenceStrength(normText),
	}

	present := coreBucketsPresent(&analysis)
	coverage := bucketCoverageScore(present)
	evidence := evidenceStrengthScore(&analysis)
	flags := deriveFlags(&analysis, present, coverage)

	if reason, failed := hardFailReason(&analysis, coverage, flags); failed {
		flags.LikelyTeaserOrSummary = true
		flags.MissingCoreBuckets = []string{hardFailPrefix + reason}
		analysis.Flags = flags
		analysis.Scores = domain.NewLegalScores(0, 0, domain.ClassificationRejectIncomplete)
		a.logger.Info("deal document hard-failed",
			"filename", doc.Filename,
			"doc_type", string(analysis.DocMeta.DocTypeGuess),
			"reason", reason)
		return analysis
	}

	classification := classifyLegal(coverage + evidence)
	if flags.LikelyTeaserOrSummary && classification == domain.ClassificationAcceptOK {
		classification = domain.ClassificationAcceptWithWarnings
	}
	analysis.Flags = flags
	analysis.Scores = domain.NewLegalScores(coverage, evidence, classification)

	a.logger.Debug("deal document scored",
		"filename", doc.Filename,
		"doc_type", string(analysis.DocMeta.DocTypeGuess),
		"coverage", coverage,
		"evidence", evidence,
		"classification", string(classification))
	return analysis
}

// evidenceStrengthScore rewards hard-to-fake content. Deal-info hits count
// as fallbacks for their raw pattern checks.
func evidenceStrengthScore(a *domain.DealCompletenessAnalysis) int {
	score := 0
	if a.PriceAndPayment.CurrencyPresent || a.EvidenceStrength.NumbersPresent {
		score += evidenceCurrencyOrNumbersPoints
	}
	if a.EvidenceStrength.DatesPresent || a.Deal.AnyDate() {
		score += evidenceDatesPoints
	}
	if a.EvidenceStrength.PercentagesPresent {
		score += evidencePercentagesPoints
	}
	if a.EvidenceStrength.DefinedTermPatternPresent || a.Deal.DefinedTermsPresent {
		score += evidenceDefinedTermsPoints
	}
	if a.EvidenceStrength.ScheduleExhibitPatternPresent || a.Deal.ScheduleOrExhibitRefsPresent {
		score += evidenceSchedulesPoints
	}
	if score > domain.MaxEvidenceStrengthScore {
		score = domain.MaxEvidenceStrengthScore
	}
	return score
}

// deriveFlags computes the advisory flags from the assembled signals. It
// runs before hard-fail evaluation; the no-litigation rule reads the flag
// it produces.
func deriveFlags(a *domain.DealCompletenessAnalysis, present []bool, coverage int) domain.LegalFlags {
	teaserType := a.DocMeta.DocTypeGuess == domain.DocTypeTeaser ||
		a.DocMeta.DocTypeGuess == domain.DocTypeLOI ||
		a.DocMeta.DocTypeGuess == domain.DocTypeTermSheet ||
		a.DocMeta.DocTypeGuess == domain.DocTypeOther

	return domain.LegalFlags{
		LikelyTeaserOrSummary: teaserType &&
			!bucketIndemnitiesLimitsPresent(a) &&
			(!bucketClosingConditionsPresent(a) || !bucketRepsWarrantiesPresent(a)),
		MissingCoreBuckets:            missingCoreBuckets(present),
		GenericLanguageWithoutDetails: !hasHardEvidence(a) && coverage > 0,
		UnsupportedNoLitigationClaim: !a.LitigationAndAllegations.LitigationPresent &&
			!a.Deal.ScheduleOrExhibitRefsPresent &&
			!a.RepsAndWarranties.DisclosureSchedulesPresent,
	}
}

// hasHardEvidence reports whether any hard-to-fake marker is present.
func hasHardEvidence(a *domain.DealCompletenessAnalysis) bool {
	return a.EvidenceStrength.NumbersPresent ||
		a.EvidenceStrength.DatesPresent ||
		a.EvidenceStrength.ScheduleExhibitPatternPresent ||
		a.EvidenceStrength.DefinedTermPatternPresent
}

// hardFailReason evaluates the structural-absence rules in order and
// returns the first reason that applies. Rule order is part of the
// contract: a document failing several rules always reports the earliest.
func hardFailReason(a *domain.DealCompletenessAnalysis, coverage int, flags domain.LegalFlags) (string, bool) {
	if a.Entities.ResolvedParties() < minResolvedParties {
		return reasonNoParties, true
	}
	if a.Deal.Structure == domain.StructureUnknown {
		return reasonNoStructure, true
	}
	teaserish := a.DocMeta.DocTypeGuess == domain.DocTypeTeaser ||
		a.DocMeta.DocTypeGuess == domain.DocTypeOther
	if !hasHardEvidence(a) && coverage < genericCoverageFloor && teaserish {
		return reasonGenericOnly, true
	}
	if flags.UnsupportedNoLitigationClaim &&
		!a.Deal.ScheduleOrExhibitRefsPresent &&
		!a.RepsAndWarranties.DisclosureSchedulesPresent {
		return reasonUnsupportedNoLitigation, true
	}
	return "", false
}

func classifyLegal(score int) domain.Classification {
	switch {
	case score < legalWarnFloor:
		return domain.ClassificationRejectIncomplete
	case score < legalAcceptFloor:
		return domain.ClassificationAcceptWithWarnings
	default:
		return domain.ClassificationAcceptOK
	}
}
