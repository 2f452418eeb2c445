// triage/internal/completeness/financial.go
package completeness

import (
	"path/filepath"
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// Statement points. A full set of three core statements earns the category
// maximum; notes never score.
const (
	pointsProfitAndLoss = 12
	pointsBalanceSheet  = 10
	pointsCashFlow      = 8
)

// Performance category points by metric count.
const (
	performanceFullScore = 25
	performanceTwoScore  = 20
	performanceOneScore  = 10
)

// Period category weights, capped at domain.MaxPeriodScore.
const (
	pointsFYEnding  = 12
	pointsMultiYear = 8
	pointsQuarterly = 4
	pointsMonthly   = 3
)

// Data-quality penalty, subtracted from the category sum.
const (
	penaltyNoMeaningfulNumbers = 10
	penaltyLimitedNumbers      = 5
)

// Classification thresholds for the overall financial score.
const (
	financialAcceptFloor = 80
	financialWarnFloor   = 55
)

// Override thresholds. A document with no statements and too few metrics
// is capped; template-like content is demoted after classification.
const (
	hardFailScoreCap      = 25
	minPerformanceMetrics = 2
	demotionPeriodFloor   = 10
	demotionRejectFloor   = 40
)

// notesOnlyNumericFloor separates a statements-with-data delivery from a
// notes-only one.
const notesOnlyNumericFloor = 5

// FinancialAnalyzer scores financial statements for completeness. It is
// stateless across calls and safe for concurrent use.
type FinancialAnalyzer struct {
	logger Logger
}

// NewFinancialAnalyzer builds the analyzer.
func NewFinancialAnalyzer(logger Logger) *FinancialAnalyzer {
	return &FinancialAnalyzer{logger: logger}
}

// Analyze scores one financial document. Stages run in a fixed order:
// signal extraction, category scoring with the data-quality penalty,
// threshold classification, then the hard-fail override followed by the
// template-content demotion.
func (a *FinancialAnalyzer) Analyze(doc domain.RawDocument) domain.FinancialCompletenessAnalysis {
	normText := normalizeText(doc.Text)
	lower := strings.ToLower(normText)

	statements := analyzeStatements(lower)
	performance := analyzePerformance(lower)
	periods := analyzePeriods(normText, lower)
	numeric := analyzeNumeric(normText)

	scores, flags := scoreFinancial(statements, performance, periods, numeric)

	a.logger.Debug("financial document scored",
		"filename", doc.Filename,
		"statements", scores.FinancialStatementsScore,
		"performance", scores.PerformanceMetricsScore,
		"period", scores.PeriodEvidenceScore,
		"numeric", scores.NumericContentScore,
		"overall", scores.OverallScore,
		"classification", string(scores.Classification))

	return domain.FinancialCompletenessAnalysis{
		DocumentType:        financialDocType(doc.Filename),
		FinancialStatements: statements,
		PerformanceMetrics:  performance,
		PeriodEvidence:      periods,
		NumericEvidence:     numeric,
		Scores:              scores,
		Flags:               flags,
	}
}

// financialDocType separates spreadsheet deliveries from narrative reports
// by extension.
func financialDocType(filename string) domain.FinancialDocType {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, spreadsheet := range spreadsheetExtensions {
		if ext == spreadsheet {
			return domain.FinancialSpreadsheet
		}
	}
	return domain.FinancialReport
}

// scoreFinancial turns the extracted signals into the score block and
// flags. The hard-fail override runs before the template demotion; on
// boundary scores the order decides the final tier.
func scoreFinancial(
	statements domain.FinancialStatements,
	performance domain.PerformanceMetrics,
	periods domain.PeriodEvidence,
	numeric domain.NumericEvidence,
) (domain.FinancialScores, domain.FinancialFlags) {
	statementsScore := 0
	if statements.ProfitAndLossPresent {
		statementsScore += pointsProfitAndLoss
	}
	if statements.BalanceSheetPresent {
		statementsScore += pointsBalanceSheet
	}
	if statements.CashFlowPresent {
		statementsScore += pointsCashFlow
	}

	performanceCount := performance.Count()
	performanceScore := 0
	switch {
	case performanceCount >= 3:
		performanceScore = performanceFullScore
	case performanceCount == 2:
		performanceScore = performanceTwoScore
	case performanceCount == 1:
		performanceScore = performanceOneScore
	}

	periodScore := 0
	if periods.FYEndingPresent {
		periodScore += pointsFYEnding
	}
	if periods.YearReferencesPresent {
		periodScore += pointsMultiYear
	}
	if periods.QuarterlyDatesPresent {
		periodScore += pointsQuarterly
	}
	if periods.MonthlyPeriodsPresent {
		periodScore += pointsMonthly
	}
	if periodScore > domain.MaxPeriodScore {
		periodScore = domain.MaxPeriodScore
	}

	numericScore := numeric.Score()

	penalty := 0
	switch {
	case !numeric.SubstantialNumbersPresent && !numeric.CurrencyAmountsPresent:
		penalty = penaltyNoMeaningfulNumbers
	case !numeric.SubstantialNumbersPresent:
		penalty = penaltyLimitedNumbers
	}

	total := statementsScore + performanceScore + periodScore + numericScore - penalty
	if total < 0 {
		total = 0
	}

	flags := domain.FinancialFlags{
		NoFinancialStatements:          !statements.AnyCore(),
		InsufficientPerformanceMetrics: performanceCount < minPerformanceMetrics,
		MissingPeriodEvidence:          !periods.Any(),
		MinimalNumericContent:          !numeric.SubstantialNumbersPresent && !numeric.CurrencyAmountsPresent,
		LikelyCoverPageOnly:            statementsScore == 0 && performanceScore == 0,
		LikelyNotesOnly:                statementsScore > 0 && numericScore < notesOnlyNumericFloor,
	}

	classification := classifyFinancial(total)

	if flags.NoFinancialStatements && flags.InsufficientPerformanceMetrics {
		classification = domain.ClassificationRejectIncomplete
		if total > hardFailScoreCap {
			total = hardFailScoreCap
		}
	}
	if flags.MinimalNumericContent && periodScore < demotionPeriodFloor {
		classification = domain.ClassificationAcceptWithWarnings
		if total < demotionRejectFloor {
			classification = domain.ClassificationRejectIncomplete
		}
	}

	return domain.NewFinancialScores(statementsScore, performanceScore, periodScore, numericScore, total, classification), flags
}

func classifyFinancial(total int) domain.Classification {
	switch {
	case total >= financialAcceptFloor:
		return domain.ClassificationAcceptOK
	case total >= financialWarnFloor:
		return domain.ClassificationAcceptWithWarnings
	default:
		return domain.ClassificationRejectIncomplete
	}
}
