package domain

// FinancialDocType separates spreadsheet deliveries from narrative reports.
type FinancialDocType string

const (
	FinancialSpreadsheet FinancialDocType = "financial_spreadsheet"
	FinancialReport      FinancialDocType = "financial_report"
)

// Financial category score bounds.
const (
	MaxStatementsScore  = 30
	MaxPerformanceScore = 25
	MaxPeriodScore      = 25
	MaxNumericScore     = 20
)

// Numeric evidence weights feeding NumericEvidence.Score.
const (
	PointsSubstantialNumbers = 8
	PointsCurrencyAmounts    = 5
	PointsPercentages        = 4
	PointsRatios             = 3
)

// FinancialStatements records which core statements the text names.
// Notes are tracked but never score.
type FinancialStatements struct {
	ProfitAndLossPresent bool `json:"profit_and_loss_present"`
	BalanceSheetPresent  bool `json:"balance_sheet_present"`
	CashFlowPresent      bool `json:"cash_flow_present"`
	NotesPresent         bool `json:"notes_present"`
}

// AnyCore reports whether at least one scoring statement is present.
func (s FinancialStatements) AnyCore() bool {
	return s.ProfitAndLossPresent || s.BalanceSheetPresent || s.CashFlowPresent
}

// PerformanceMetrics records which headline performance figures appear.
type PerformanceMetrics struct {
	SalesRevenuePresent bool `json:"sales_revenue_present"`
	ExpensesPresent     bool `json:"expenses_present"`
	NetProfitPresent    bool `json:"net_profit_present"`
	EPSPresent          bool `json:"eps_present"`
	EBITDAPresent       bool `json:"ebitda_present"`
}

// Count returns how many performance metrics are present.
func (p PerformanceMetrics) Count() int {
	n := 0
	for _, present := range []bool{
		p.SalesRevenuePresent, p.ExpensesPresent, p.NetProfitPresent,
		p.EPSPresent, p.EBITDAPresent,
	} {
		if present {
			n++
		}
	}
	return n
}

// PeriodEvidence records which reporting-period markers appear.
type PeriodEvidence struct {
	FYEndingPresent       bool `json:"fy_ending_present"`
	QuarterlyDatesPresent bool `json:"quarterly_dates_present"`
	MonthlyPeriodsPresent bool `json:"monthly_periods_present"`
	YearReferencesPresent bool `json:"year_references_present"`
}

// Any reports whether any period marker is present.
func (p PeriodEvidence) Any() bool {
	return p.FYEndingPresent || p.QuarterlyDatesPresent ||
		p.MonthlyPeriodsPresent || p.YearReferencesPresent
}

// NumericEvidence records how much real numeric content the text carries.
type NumericEvidence struct {
	SubstantialNumbersPresent bool `json:"substantial_numbers_present"`
	CurrencyAmountsPresent    bool `json:"currency_amounts_present"`
	PercentagesPresent        bool `json:"percentages_present"`
	RatiosPresent             bool `json:"ratios_present"`
}

// Score converts numeric richness into its capped category sub-score.
func (n NumericEvidence) Score() int {
	score := 0
	if n.SubstantialNumbersPresent {
		score += PointsSubstantialNumbers
	}
	if n.CurrencyAmountsPresent {
		score += PointsCurrencyAmounts
	}
	if n.PercentagesPresent {
		score += PointsPercentages
	}
	if n.RatiosPresent {
		score += PointsRatios
	}
	return clampInt(score, 0, MaxNumericScore)
}

// FinancialScores is the score block of a financial-statements assessment.
// Build it with NewFinancialScores. OverallScore is not the category sum:
// it carries the data-quality penalty and any hard-fail cap.
type FinancialScores struct {
	FinancialStatementsScore int            `json:"financial_statements_score"`
	PerformanceMetricsScore  int            `json:"performance_metrics_score"`
	PeriodEvidenceScore      int            `json:"period_evidence_score"`
	NumericContentScore      int            `json:"numeric_content_score"`
	OverallScore             int            `json:"overall_score"`
	Classification           Classification `json:"classification"`
}

// NewFinancialScores clamps every category to its maximum and the overall
// score to [0, MaxOverallScore].
func NewFinancialScores(statements, performance, period, numeric, overall int, c Classification) FinancialScores {
	return FinancialScores{
		FinancialStatementsScore: clampInt(statements, 0, MaxStatementsScore),
		PerformanceMetricsScore:  clampInt(performance, 0, MaxPerformanceScore),
		PeriodEvidenceScore:      clampInt(period, 0, MaxPeriodScore),
		NumericContentScore:      clampInt(numeric, 0, MaxNumericScore),
		OverallScore:             clampInt(overall, 0, MaxOverallScore),
		Classification:           c,
	}
}

// FinancialFlags explains a financial assessment outcome.
type FinancialFlags struct {
	NoFinancialStatements          bool `json:"no_financial_statements"`
	InsufficientPerformanceMetrics bool `json:"insufficient_performance_metrics"`
	MissingPeriodEvidence          bool `json:"missing_period_evidence"`
	MinimalNumericContent          bool `json:"minimal_numeric_content"`
	LikelyCoverPageOnly            bool `json:"likely_cover_page_only"`
	LikelyNotesOnly                bool `json:"likely_notes_only"`
}

// FinancialCompletenessAnalysis is the full result of the
// financial-statements analyzer. Instances are built once and never
// mutated afterwards.
type FinancialCompletenessAnalysis struct {
	DocumentType        FinancialDocType    `json:"document_type"`
	FinancialStatements FinancialStatements `json:"financial_statements"`
	PerformanceMetrics  PerformanceMetrics  `json:"performance_metrics"`
	PeriodEvidence      PeriodEvidence      `json:"period_evidence"`
	NumericEvidence     NumericEvidence     `json:"numeric_evidence"`
	Scores              FinancialScores     `json:"scores"`
	Flags               FinancialFlags      `json:"flags"`
}
