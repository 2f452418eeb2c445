package domain_test

import (
	"testing"

	"github.com/dealdesk/triage/internal/domain"
)

func TestPerformanceMetrics_Count(t *testing.T) {
	t.Helper()

	tests := []struct {
		name    string
		metrics domain.PerformanceMetrics
		want    int
	}{
		{
			name:    "none present",
			metrics: domain.PerformanceMetrics{},
			want:    0,
		},
		{
			name: "two present",
			metrics: domain.PerformanceMetrics{
				SalesRevenuePresent: true,
				NetProfitPresent:    true,
			},
			want: 2,
		},
		{
			name: "all present",
			metrics: domain.PerformanceMetrics{
				SalesRevenuePresent: true,
				ExpensesPresent:     true,
				NetProfitPresent:    true,
				EPSPresent:          true,
				EBITDAPresent:       true,
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNumericEvidence_Score(t *testing.T) {
	t.Helper()

	tests := []struct {
		name     string
		evidence domain.NumericEvidence
		want     int
	}{
		{
			name:     "no numeric content",
			evidence: domain.NumericEvidence{},
			want:     0,
		},
		{
			name: "percentages only",
			evidence: domain.NumericEvidence{
				PercentagesPresent: true,
			},
			want: 4,
		},
		{
			name: "substantial plus currency",
			evidence: domain.NumericEvidence{
				SubstantialNumbersPresent: true,
				CurrencyAmountsPresent:    true,
			},
			want: 13,
		},
		{
			name: "everything present caps at maximum",
			evidence: domain.NumericEvidence{
				SubstantialNumbersPresent: true,
				CurrencyAmountsPresent:    true,
				PercentagesPresent:        true,
				RatiosPresent:             true,
			},
			want: domain.MaxNumericScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.evidence.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeriodEvidence_Any(t *testing.T) {
	if (domain.PeriodEvidence{}).Any() {
		t.Error("empty PeriodEvidence reports a period marker")
	}
	if !(domain.PeriodEvidence{MonthlyPeriodsPresent: true}).Any() {
		t.Error("monthly marker not reported")
	}
}

func TestFinancialStatements_AnyCore(t *testing.T) {
	if (domain.FinancialStatements{NotesPresent: true}).AnyCore() {
		t.Error("notes alone should not count as a core statement")
	}
	if !(domain.FinancialStatements{CashFlowPresent: true}).AnyCore() {
		t.Error("cash flow statement not counted as core")
	}
}

func TestNewFinancialScores_Clamps(t *testing.T) {
	t.Helper()

	scores := domain.NewFinancialScores(45, 30, -3, 25, 130, domain.ClassificationAcceptOK)
	if scores.FinancialStatementsScore != domain.MaxStatementsScore {
		t.Errorf("FinancialStatementsScore = %d, want %d", scores.FinancialStatementsScore, domain.MaxStatementsScore)
	}
	if scores.PerformanceMetricsScore != domain.MaxPerformanceScore {
		t.Errorf("PerformanceMetricsScore = %d, want %d", scores.PerformanceMetricsScore, domain.MaxPerformanceScore)
	}
	if scores.PeriodEvidenceScore != 0 {
		t.Errorf("PeriodEvidenceScore = %d, want 0", scores.PeriodEvidenceScore)
	}
	if scores.NumericContentScore != domain.MaxNumericScore {
		t.Errorf("NumericContentScore = %d, want %d", scores.NumericContentScore, domain.MaxNumericScore)
	}
	if scores.OverallScore != domain.MaxOverallScore {
		t.Errorf("OverallScore = %d, want %d", scores.OverallScore, domain.MaxOverallScore)
	}
}
