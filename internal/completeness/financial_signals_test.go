// triage/internal/completeness/financial_signals_test.go
//nolint:testpackage // Testing internal scoring stages requires same package access
package completeness

import "testing"

func TestAnalyzeStatements_ShortFormsMatchInsideWords(t *testing.T) {
	// The short statement forms are deliberately loose; "bs" hits inside
	// "subsequent". Recall over precision for terse spreadsheet exports.
	got := analyzeStatements("subsequent events are described below")
	if !got.BalanceSheetPresent {
		t.Error("expected balance sheet to match inside 'subsequent'")
	}

	got = analyzeStatements("income statement, cash flow and notes to the financial statements")
	if !got.ProfitAndLossPresent {
		t.Error("expected profit and loss from 'income statement'")
	}
	if !got.CashFlowPresent {
		t.Error("expected cash flow")
	}
	if !got.NotesPresent {
		t.Error("expected notes")
	}
}

func TestAnalyzePerformance_CountsMetricFamilies(t *testing.T) {
	got := analyzePerformance("revenue grew while total expenses fell, lifting net profit")
	if !got.SalesRevenuePresent || !got.ExpensesPresent || !got.NetProfitPresent {
		t.Errorf("expected revenue, expenses and net profit, got %+v", got)
	}
	if got.EPSPresent || got.EBITDAPresent {
		t.Errorf("expected no eps or ebitda, got %+v", got)
	}
	if got.Count() != 3 {
		t.Errorf("expected 3 metrics, got %d", got.Count())
	}
}

func TestAnalyzePeriods_RequiresTwoDistinctYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "single year repeated", text: "fy 2023 results for 2023", want: false},
		{name: "two recent years", text: "comparing 2022 against 2023", want: true},
		{name: "two historic years", text: "records from 1988 and 1999", want: true},
		{name: "copyright year only", text: "copyright 2024", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzePeriods(tt.text, tt.text)
			if got.YearReferencesPresent != tt.want {
				t.Errorf("year references = %v, want %v", got.YearReferencesPresent, tt.want)
			}
		})
	}
}

func TestAnalyzeNumeric_CurrencyNeedsNonZeroAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "round template amounts", text: "Rs. 100 Rs. 200 Rs. 3,000", want: false},
		{name: "real amounts", text: "Rs. 123 Rs. 456 Rs. 789", want: true},
		{name: "too few amounts", text: "Rs. 123", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeNumeric(tt.text)
			if got.CurrencyAmountsPresent != tt.want {
				t.Errorf("currency amounts = %v, want %v", got.CurrencyAmountsPresent, tt.want)
			}
		})
	}
}

func TestAnalyzeNumeric_SubstantialNeedsTokensAndRows(t *testing.T) {
	row := "123 456 789\n"
	spread := row + row + row + row + row
	if got := analyzeNumeric(spread); !got.SubstantialNumbersPresent {
		t.Error("expected substantial numbers for 15 tokens across 5 rows")
	}

	oneLine := "123 456 789 123 456 789 123 456 789 123 456 789 123 456 789"
	if got := analyzeNumeric(oneLine); got.SubstantialNumbersPresent {
		t.Error("expected no substantial numbers when all tokens share one row")
	}

	zeroRow := "000 000 000\n"
	zeros := zeroRow + zeroRow + zeroRow + zeroRow + zeroRow
	if got := analyzeNumeric(zeros); got.SubstantialNumbersPresent {
		t.Error("expected no substantial numbers for all-zero tokens")
	}
}

func TestAnalyzeNumeric_PercentThreshold(t *testing.T) {
	if got := analyzeNumeric("margin of 26.5%"); got.PercentagesPresent {
		t.Error("one percentage must not satisfy the threshold")
	}
	if got := analyzeNumeric("26.5% against 31.2%"); !got.PercentagesPresent {
		t.Error("two percentages must satisfy the threshold")
	}
}

func TestAllZeroToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{token: "0", want: true},
		{token: "000", want: true},
		{token: "0.0", want: true},
		{token: "0.00", want: true},
		{token: "0,000", want: true},
		{token: "0.0.0", want: true},
		{token: "10", want: false},
		{token: "0.5", want: false},
		{token: "1,000.00", want: false},
	}
	for _, tt := range tests {
		if got := allZeroToken(tt.token); got != tt.want {
			t.Errorf("allZeroToken(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
