// triage/internal/completeness/financial_signals.go
package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// Numeric evidence thresholds.
const (
	minDistinctYears      = 2
	minCurrencyMatches    = 3
	minPercentMatches     = 2
	minSubstantialTokens  = 15
	minDataRows           = 5
	minRatioMatches       = 3
	minRatioContextTokens = 10
)

// analyzeStatements checks which core financial statements the text names.
func analyzeStatements(lower string) domain.FinancialStatements {
	return domain.FinancialStatements{
		ProfitAndLossPresent: anyPatternMatches(profitAndLossPatterns, lower),
		BalanceSheetPresent:  anyPatternMatches(balanceSheetPatterns, lower),
		CashFlowPresent:      anyPatternMatches(cashFlowPatterns, lower),
		NotesPresent:         anyPatternMatches(notesPatterns, lower),
	}
}

// analyzePerformance checks which headline performance metrics appear.
func analyzePerformance(lower string) domain.PerformanceMetrics {
	return domain.PerformanceMetrics{
		SalesRevenuePresent: anyPatternMatches(salesRevenuePatterns, lower),
		ExpensesPresent:     anyPatternMatches(expensesPatterns, lower),
		NetProfitPresent:    anyPatternMatches(netProfitPatterns, lower),
		EPSPresent:          anyPatternMatches(epsPatterns, lower),
		EBITDAPresent:       anyPatternMatches(ebitdaPatterns, lower),
	}
}

// analyzePeriods checks the reporting-period markers. Year references need
// at least two distinct years so a single copyright year does not count as
// period evidence.
func analyzePeriods(normText, lower string) domain.PeriodEvidence {
	years := make(map[string]struct{})
	for _, re := range yearReferencePatterns {
		for _, m := range re.FindAllString(normText, -1) {
			years[m] = struct{}{}
		}
	}
	return domain.PeriodEvidence{
		FYEndingPresent:       anyPatternMatches(fyEndingPatterns, lower),
		QuarterlyDatesPresent: anyPatternMatches(quarterlyPatterns, lower),
		MonthlyPeriodsPresent: anyPatternMatches(monthlyPatterns, lower),
		YearReferencesPresent: len(years) >= minDistinctYears,
	}
}

// analyzeNumeric measures how much real numeric content the text carries,
// as opposed to template zeros and page numbers.
func analyzeNumeric(normText string) domain.NumericEvidence {
	var currencyMatches []string
	for _, re := range currencyAmountPatterns {
		currencyMatches = append(currencyMatches, re.FindAllString(normText, -1)...)
	}
	// The non-zero check is strict: any zero digit anywhere ("₹100")
	// disqualifies a match, not just all-zero amounts.
	nonZeroCurrency := 0
	for _, m := range currencyMatches {
		if !strings.Contains(m, "0") {
			nonZeroCurrency++
		}
	}

	percentCount := len(percentTokenPattern.FindAllString(normText, -1))

	nonZeroTokens := 0
	for _, token := range numberTokenPattern.FindAllString(normText, -1) {
		if !allZeroToken(token) {
			nonZeroTokens++
		}
	}

	dataRows := 0
	for _, line := range strings.Split(normText, "\n") {
		if dataRowPattern.MatchString(line) {
			dataRows++
		}
	}

	ratioCount := 0
	for _, re := range ratioPatterns {
		ratioCount += len(re.FindAllString(normText, -1))
	}

	return domain.NumericEvidence{
		SubstantialNumbersPresent: nonZeroTokens >= minSubstantialTokens && dataRows >= minDataRows,
		CurrencyAmountsPresent:    len(currencyMatches) >= minCurrencyMatches && nonZeroCurrency >= 1,
		PercentagesPresent:        percentCount >= minPercentMatches,
		RatiosPresent:             ratioCount >= minRatioMatches && nonZeroTokens >= minRatioContextTokens,
	}
}

// allZeroToken reports whether a matched number token carries no non-zero
// digit ("0", "000", "0.00", "0,000"). Template placeholder cells are
// almost always zeros.
func allZeroToken(token string) bool {
	for _, r := range token {
		if r >= '1' && r <= '9' {
			return false
		}
	}
	return true
}
