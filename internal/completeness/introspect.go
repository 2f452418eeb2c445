package completeness

// KeywordTableInfo describes one keyword table for operator introspection.
type KeywordTableInfo struct {
	Bucket       string   `json:"bucket"`
	KeywordCount int      `json:"keyword_count"`
	Keywords     []string `json:"keywords"`
}

// PatternLibrary is a read-only snapshot of the static matching tables and
// core thresholds, served by the introspection endpoint so operators can
// see exactly which rules a deployment runs.
type PatternLibrary struct {
	Version                 string             `json:"version"`
	LegalKeywordTables      []KeywordTableInfo `json:"legal_keyword_tables"`
	CoreBuckets             []string           `json:"core_buckets"`
	BucketPresenceThreshold int                `json:"bucket_presence_threshold"`
	FinancialRegexFamilies  []string           `json:"financial_regex_families"`
	AllowedUploadExtensions []string           `json:"allowed_upload_extensions"`
}

// financialRegexFamilyNames lists the financial pattern families by name.
// The expressions themselves stay internal.
var financialRegexFamilyNames = []string{
	"profit_and_loss", "balance_sheet", "cash_flow", "notes",
	"sales_revenue", "expenses", "net_profit", "eps", "ebitda",
	"fy_ending", "quarterly_dates", "year_references", "monthly_periods",
	"currency_amounts", "percentages", "number_tokens", "ratios",
}

// Patterns returns the pattern library snapshot. Every slice is freshly
// allocated, so callers can hold the result without aliasing the tables.
func Patterns() PatternLibrary {
	tables := make([]KeywordTableInfo, 0, len(legalKeywordLists))
	for _, list := range legalKeywordLists {
		keywords := make([]string, len(list.keywords))
		copy(keywords, list.keywords)
		tables = append(tables, KeywordTableInfo{
			Bucket:       list.name,
			KeywordCount: len(list.keywords),
			Keywords:     keywords,
		})
	}
	coreBuckets := make([]string, len(coreBucketNames))
	copy(coreBuckets, coreBucketNames)
	families := make([]string, len(financialRegexFamilyNames))
	copy(families, financialRegexFamilyNames)
	extensions := make([]string, len(allowedUploadExtensions))
	copy(extensions, allowedUploadExtensions)

	return PatternLibrary{
		Version:                 PatternLibraryVersion,
		LegalKeywordTables:      tables,
		CoreBuckets:             coreBuckets,
		BucketPresenceThreshold: bucketPresenceThreshold,
		FinancialRegexFamilies:  families,
		AllowedUploadExtensions: extensions,
	}
}
