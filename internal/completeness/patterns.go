// triage/internal/completeness/patterns.go
package completeness

import "regexp"

// PatternLibraryVersion identifies the static matching tables below. Bump it
// whenever a keyword list, regex, or threshold changes so downstream systems
// can tell score runs apart.
const PatternLibraryVersion = "1.0.0"

// Core bucket names. The seven scoring buckets and the reporting order they
// appear in live in buckets.go; the remaining names only feed section
// signals and evidence extraction.
const (
	BucketDealIdentity        = "deal_identity"
	BucketPricePayment        = "price_payment"
	BucketRepsWarranties      = "reps_warranties"
	BucketCovenants           = "covenants"
	BucketClosingConditions   = "closing_conditions"
	BucketTerminationRemedies = "termination_remedies"
	BucketIndemnitiesLimits   = "indemnities_limits"
	BucketFinancials          = "financials"
	BucketCapitalDebt         = "capital_debt"
	BucketTax                 = "tax"
	BucketLitigationClaims    = "litigation_claims"
	BucketCompliance          = "compliance"
)

// keywordList is one ordered keyword table. Order is load-bearing: evidence
// extraction walks the list front to back, so earlier keywords win snippet
// slots.
type keywordList struct {
	name     string
	keywords []string
}

// legalKeywordLists holds the twelve deal-document keyword tables. Every
// entry is lowercase; matching is substring containment over lowercased
// text, so short entries like "cap" and "mae" also hit inside longer words.
var legalKeywordLists = []keywordList{
	{name: BucketDealIdentity, keywords: []string{
		"buyer", "purchaser", "acquirer", "seller", "vendor", "target",
		"acquired company", "transaction", "acquisition", "merger",
		"asset purchase", "share purchase", "stock purchase", "merger agreement",
		"signing date", "closing date", "effective date", "governing law",
		"jurisdiction", "venue", "forum",
	}},
	{name: BucketPricePayment, keywords: []string{
		"purchase price", "consideration", "enterprise value", "equity value",
		"working capital", "net debt", "cash-free debt-free", "adjustment",
		"true-up", "closing statement", "earn-out", "milestone payment",
		"escrow", "holdback", "retention amount", "cash consideration",
		"stock consideration", "exchange ratio",
	}},
	{name: BucketRepsWarranties, keywords: []string{
		"representations and warranties", "reps and warranties",
		"disclosure schedule", "disclosure schedules", "materiality",
		"material adverse effect", "mae", "mac", "knowledge qualifier",
		"to the knowledge of", "authority", "organisation", "capitalization",
		"financial statements", "undisclosed liabilities", "compliance with laws",
		"tax matters", "employment", "benefits", "intellectual property", "ip",
		"infringement", "material contracts", "litigation", "investigation",
		"environmental", "anti-corruption", "sanctions", "aml",
		"data protection", "privacy",
	}},
	{name: BucketCovenants, keywords: []string{
		"covenants", "ordinary course", "negative covenant",
		"access to information", "due diligence", "employee matters",
		"retention", "non-compete", "non-solicit", "confidentiality",
		"transition services", "tsa",
	}},
	{name: BucketClosingConditions, keywords: []string{
		"conditions to closing", "closing conditions", "cps",
		"regulatory approval", "clearance", "third party consent",
		"board approval", "shareholder approval", "no injunction",
		"bring-down", "deliverables", "closing deliverables",
	}},
	{name: BucketTerminationRemedies, keywords: []string{
		"termination", "terminate", "outside date", "long stop date",
		"drop dead date", "break fee", "reverse break fee",
		"specific performance", "remedies",
	}},
	{name: BucketIndemnitiesLimits, keywords: []string{
		"indemnification", "indemnity", "survival period", "basket",
		"deductible", "tipping basket", "cap", "limitation of liability",
		"escrow claims", "fraud carve-out", "willful misconduct",
		"representation and warranty insurance", "rwi",
	}},
	{name: BucketFinancials, keywords: []string{
		"income statement", "profit and loss", "p&l", "balance sheet",
		"cash flow statement", "audited", "unaudited", "ifrs", "us gaap",
		"ssfrs", "ebitda", "adjusted ebitda", "revenue recognition",
		"forecast", "projections", "budget", "quality of earnings", "qoe",
	}},
	{name: BucketCapitalDebt, keywords: []string{
		"cap table", "capitalization table", "options", "warrants",
		"convertibles", "safe", "preference shares", "credit facility",
		"loan agreement", "debt", "lien", "charge", "pledge",
		"security interest", "mortgage", "default", "covenant breach",
		"waiver", "payoff letter", "release of liens",
	}},
	{name: BucketTax, keywords: []string{
		"tax returns", "tax audit", "assessment", "withholding tax", "vat",
		"gst", "transfer pricing", "tax indemnity", "tax covenant",
	}},
	{name: BucketLitigationClaims, keywords: []string{
		"litigation", "lawsuit", "claim", "dispute", "allegation",
		"accusations", "complaint", "demand letter", "cease and desist",
		"investigation", "inquiry", "subpoena", "settlement", "consent order",
		"injunction", "contingent liability", "provision", "reserve",
		"whistleblower", "internal investigation", "arbitration", "mediation",
	}},
	{name: BucketCompliance, keywords: []string{
		"anti-bribery", "anti-corruption", "fcpa", "uk bribery act", "aml",
		"kyc", "sanctions", "ofac", "antitrust", "competition law", "pdpa",
		"gdpr", "data protection", "privacy", "cybersecurity", "data breach",
		"export controls", "health and safety", "environmental",
	}},
}

// matchScope controls where a doc-type term is looked up.
type matchScope int

const (
	scopeBoth matchScope = iota
	scopeFilename
)

// docTypeCheck is one step of the document-type guess chain.
type docTypeCheck struct {
	docType string
	scope   matchScope
	terms   []string
}

// docTypeChecks resolve the document-type guess. Checked in order, first
// hit wins. Terms are substrings against the lowercased filename and,
// unless scoped to the filename, the lowercased body.
var docTypeChecks = []docTypeCheck{
	{docType: "teaser", scope: scopeBoth, terms: []string{
		"teaser", "overview", "executive summary", "information memorandum", "cim",
	}},
	{docType: "loi", scope: scopeBoth, terms: []string{
		"loi", "letter of intent", "term sheet", "heads of terms",
		"memorandum of understanding", "mou",
	}},
	{docType: "term_sheet", scope: scopeBoth, terms: []string{"term sheet"}},
	{docType: "spa", scope: scopeFilename, terms: []string{"spa", "sale", "purchase", "agreement"}},
	{docType: "apa", scope: scopeFilename, terms: []string{"apa", "asset"}},
	{docType: "msa", scope: scopeBoth, terms: []string{"merger", "scheme of arrangement"}},
	{docType: "nda", scope: scopeBoth, terms: []string{"confidentiality", "non-disclosure", "nda"}},
	{docType: "financials", scope: scopeFilename, terms: []string{"financial", "statement", "audit"}},
}

// structureCheck is one step of the deal-structure chain.
type structureCheck struct {
	structure string
	terms     []string
}

// structureChecks resolve the transaction form. Checked in order, first hit
// wins; a document mentioning both an asset sale and a merger reads as an
// asset deal.
var structureChecks = []structureCheck{
	{structure: "asset_purchase", terms: []string{"asset purchase", "asset sale"}},
	{structure: "share_purchase", terms: []string{"share purchase", "stock purchase", "equity purchase"}},
	{structure: "merger", terms: []string{"merger"}},
	{structure: "scheme", terms: []string{"scheme of arrangement"}},
	{structure: "tender_offer", terms: []string{"tender offer"}},
}

// companyNamePatterns pick up capitalized phrases ending in a corporate
// suffix. The character class spans spaces, so adjacent names separated
// only by words merge into one match; punctuation between names keeps
// them apart.
var companyNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z][a-zA-Z\s&]+(?:Inc|LLC|Ltd|Corp|Corporation|Limited|Company)\.?`),
	regexp.MustCompile(`[A-Z][a-zA-Z\s&]+(?:Holdings|Group|Partners|Capital|Ventures)`),
}

// Deal-fact patterns and their gate terms. Gates keep the regexes off
// documents that never talk about the concept.
var (
	definedTermPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"[A-Za-z0-9 ,.-]{2,40}"\s+(means|shall mean)`),
		regexp.MustCompile(`(?i)\b(defined terms|definitions)\b`),
	}
	schedulePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(schedule|exhibit|annex|appendix)\s+([A-Z]|\d+)(\.\d+)?\b`),
		regexp.MustCompile(`(?i)\bdisclosure schedule(s)?\b`),
	}
	currencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(USD|SGD|EUR|GBP|INR|AUD|JPY|CNY)\b`),
		regexp.MustCompile(`(?i)\b(\$|S\$|€|£)\s?\d`),
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	}
	percentagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+(\.\d+)?%\b`),
	}
	digitsPattern = regexp.MustCompile(`\d+`)

	governingLawPattern = regexp.MustCompile(`(?i)governed?\s+by\s+(?:the\s+)?laws?\s+of\s+([A-Za-z\s]+)`)
)

var (
	governingLawGateTerms  = []string{"governed by", "governing law", "jurisdiction", "venue"}
	closingDateGateTerms   = []string{"closing date", "completion date"}
	closingDateWindowTerms = []string{"closing", "completion"}
	effectiveDateGateTerms = []string{"effective date", "effective as of"}
)

// Financial-statement name patterns. Matched against lowercased text; the
// short forms ("bs", "cf", "pnl") are deliberately loose and hit inside
// longer words, which keeps recall high on terse spreadsheet exports.
var (
	profitAndLossPatterns = compileAll(
		`profit.*loss`, `p\s*&\s*l`, `income.*statement`, `pnl`,
		`statement.*income`, `profit.*account`, `trading.*account`,
		`revenue.*account`, `pl\s+statement`, `income.*expenses`,
	)
	balanceSheetPatterns = compileAll(
		`balance.*sheet`, `b\s*/\s*s`, `bs`, `financial.*position`,
		`statement.*financial.*position`, `assets.*liabilities`,
		`balance.*statement`,
	)
	cashFlowPatterns = compileAll(
		`cash.*flow`, `cashflow`, `c\s*/\s*f`, `cf`, `cash.*statement`,
		`statement.*cash.*flow`, `fund.*flow`,
	)
	notesPatterns = compileAll(
		`notes?.*to.*financial|notes?.*to.*accounts|significant.*accounting`,
	)
)

// Performance metric patterns, one family per headline figure.
var (
	salesRevenuePatterns = compileAll(
		`sales`, `revenue`, `turnover`, `income from operations`,
		`gross revenue`, `net sales`, `operating revenue`, `total income`,
		`sale of goods`, `service revenue`,
	)
	expensesPatterns = compileAll(
		`expenses`, `cost of goods sold`, `cogs`, `operating expenses`,
		`administrative expenses`, `selling expenses`, `total expenses`,
		`cost of sales`, `opex`, `overheads`, `expenditure`,
	)
	netProfitPatterns = compileAll(
		`net profit`, `net income`, `pat`, `profit after tax`, `net earnings`,
		`bottom line`, `profit for the year`, `comprehensive income`,
	)
	epsPatterns = compileAll(
		`earnings per share`, `eps`, `basic eps`, `diluted eps`,
		`earning per equity share`,
	)
	ebitdaPatterns = compileAll(
		`ebitda`, `ebit`, `operating profit`, `operating income`,
		`profit before interest`, `earnings before`,
	)
)

// Reporting-period patterns. Year references run over the original-case
// text and need two distinct years to count.
var (
	fyEndingPatterns = compileAll(
		`fy\s*(?:20\d{2}|1\d{3})`, `financial year.*(?:20\d{2}|1\d{3})`,
		`year.*end.*(?:20\d{2}|1\d{3})`,
	)
	quarterlyPatterns = compileAll(
		`q[1-4].*(?:20\d{2}|fy)`, `quarter.*(?:end|20\d{2})`,
		`half.*year.*(?:20\d{2})`,
	)
	yearReferencePatterns = compileAll(`\b20[1-2]\d\b`, `\b1[89]\d{2}\b`)
	monthlyPatterns       = compileAll(`march.*20\d{2}`, `mar.*20\d{2}`, `31.*march`, `31-mar`)
)

// Numeric content patterns for financial documents. Currency detection is
// tuned to rupee-denominated statements.
var (
	currencyAmountPatterns = compileAll(
		`(?i)₹[\d,]+`, `(?i)rs\.?\s*[\d,]+`, `(?i)inr[\d,]+`,
	)
	percentTokenPattern = regexp.MustCompile(`\d+\.?\d*%`)
	numberTokenPattern  = regexp.MustCompile(`\b\d+(?:[,.]\d+)*\b`)
	dataRowPattern      = regexp.MustCompile(`\d{3,}`)
	ratioPatterns       = compileAll(`\b\d+\.\d{2,}\b`, `\b\d+:\d+\b`)
)

// Router keyword tables. Spreadsheet extensions short-circuit to the
// financial analyzer; otherwise deal keywords are tried before financial
// ones so mixed documents land with the deal analyzer.
var (
	spreadsheetExtensions = []string{".xlsx", ".xls", ".csv"}

	legalFilenameKeys = []string{"m&a", "merger"}
	legalTextKeys     = []string{
		"merger", "m&a", "acquisition", "scheme of arrangement",
		"terms of merger", "nclt", "cci", "sebi", "regulatory", "consent",
		"termination", "change of control", "exclusivity", "non-compete",
		"indemnity", "penalty", "governing law", "confidentiality",
		"cross-border merger",
	}

	financialFilenameKeys = []string{"income", "balance", "cashflow", "financial"}
	financialTextKeys     = []string{
		"income statement", "balance sheet", "cash flow", "ebitda",
		"net income", "revenue", "cogs",
	}
)

// allowedUploadExtensions lists the intake formats, sorted for error text.
var allowedUploadExtensions = []string{".csv", ".docx", ".pdf", ".pptx", ".xlsx", ".zip"}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}
