package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// Minimum distinct keyword hits for a section to read as present. Dense
// sections (reps) need more corroboration than thin ones (covenants).
const (
	pricePaymentMinHits      = 2
	repsWarrantiesMinHits    = 3
	closingConditionsMinHits = 2
	indemnitiesMinHits       = 2
	dealFinancialsMinHits    = 2
	litigationMinHits        = 2
	covenantsMinHits         = 1
)

func (a *LegalAnalyzer) analyzePricePayment(normText, lower string) domain.PriceAndPayment {
	cash := strings.Contains(lower, "cash consideration")
	stock := strings.Contains(lower, "stock consideration")
	paymentForm := domain.PaymentUnknown
	switch {
	case cash && stock:
		paymentForm = domain.PaymentMixed
	case cash:
		paymentForm = domain.PaymentCash
	case stock:
		paymentForm = domain.PaymentStock
	case strings.Contains(lower, "exchange ratio"):
		paymentForm = domain.PaymentStock
	}

	return domain.PriceAndPayment{
		PurchasePricePresent:       a.scanners.minHits(BucketPricePayment, lower, pricePaymentMinHits),
		CurrencyPresent:            anyPatternMatches(currencyPatterns, normText),
		EnterpriseValuePresent:     strings.Contains(lower, "enterprise value"),
		EquityValuePresent:         strings.Contains(lower, "equity value"),
		NetDebtPresent:             containsAny(lower, "net debt", "cash-free debt-free"),
		WorkingCapitalPresent:      strings.Contains(lower, "working capital"),
		AdjustmentMechanismPresent: containsAny(lower, "adjustment", "true-up", "closing statement", "closing adjustment"),
		EarnoutPresent:             containsAny(lower, "earn-out", "earnout", "milestone payment"),
		EscrowHoldbackPresent:      containsAny(lower, "escrow", "holdback", "retention amount"),
		PaymentForm:                paymentForm,
		EvidenceSnippets:           a.scanners.evidence(BucketPricePayment, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeRepsWarranties(normText, lower string) domain.RepsAndWarranties {
	topics := domain.RepTopics{
		AuthorityOrganisation:      containsAny(lower, "authority", "organisation", "capitalization"),
		Capitalisation:             containsAny(lower, "capitalisation", "capitalization"),
		FinancialStatements:        strings.Contains(lower, "financial statements"),
		UndisclosedLiabilities:     strings.Contains(lower, "undisclosed liabilit"),
		ComplianceWithLaws:         strings.Contains(lower, "compliance with laws"),
		Tax:                        strings.Contains(lower, "tax matters") || (strings.Contains(lower, "tax") && strings.Contains(lower, "return")),
		EmploymentBenefits:         containsAny(lower, "employment", "benefits"),
		IP:                         containsAny(lower, "intellectual property", "infringement"),
		MaterialContracts:          strings.Contains(lower, "material contracts"),
		LitigationInvestigations:   containsAny(lower, "litigation", "investigation"),
		Environmental:              strings.Contains(lower, "environmental"),
		AntiCorruptionSanctionsAML: containsAny(lower, "anti-corruption", "sanctions", "aml"),
		DataProtectionPrivacy:      containsAny(lower, "data protection", "privacy"),
	}

	return domain.RepsAndWarranties{
		SectionPresent:             a.scanners.minHits(BucketRepsWarranties, lower, repsWarrantiesMinHits),
		DisclosureSchedulesPresent: containsAny(lower, "disclosure schedule", "disclosure schedules"),
		MAEMACPresent:              containsAny(lower, "material adverse effect", "mae", "mac"),
		KnowledgeQualifiersPresent: containsAny(lower, "knowledge qualifier", "to the knowledge of"),
		RepTopicsHit:               topics,
		EvidenceSnippets:           a.scanners.evidence(BucketRepsWarranties, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeCovenants(normText, lower string) domain.Covenants {
	return domain.Covenants{
		SectionPresent:            a.scanners.minHits(BucketCovenants, lower, covenantsMinHits),
		OrdinaryCourse:            strings.Contains(lower, "ordinary course"),
		NegativeCovenants:         strings.Contains(lower, "negative covenant"),
		AccessToInfoDueDiligence:  containsAny(lower, "access to information", "due diligence"),
		EmployeeMatters:           containsAny(lower, "employee matters", "retention"),
		ConfidentialityNoncompete: containsAny(lower, "non-compete", "non-solicit", "confidentiality"),
		TSATransition:             containsAny(lower, "transition services", "tsa"),
		Evidence:                  a.scanners.evidence(BucketCovenants, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeClosingConditions(normText, lower string) domain.ClosingConditions {
	return domain.ClosingConditions{
		SectionPresent:           a.scanners.minHits(BucketClosingConditions, lower, closingConditionsMinHits),
		RegulatoryApprovals:      containsAny(lower, "regulatory approval", "clearance"),
		ThirdPartyConsents:       containsAny(lower, "third party consent", "third-party consent"),
		ShareholderBoardApproval: containsAny(lower, "board approval", "shareholder approval"),
		NoInjunction:             strings.Contains(lower, "no injunction"),
		BringDown:                containsAny(lower, "bring-down", "bring down"),
		Deliverables:             containsAny(lower, "deliverables", "closing deliverables"),
		Evidence:                 a.scanners.evidence(BucketClosingConditions, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeTermination(normText, lower string) domain.TerminationAndRemedies {
	return domain.TerminationAndRemedies{
		TerminationRights:   containsAny(lower, "termination", "terminate"),
		OutsideDate:         containsAny(lower, "outside date", "long stop date", "drop dead date"),
		BreakFee:            containsAny(lower, "break fee", "reverse break fee"),
		SpecificPerformance: strings.Contains(lower, "specific performance"),
		Remedies:            strings.Contains(lower, "remedies"),
		Evidence:            a.scanners.evidence(BucketTerminationRemedies, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeIndemnities(normText, lower string) domain.IndemnitiesAndLimits {
	return domain.IndemnitiesAndLimits{
		IndemnityPresent:    a.scanners.minHits(BucketIndemnitiesLimits, lower, indemnitiesMinHits),
		Survival:            containsAny(lower, "survival period", "survival"),
		Basket:              containsAny(lower, "basket", "deductible", "tipping basket"),
		Cap:                 containsAny(lower, "cap", "limitation of liability", "maximum"),
		EscrowClaimsProcess: strings.Contains(lower, "escrow claims"),
		FraudCarveout:       containsAny(lower, "fraud carve-out", "willful misconduct"),
		RWI:                 containsAny(lower, "representation and warranty insurance", "rwi", "reps and warranties insurance"),
		Evidence:            a.scanners.evidence(BucketIndemnitiesLimits, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeFinancials(normText, lower string) domain.Financials {
	standard := domain.StandardUnknown
	switch {
	case strings.Contains(lower, "ifrs"):
		standard = domain.StandardIFRS
	case strings.Contains(lower, "us gaap"):
		standard = domain.StandardUSGAAP
	case strings.Contains(lower, "ssfrs"):
		standard = domain.StandardSSFRS
	case containsAny(lower, "accounting standard", "accounting principle"):
		standard = domain.StandardOther
	}

	return domain.Financials{
		FinancialStatements: a.scanners.minHits(BucketFinancials, lower, dealFinancialsMinHits),
		AuditedUnaudited:    containsAny(lower, "audited", "unaudited"),
		Standard:            standard,
		PeriodCovered:       containsAny(lower, "period", "year ended", "quarter ended"),
		EBITDA:              containsAny(lower, "ebitda", "adjusted ebitda"),
		RevenueRecognition:  strings.Contains(lower, "revenue recognition"),
		ForecastBudget:      containsAny(lower, "forecast", "projections", "budget"),
		QofE:                containsAny(lower, "quality of earnings", "qoe"),
		Evidence:            a.scanners.evidence(BucketFinancials, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeCapitalDebt(normText, lower string) domain.CapitalAndDebt {
	return domain.CapitalAndDebt{
		CapTable:              containsAny(lower, "cap table", "capitalization table"),
		Securities:            containsAny(lower, "options", "warrants", "convertibles", "safe", "preference shares"),
		DebtFacility:          containsAny(lower, "credit facility", "loan agreement", "debt"),
		LiensSecurityInterest: containsAny(lower, "lien", "charge", "pledge", "security interest", "mortgage"),
		DefaultsWaivers:       containsAny(lower, "default", "covenant breach", "waiver"),
		PayoffRelease:         containsAny(lower, "payoff letter", "release of liens"),
		Evidence:              a.scanners.evidence(BucketCapitalDebt, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeTax(normText, lower string) domain.Tax {
	return domain.Tax{
		TaxReturns:           strings.Contains(lower, "tax returns"),
		TaxAuditsDisputes:    containsAny(lower, "tax audit", "assessment"),
		Withholding:          strings.Contains(lower, "withholding tax"),
		VATGST:               containsAny(lower, "vat", "gst"),
		TransferPricing:      strings.Contains(lower, "transfer pricing"),
		TaxIndemnityCovenant: containsAny(lower, "tax indemnity", "tax covenant"),
		Evidence:             a.scanners.evidence(BucketTax, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeLitigation(normText, lower string) domain.LitigationAndAllegations {
	return domain.LitigationAndAllegations{
		LitigationPresent:                  a.scanners.minHits(BucketLitigationClaims, lower, litigationMinHits),
		AllegationsAccusations:             containsAny(lower, "allegation", "accusations", "complaint"),
		RegulatoryInvestigation:            containsAny(lower, "investigation", "inquiry", "subpoena"),
		DemandLetters:                      containsAny(lower, "demand letter", "cease and desist"),
		SettlementConsentOrder:             containsAny(lower, "settlement", "consent order", "injunction"),
		ContingentLiabilityReserves:        containsAny(lower, "contingent liability", "provision", "reserve"),
		WhistleblowerInternalInvestigation: containsAny(lower, "whistleblower", "internal investigation"),
		Evidence:                           a.scanners.evidence(BucketLitigationClaims, normText, lower),
	}
}

func (a *LegalAnalyzer) analyzeCompliance(normText, lower string) domain.Compliance {
	return domain.Compliance{
		AntiBribery:           containsAny(lower, "anti-bribery", "anti-corruption", "fcpa", "uk bribery act"),
		AMLKYCSanctions:       containsAny(lower, "aml", "kyc", "sanctions", "ofac"),
		CompetitionAntitrust:  containsAny(lower, "antitrust", "competition law"),
		PrivacyDataProtection: containsAny(lower, "pdpa", "gdpr", "data protection", "privacy"),
		CybersecurityBreach:   containsAny(lower, "cybersecurity", "data breach"),
		ExportControls:        strings.Contains(lower, "export controls"),
		EnvironmentHS:         containsAny(lower, "health and safety", "environmental"),
		Evidence:              a.scanners.evidence(BucketCompliance, normText, lower),
	}
}

// analyzeEvidenceStrength records the document-wide hard-evidence markers
// on the original-case text.
func analyzeEvidenceStrength(normText string) domain.EvidenceStrength {
	return domain.EvidenceStrength{
		NumbersPresent:                digitsPattern.MatchString(normText),
		DatesPresent:                  anyPatternMatches(datePatterns, normText),
		PercentagesPresent:            anyPatternMatches(percentagePatterns, normText),
		DefinedTermPatternPresent:     anyPatternMatches(definedTermPatterns, normText),
		ScheduleExhibitPatternPresent: anyPatternMatches(schedulePatterns, normText),
	}
}
