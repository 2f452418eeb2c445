package domain

// LegalDocType is the guessed flavor of a deal document, resolved from
// filename and body keywords in priority order.
type LegalDocType string

const (
	DocTypeTeaser     LegalDocType = "teaser"
	DocTypeLOI        LegalDocType = "loi"
	DocTypeTermSheet  LegalDocType = "term_sheet"
	DocTypeSPA        LegalDocType = "spa"
	DocTypeAPA        LegalDocType = "apa"
	DocTypeMSA        LegalDocType = "msa"
	DocTypeNDA        LegalDocType = "nda"
	DocTypeFinancials LegalDocType = "financials"
	DocTypeOther      LegalDocType = "other"
)

// SourceFormat is the upstream extraction source of the text.
type SourceFormat string

const (
	SourcePDF        SourceFormat = "pdf"
	SourceDOCX       SourceFormat = "docx"
	SourceTXT        SourceFormat = "txt"
	SourceScannedPDF SourceFormat = "scanned_pdf"
)

// DealStructure is the transaction form resolved from structure keywords.
type DealStructure string

const (
	StructureAssetPurchase DealStructure = "asset_purchase"
	StructureSharePurchase DealStructure = "share_purchase"
	StructureMerger        DealStructure = "merger"
	StructureScheme        DealStructure = "scheme"
	StructureTenderOffer   DealStructure = "tender_offer"
	StructureUnknown       DealStructure = "unknown"
)

// PaymentForm is how consideration is paid, when the text says so.
type PaymentForm string

const (
	PaymentCash    PaymentForm = "cash"
	PaymentStock   PaymentForm = "stock"
	PaymentMixed   PaymentForm = "mixed"
	PaymentUnknown PaymentForm = "unknown"
)

// AccountingStandard is the reporting standard named by the document.
type AccountingStandard string

const (
	StandardIFRS    AccountingStandard = "ifrs"
	StandardUSGAAP  AccountingStandard = "us_gaap"
	StandardSSFRS   AccountingStandard = "ssfrs"
	StandardOther   AccountingStandard = "other"
	StandardUnknown AccountingStandard = "unknown"
)

// DocumentMeta describes the document itself, independent of its contents.
type DocumentMeta struct {
	DocTypeGuess LegalDocType `json:"doc_type_guess"`
	Language     string       `json:"language"`
	PageCount    int          `json:"page_count"`
	Source       SourceFormat `json:"source"`
	OCRUsed      bool         `json:"ocr_used"`
}

// EntityTypeCompany is the only entity type the name patterns resolve today.
const EntityTypeCompany = "company"

// EntityInfo is one party resolved from company-name patterns. An empty
// Name means the slot was never filled.
type EntityInfo struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	Jurisdiction string   `json:"jurisdiction"`
	EntityType   string   `json:"entity_type"`
}

// NewEntityInfo builds an entity slot with a non-nil alias list so empty
// slots serialize as [] rather than null.
func NewEntityInfo(name string) EntityInfo {
	return EntityInfo{Name: name, Aliases: []string{}, EntityType: EntityTypeCompany}
}

// Entities holds the positional buyer/seller/target assignment. Slots fill
// in encounter order, not by role semantics; documents dense with
// capitalized phrases can misassign roles.
type Entities struct {
	Buyer  EntityInfo `json:"buyer"`
	Seller EntityInfo `json:"seller"`
	Target EntityInfo `json:"target"`
}

// ResolvedParties counts how many of the three party slots carry a name.
func (e Entities) ResolvedParties() int {
	n := 0
	for _, name := range []string{e.Buyer.Name, e.Seller.Name, e.Target.Name} {
		if name != "" {
			n++
		}
	}
	return n
}

// DealInfo captures the headline transaction facts. Dates stay verbatim as
// matched; nothing here parses them into time values.
type DealInfo struct {
	Structure                    DealStructure `json:"structure"`
	SigningDate                  string        `json:"signing_date"`
	ClosingDate                  string        `json:"closing_date"`
	EffectiveDate                string        `json:"effective_date"`
	GoverningLaw                 string        `json:"governing_law"`
	VenueForum                   string        `json:"venue_forum"`
	DefinedTermsPresent          bool          `json:"defined_terms_present"`
	ScheduleOrExhibitRefsPresent bool          `json:"schedule_or_exhibit_refs_present"`
}

// AnyDate reports whether any of the three deal dates was found.
func (d DealInfo) AnyDate() bool {
	return d.SigningDate != "" || d.ClosingDate != "" || d.EffectiveDate != ""
}

// PriceAndPayment captures purchase-price and consideration signals.
type PriceAndPayment struct {
	PurchasePricePresent       bool        `json:"purchase_price_present"`
	CurrencyPresent            bool        `json:"currency_present"`
	EnterpriseValuePresent     bool        `json:"enterprise_value_present"`
	EquityValuePresent         bool        `json:"equity_value_present"`
	NetDebtPresent             bool        `json:"net_debt_present"`
	WorkingCapitalPresent      bool        `json:"working_capital_present"`
	AdjustmentMechanismPresent bool        `json:"adjustment_mechanism_present"`
	EarnoutPresent             bool        `json:"earnout_present"`
	EscrowHoldbackPresent      bool        `json:"escrow_holdback_present"`
	PaymentForm                PaymentForm `json:"payment_form"`
	EvidenceSnippets           []string    `json:"evidence_snippets"`
}

// RepTopics records which representation topics the text touches.
type RepTopics struct {
	AuthorityOrganisation      bool `json:"authority_organisation"`
	Capitalisation             bool `json:"capitalisation"`
	FinancialStatements        bool `json:"financial_statements"`
	UndisclosedLiabilities     bool `json:"undisclosed_liabilities"`
	ComplianceWithLaws         bool `json:"compliance_with_laws"`
	Tax                        bool `json:"tax"`
	EmploymentBenefits         bool `json:"employment_benefits"`
	IP                         bool `json:"ip"`
	MaterialContracts          bool `json:"material_contracts"`
	LitigationInvestigations   bool `json:"litigation_investigations"`
	Environmental              bool `json:"environmental"`
	AntiCorruptionSanctionsAML bool `json:"anti_corruption_sanctions_aml"`
	DataProtectionPrivacy      bool `json:"data_protection_privacy"`
}

// RepsAndWarranties captures the representations-and-warranties signals.
type RepsAndWarranties struct {
	SectionPresent             bool      `json:"section_present"`
	DisclosureSchedulesPresent bool      `json:"disclosure_schedules_present"`
	MAEMACPresent              bool      `json:"mae_mac_present"`
	KnowledgeQualifiersPresent bool      `json:"knowledge_qualifiers_present"`
	RepTopicsHit               RepTopics `json:"rep_topics_hit"`
	EvidenceSnippets           []string  `json:"evidence_snippets"`
}

// Covenants captures pre-closing conduct signals.
type Covenants struct {
	SectionPresent            bool     `json:"section_present"`
	OrdinaryCourse            bool     `json:"ordinary_course_present"`
	NegativeCovenants         bool     `json:"negative_covenants_present"`
	AccessToInfoDueDiligence  bool     `json:"access_to_info_due_diligence_present"`
	EmployeeMatters           bool     `json:"employee_matters_present"`
	ConfidentialityNoncompete bool     `json:"confidentiality_noncompete_present"`
	TSATransition             bool     `json:"tsa_transition_present"`
	Evidence                  []string `json:"evidence_snippets"`
}

// ClosingConditions captures conditions-to-closing signals.
type ClosingConditions struct {
	SectionPresent           bool     `json:"section_present"`
	RegulatoryApprovals      bool     `json:"regulatory_approvals_present"`
	ThirdPartyConsents       bool     `json:"third_party_consents_present"`
	ShareholderBoardApproval bool     `json:"shareholder_board_approval_present"`
	NoInjunction             bool     `json:"no_injunction_present"`
	BringDown                bool     `json:"bring_down_present"`
	Deliverables             bool     `json:"deliverables_present"`
	Evidence                 []string `json:"evidence_snippets"`
}

// TerminationAndRemedies captures exit-rights signals.
type TerminationAndRemedies struct {
	TerminationRights   bool     `json:"termination_rights_present"`
	OutsideDate         bool     `json:"outside_date_present"`
	BreakFee            bool     `json:"break_fee_present"`
	SpecificPerformance bool     `json:"specific_performance_present"`
	Remedies            bool     `json:"remedies_present"`
	Evidence            []string `json:"evidence_snippets"`
}

// IndemnitiesAndLimits captures indemnification and liability-limit signals.
type IndemnitiesAndLimits struct {
	IndemnityPresent    bool     `json:"indemnity_present"`
	Survival            bool     `json:"survival_present"`
	Basket              bool     `json:"basket_present"`
	Cap                 bool     `json:"cap_present"`
	EscrowClaimsProcess bool     `json:"escrow_claims_process_present"`
	FraudCarveout       bool     `json:"fraud_carveout_present"`
	RWI                 bool     `json:"rwi_present"`
	Evidence            []string `json:"evidence_snippets"`
}

// Financials captures the financial-disclosure signals of a deal document.
type Financials struct {
	FinancialStatements bool               `json:"financial_statements_present"`
	AuditedUnaudited    bool               `json:"audited_unaudited_present"`
	Standard            AccountingStandard `json:"standard_present"`
	PeriodCovered       bool               `json:"period_covered_present"`
	EBITDA              bool               `json:"ebitda_present"`
	RevenueRecognition  bool               `json:"revenue_recognition_present"`
	ForecastBudget      bool               `json:"forecast_budget_present"`
	QofE                bool               `json:"qoe_present"`
	Evidence            []string           `json:"evidence_snippets"`
}

// CapitalAndDebt captures capitalization and indebtedness signals.
type CapitalAndDebt struct {
	CapTable              bool     `json:"cap_table_present"`
	Securities            bool     `json:"securities_present"`
	DebtFacility          bool     `json:"debt_facility_present"`
	LiensSecurityInterest bool     `json:"liens_security_interest_present"`
	DefaultsWaivers       bool     `json:"defaults_waivers_present"`
	PayoffRelease         bool     `json:"payoff_release_present"`
	Evidence              []string `json:"evidence_snippets"`
}

// Tax captures tax-exposure signals.
type Tax struct {
	TaxReturns           bool     `json:"tax_returns_present"`
	TaxAuditsDisputes    bool     `json:"tax_audits_disputes_present"`
	Withholding          bool     `json:"withholding_present"`
	VATGST               bool     `json:"vat_gst_present"`
	TransferPricing      bool     `json:"transfer_pricing_present"`
	TaxIndemnityCovenant bool     `json:"tax_indemnity_covenant_present"`
	Evidence             []string `json:"evidence_snippets"`
}

// LitigationAndAllegations captures dispute and claim signals.
type LitigationAndAllegations struct {
	LitigationPresent                  bool     `json:"litigation_present"`
	AllegationsAccusations             bool     `json:"allegations_accusations_present"`
	RegulatoryInvestigation            bool     `json:"regulatory_investigation_present"`
	DemandLetters                      bool     `json:"demand_letters_present"`
	SettlementConsentOrder             bool     `json:"settlement_consent_order_present"`
	ContingentLiabilityReserves        bool     `json:"contingent_liability_reserves_present"`
	WhistleblowerInternalInvestigation bool     `json:"whistleblower_internal_investigation_present"`
	Evidence                           []string `json:"evidence_snippets"`
}

// Compliance captures regulatory-compliance signals.
type Compliance struct {
	AntiBribery           bool     `json:"anti_bribery_present"`
	AMLKYCSanctions       bool     `json:"aml_kyc_sanctions_present"`
	CompetitionAntitrust  bool     `json:"competition_antitrust_present"`
	PrivacyDataProtection bool     `json:"privacy_data_protection_present"`
	CybersecurityBreach   bool     `json:"cybersecurity_breach_present"`
	ExportControls        bool     `json:"export_controls_present"`
	EnvironmentHS         bool     `json:"environment_hs_present"`
	Evidence              []string `json:"evidence_snippets"`
}

// EvidenceStrength records the document-wide hard-evidence markers.
type EvidenceStrength struct {
	NumbersPresent                bool `json:"numbers_present"`
	DatesPresent                  bool `json:"dates_present"`
	PercentagesPresent            bool `json:"percentages_present"`
	DefinedTermPatternPresent     bool `json:"defined_term_pattern_present"`
	ScheduleExhibitPatternPresent bool `json:"schedule_exhibit_pattern_present"`
}

// Legal score component bounds. Coverage is ten points per present core
// bucket across seven buckets; evidence strength tops out at thirty.
const (
	MaxBucketCoverageScore   = 70
	MaxEvidenceStrengthScore = 30
	BucketPoints             = 10
)

// LegalScores is the score block of a deal-document assessment. Build it
// with NewLegalScores; the overall score is always the component sum.
type LegalScores struct {
	BucketCoverageScore   int            `json:"bucket_coverage_score"`
	EvidenceStrengthScore int            `json:"evidence_strength_score"`
	OverallScore          int            `json:"overall_score"`
	Classification        Classification `json:"classification"`
}

// NewLegalScores clamps both components to their documented ranges and
// derives the overall score as their sum.
func NewLegalScores(coverage, evidence int, c Classification) LegalScores {
	coverage = clampInt(coverage, 0, MaxBucketCoverageScore)
	evidence = clampInt(evidence, 0, MaxEvidenceStrengthScore)
	return LegalScores{
		BucketCoverageScore:   coverage,
		EvidenceStrengthScore: evidence,
		OverallScore:          coverage + evidence,
		Classification:        c,
	}
}

// LegalFlags carries the advisory outcomes of a deal-document assessment.
// MissingCoreBuckets is never nil; on a hard fail it holds the single
// prefixed rejection reason instead of bucket names.
type LegalFlags struct {
	LikelyTeaserOrSummary         bool     `json:"likely_teaser_or_summary"`
	MissingCoreBuckets            []string `json:"missing_core_buckets"`
	GenericLanguageWithoutDetails bool     `json:"generic_language_without_details"`
	UnsupportedNoLitigationClaim  bool     `json:"unsupported_no_litigation_claim"`
}

// DealCompletenessAnalysis is the full result of the deal-document
// analyzer. Instances are built once and never mutated afterwards.
type DealCompletenessAnalysis struct {
	DocMeta                  DocumentMeta             `json:"doc_meta"`
	Entities                 Entities                 `json:"entities"`
	Deal                     DealInfo                 `json:"deal"`
	PriceAndPayment          PriceAndPayment          `json:"price_and_payment"`
	RepsAndWarranties        RepsAndWarranties        `json:"reps_and_warranties"`
	Covenants                Covenants                `json:"covenants"`
	ClosingConditions        ClosingConditions        `json:"closing_conditions"`
	TerminationAndRemedies   TerminationAndRemedies   `json:"termination_and_remedies"`
	IndemnitiesAndLimits     IndemnitiesAndLimits     `json:"indemnities_and_limits"`
	Financials               Financials               `json:"financials"`
	CapitalAndDebt           CapitalAndDebt           `json:"capital_and_debt"`
	Tax                      Tax                      `json:"tax"`
	LitigationAndAllegations LitigationAndAllegations `json:"litigation_and_allegations"`
	Compliance               Compliance               `json:"compliance"`
	EvidenceStrength         EvidenceStrength         `json:"evidence_strength"`
	Scores                   LegalScores              `json:"scores"`
	Flags                    LegalFlags               `json:"flags"`
}
