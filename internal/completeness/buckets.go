package completeness

import "github.com/dealdesk/triage/internal/domain"

// The seven core buckets, in scoring and reporting order. Each contributes
// domain.BucketPoints to coverage when present.
var coreBucketNames = []string{
	BucketDealIdentity,
	BucketPricePayment,
	BucketRepsWarranties,
	BucketClosingConditions,
	BucketIndemnitiesLimits,
	BucketFinancials,
	BucketLitigationClaims,
}

// bucketPresenceThreshold is how many of a bucket's member signals must be
// true for the bucket to count.
const bucketPresenceThreshold = 2

// repTopicsHitFloor is how many core rep topics make the topic spread count
// as one reps-bucket member.
const repTopicsHitFloor = 3

func bucketDealIdentityPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.Entities.Buyer.Name != "",
		a.Entities.Seller.Name != "",
		a.Entities.Target.Name != "",
		a.Deal.Structure != domain.StructureUnknown,
		a.Deal.AnyDate(),
		a.Deal.GoverningLaw != "",
		a.Deal.DefinedTermsPresent,
	) >= bucketPresenceThreshold
}

func bucketPricePaymentPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.PriceAndPayment.PurchasePricePresent,
		a.PriceAndPayment.CurrencyPresent,
		a.PriceAndPayment.EnterpriseValuePresent,
		a.PriceAndPayment.EquityValuePresent,
		a.PriceAndPayment.AdjustmentMechanismPresent,
		a.PriceAndPayment.EarnoutPresent,
		a.PriceAndPayment.EscrowHoldbackPresent,
		a.PriceAndPayment.PaymentForm != domain.PaymentUnknown,
	) >= bucketPresenceThreshold
}

func bucketRepsWarrantiesPresent(a *domain.DealCompletenessAnalysis) bool {
	topics := a.RepsAndWarranties.RepTopicsHit
	topicHits := countTrue(
		topics.AuthorityOrganisation,
		topics.FinancialStatements,
		topics.LitigationInvestigations,
		topics.ComplianceWithLaws,
		topics.MaterialContracts,
		topics.Tax,
		topics.EmploymentBenefits,
	)
	return countTrue(
		a.RepsAndWarranties.SectionPresent,
		a.RepsAndWarranties.DisclosureSchedulesPresent,
		a.RepsAndWarranties.MAEMACPresent,
		a.RepsAndWarranties.KnowledgeQualifiersPresent,
		topicHits >= repTopicsHitFloor,
	) >= bucketPresenceThreshold
}

func bucketClosingConditionsPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.ClosingConditions.SectionPresent,
		a.ClosingConditions.RegulatoryApprovals,
		a.ClosingConditions.ThirdPartyConsents,
		a.ClosingConditions.ShareholderBoardApproval,
		a.ClosingConditions.BringDown,
		a.ClosingConditions.Deliverables,
		a.ClosingConditions.NoInjunction,
	) >= bucketPresenceThreshold
}

func bucketIndemnitiesLimitsPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.IndemnitiesAndLimits.IndemnityPresent,
		a.IndemnitiesAndLimits.Survival,
		a.IndemnitiesAndLimits.Basket,
		a.IndemnitiesAndLimits.Cap,
		a.IndemnitiesAndLimits.FraudCarveout,
		a.IndemnitiesAndLimits.EscrowClaimsProcess,
		a.IndemnitiesAndLimits.RWI,
	) >= bucketPresenceThreshold
}

func bucketFinancialsPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.Financials.FinancialStatements,
		a.Financials.AuditedUnaudited,
		a.Financials.EBITDA,
		a.Financials.RevenueRecognition,
		a.Financials.ForecastBudget,
		a.Financials.QofE,
		a.CapitalAndDebt.CapTable,
		a.CapitalAndDebt.DebtFacility,
	) >= bucketPresenceThreshold
}

func bucketLitigationClaimsPresent(a *domain.DealCompletenessAnalysis) bool {
	return countTrue(
		a.LitigationAndAllegations.LitigationPresent,
		a.LitigationAndAllegations.AllegationsAccusations,
		a.LitigationAndAllegations.RegulatoryInvestigation,
		a.LitigationAndAllegations.SettlementConsentOrder,
		a.LitigationAndAllegations.WhistleblowerInternalInvestigation,
		a.Compliance.AntiBribery,
		a.Compliance.AMLKYCSanctions,
		a.Compliance.CompetitionAntitrust,
	) >= bucketPresenceThreshold
}

// coreBucketsPresent evaluates all seven buckets in coreBucketNames order.
func coreBucketsPresent(a *domain.DealCompletenessAnalysis) []bool {
	return []bool{
		bucketDealIdentityPresent(a),
		bucketPricePaymentPresent(a),
		bucketRepsWarrantiesPresent(a),
		bucketClosingConditionsPresent(a),
		bucketIndemnitiesLimitsPresent(a),
		bucketFinancialsPresent(a),
		bucketLitigationClaimsPresent(a),
	}
}

// bucketCoverageScore converts bucket presence into coverage points.
func bucketCoverageScore(present []bool) int {
	return countTrue(present...) * domain.BucketPoints
}

// missingCoreBuckets names the absent buckets in reporting order. The
// result is never nil so the field serializes as [].
func missingCoreBuckets(present []bool) []string {
	missing := make([]string, 0, len(coreBucketNames))
	for i, name := range coreBucketNames {
		if !present[i] {
			missing = append(missing, name)
		}
	}
	return missing
}
