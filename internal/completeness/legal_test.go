// triage/internal/completeness/legal_test.go
//nolint:testpackage // Testing internal scoring stages requires same package access
package completeness

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dealdesk/triage/internal/domain"
)

// mockLogger satisfies Logger for analyzer construction in tests.
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

// Fixture texts. Keyword matching is substring based and entity extraction
// is sensitive to punctuation, so the wording here is deliberate; expected
// scores are traced keyword by keyword against the tables in patterns.go.
const sharePurchaseAgreementText = `Share Purchase Agreement

This Share Purchase Agreement ("Agreement") is entered into as of 2024-03-15 between Northgate Fabrication Ltd, a company incorporated in Singapore (the "Purchaser"), Quarry Lane Components Inc, a Delaware corporation (the "Seller"), and Bexley Industrial Holdings, the acquired company (the "Target").

1. Definitions. "Purchase Price" means USD 45,000,000 in cash consideration, subject to the working capital adjustment and the true-up described in the closing statement. An escrow of USD 4,500,000 shall be retained as holdback.

2. Representations and Warranties. Each party represents as set out in the Disclosure Schedule, including authority, capitalization, financial statements, compliance with laws, tax matters, employment, material contracts and intellectual property. No Material Adverse Effect has occurred. To the knowledge of the Seller, there is no undisclosed liability.

3. Closing Conditions. The conditions to closing include regulatory approval, third party consent and board approval, and that no injunction is in effect. The closing date shall be 2024-06-30 subject to bring-down of representations.

4. Indemnification. The Seller shall provide indemnification subject to a basket of USD 450,000 and a cap equal to the escrow. The survival period is eighteen months. Fraud carve-out applies.

5. Financials. The Target has delivered audited financial statements under IFRS, including the balance sheet and a statement of EBITDA.

6. Litigation. Except as set forth in Schedule 6.1, there is no litigation, claim or investigation pending against the Target.

7. Governing Law. This Agreement shall be governed by the laws of Singapore.`

const teaserText = `Project Aurora Teaser

We are delighted to present a compelling opportunity to acquire a leading specialty chemicals producer by way of merger. The combination would unite two champions: Sterling Dynamics Inc, a renowned innovator, and Harrowgate Polymer Group, a trusted partner to customers across global markets.

The business enjoys outstanding growth, loyal customers and a seasoned management team. Strategic fit is excellent and synergies are expected to be meaningful. Interested parties are invited to express interest at the earliest convenience.`

const termSheetText = `Project Delta Term Sheet

This term sheet summarizes the principal terms of a proposed transaction among: Calder Ridge Partners (buyer); Foxhall Instruments Ltd (seller); and Danbury Optics Inc (the target company).

Structure: acquisition of the business by way of asset purchase.
Purchase price: USD 30,000,000 payable in full at closing, subject to customary consideration mechanics.
Timeline: signing expected on 2025-02-10 with closing conditioned on regulatory approval and board approval.
Financials: the seller will deliver audited accounts and an EBITDA bridge before closing.
Dispute resolution: any claim or dispute arising under this term sheet will be referred to arbitration in Singapore.

This term sheet is non-binding except as expressly stated above.`

const letterOfIntentText = `Project Ember

This letter of intent records the proposed terms agreed between: Harlow Pressworks Ltd (buyer) and Midvale Tooling Corp (seller) for a share purchase completing on 2025-05-20.

Purchase price: USD 12,000,000, with consideration payable at completion. Defined terms carry the meanings given in Annex A.

Conditions: regulatory approval and board approval before completion.

Financials: audited accounts and an EBITDA summary for the last three years.

Claims: any claim or dispute will be resolved by settlement discussions before arbitration.`

const noLitigationText = `This Share Purchase Agreement is made on 2024-09-01 between Arden Mill Corp, as purchaser, and Welby Grange Ltd, as vendor. The parties agree that the share purchase will complete on terms customary for transactions of this size, with consideration payable in cash at completion. The governing law of Singapore will apply. The company warrants that it conducts business in the ordinary course.`

func TestLegalAnalyzer_Analyze_CompleteSharePurchaseAgreement(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{
		Filename:  "project-falcon-spa.pdf",
		Text:      sharePurchaseAgreementText,
		PageCount: 42,
	})

	if got := analysis.Scores.Classification; got != domain.ClassificationAcceptOK {
		t.Fatalf("expected classification %s, got %s", domain.ClassificationAcceptOK, got)
	}
	if got := analysis.Scores.BucketCoverageScore; got != 70 {
		t.Errorf("expected coverage 70 (all seven buckets), got %d", got)
	}
	if got := analysis.Scores.EvidenceStrengthScore; got != 26 {
		t.Errorf("expected evidence 26, got %d", got)
	}
	if got := analysis.Scores.OverallScore; got != 96 {
		t.Errorf("expected overall 96, got %d", got)
	}

	if got := analysis.DocMeta.DocTypeGuess; got != domain.DocTypeSPA {
		t.Errorf("expected doc type %s, got %s", domain.DocTypeSPA, got)
	}
	if got := analysis.DocMeta.Source; got != domain.SourcePDF {
		t.Errorf("expected source %s, got %s", domain.SourcePDF, got)
	}
	if got := analysis.DocMeta.PageCount; got != 42 {
		t.Errorf("expected page count 42, got %d", got)
	}

	if got := analysis.Entities.Buyer.Name; got != "Northgate Fabrication Ltd" {
		t.Errorf("expected buyer %q, got %q", "Northgate Fabrication Ltd", got)
	}
	if got := analysis.Entities.Seller.Name; got != "Quarry Lane Components Inc" {
		t.Errorf("expected seller %q, got %q", "Quarry Lane Components Inc", got)
	}
	if got := analysis.Entities.Target.Name; got != "Bexley Industrial Holdings" {
		t.Errorf("expected target %q, got %q", "Bexley Industrial Holdings", got)
	}

	if got := analysis.Deal.Structure; got != domain.StructureSharePurchase {
		t.Errorf("expected structure %s, got %s", domain.StructureSharePurchase, got)
	}
	if got := analysis.Deal.SigningDate; got != "2024-03-15" {
		t.Errorf("expected signing date 2024-03-15, got %q", got)
	}
	if got := analysis.Deal.ClosingDate; got != "2024-06-30" {
		t.Errorf("expected closing date 2024-06-30, got %q", got)
	}
	if got := analysis.Deal.GoverningLaw; got != "Singapore" {
		t.Errorf("expected governing law Singapore, got %q", got)
	}
	if got := analysis.PriceAndPayment.PaymentForm; got != domain.PaymentCash {
		t.Errorf("expected payment form %s, got %s", domain.PaymentCash, got)
	}
	if got := analysis.Financials.Standard; got != domain.StandardIFRS {
		t.Errorf("expected accounting standard %s, got %s", domain.StandardIFRS, got)
	}

	if analysis.Flags.MissingCoreBuckets == nil {
		t.Error("missing_core_buckets must be empty, not nil")
	}
	if got := len(analysis.Flags.MissingCoreBuckets); got != 0 {
		t.Errorf("expected no missing buckets, got %v", analysis.Flags.MissingCoreBuckets)
	}
	if analysis.Flags.LikelyTeaserOrSummary {
		t.Error("teaser flag must not be set on a full agreement")
	}
	if analysis.Flags.GenericLanguageWithoutDetails {
		t.Error("generic-language flag must not be set when hard evidence is present")
	}
	if analysis.Flags.UnsupportedNoLitigationClaim {
		t.Error("no-litigation flag must not be set when the litigation section is present")
	}

	snippets := analysis.PriceAndPayment.EvidenceSnippets
	if len(snippets) == 0 || len(snippets) > maxEvidenceSnippets {
		t.Errorf("expected 1..%d price evidence snippets, got %d", maxEvidenceSnippets, len(snippets))
	}
}

func TestLegalAnalyzer_Analyze_TeaserHardFailsOnGenericContent(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{
		Filename: "project-aurora-teaser.pdf",
		Text:     teaserText,
	})

	// Two named parties and a merger mention satisfy the first two rules;
	// the generic-content rule is the first to fail.
	if got := analysis.Entities.ResolvedParties(); got != 2 {
		t.Fatalf("expected 2 resolved parties, got %d", got)
	}
	if got := analysis.DocMeta.DocTypeGuess; got != domain.DocTypeTeaser {
		t.Errorf("expected doc type %s, got %s", domain.DocTypeTeaser, got)
	}
	if got := analysis.Scores.Classification; got != domain.ClassificationRejectIncomplete {
		t.Fatalf("expected classification %s, got %s", domain.ClassificationRejectIncomplete, got)
	}
	if got := analysis.Scores.OverallScore; got != 0 {
		t.Errorf("expected overall 0 on hard fail, got %d", got)
	}

	want := []string{hardFailPrefix + reasonGenericOnly}
	if !reflect.DeepEqual(analysis.Flags.MissingCoreBuckets, want) {
		t.Errorf("expected missing buckets %v, got %v", want, analysis.Flags.MissingCoreBuckets)
	}
	if !analysis.Flags.LikelyTeaserOrSummary {
		t.Error("teaser flag must be set on hard fail")
	}
	if !analysis.Flags.GenericLanguageWithoutDetails {
		t.Error("generic-language flag must be set when no hard evidence is present")
	}
}

func TestLegalAnalyzer_Analyze_TermSheetScoresInWarningBand(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{
		Filename: "project-delta-term-sheet.pdf",
		Text:     termSheetText,
	})

	if got := analysis.Scores.Classification; got != domain.ClassificationAcceptWithWarnings {
		t.Fatalf("expected classification %s, got %s", domain.ClassificationAcceptWithWarnings, got)
	}
	if got := analysis.Scores.BucketCoverageScore; got != 40 {
		t.Errorf("expected coverage 40, got %d", got)
	}
	if got := analysis.Scores.EvidenceStrengthScore; got != 12 {
		t.Errorf("expected evidence 12 (numbers and dates only), got %d", got)
	}
	if got := analysis.Scores.OverallScore; got != 52 {
		t.Errorf("expected overall 52, got %d", got)
	}

	// "term sheet" in the body resolves through the LOI check, which runs
	// before the dedicated term-sheet check.
	if got := analysis.DocMeta.DocTypeGuess; got != domain.DocTypeLOI {
		t.Errorf("expected doc type %s, got %s", domain.DocTypeLOI, got)
	}
	if got := analysis.Deal.Structure; got != domain.StructureAssetPurchase {
		t.Errorf("expected structure %s, got %s", domain.StructureAssetPurchase, got)
	}
	if got := analysis.Deal.SigningDate; got != "2025-02-10" {
		t.Errorf("expected signing date 2025-02-10, got %q", got)
	}

	wantMissing := []string{BucketRepsWarranties, BucketIndemnitiesLimits, BucketLitigationClaims}
	if !reflect.DeepEqual(analysis.Flags.MissingCoreBuckets, wantMissing) {
		t.Errorf("expected missing buckets %v, got %v", wantMissing, analysis.Flags.MissingCoreBuckets)
	}
	if !analysis.Flags.LikelyTeaserOrSummary {
		t.Error("teaser flag must be set for a term sheet without indemnity coverage")
	}
	// The dispute-resolution clause keeps the no-litigation flag down.
	if analysis.Flags.UnsupportedNoLitigationClaim {
		t.Error("no-litigation flag must not be set when a dispute clause is present")
	}
}

func TestLegalAnalyzer_Analyze_TeaserFlagDemotesAcceptToWarn(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{
		Filename: "project-ember-loi.pdf",
		Text:     letterOfIntentText,
	})

	// The score clears the accept floor, but the LOI guess with no
	// indemnity or reps coverage caps the tier at warnings.
	if got := analysis.Scores.OverallScore; got != 76 {
		t.Fatalf("expected overall 76, got %d", got)
	}
	if got := analysis.Scores.Classification; got != domain.ClassificationAcceptWithWarnings {
		t.Errorf("expected classification %s, got %s", domain.ClassificationAcceptWithWarnings, got)
	}
	if !analysis.Flags.LikelyTeaserOrSummary {
		t.Error("teaser flag must be set for a thin letter of intent")
	}
	wantMissing := []string{BucketRepsWarranties, BucketIndemnitiesLimits}
	if !reflect.DeepEqual(analysis.Flags.MissingCoreBuckets, wantMissing) {
		t.Errorf("expected missing buckets %v, got %v", wantMissing, analysis.Flags.MissingCoreBuckets)
	}
}

func TestLegalAnalyzer_Analyze_RejectsNoLitigationClaimWithoutSchedules(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{
		Filename: "draft-share-purchase-agreement.docx",
		Text:     noLitigationText,
	})

	// The rule reads the advisory flag, which is derived before any rule
	// runs, so a document with parties, a structure, and hard evidence can
	// still fail here.
	if got := analysis.Scores.Classification; got != domain.ClassificationRejectIncomplete {
		t.Fatalf("expected classification %s, got %s", domain.ClassificationRejectIncomplete, got)
	}
	want := []string{hardFailPrefix + reasonUnsupportedNoLitigation}
	if !reflect.DeepEqual(analysis.Flags.MissingCoreBuckets, want) {
		t.Errorf("expected missing buckets %v, got %v", want, analysis.Flags.MissingCoreBuckets)
	}
	if got := analysis.DocMeta.Source; got != domain.SourceDOCX {
		t.Errorf("expected source %s, got %s", domain.SourceDOCX, got)
	}
	if got := analysis.Scores.OverallScore; got != 0 {
		t.Errorf("expected overall 0 on hard fail, got %d", got)
	}
}

func TestLegalAnalyzer_Analyze_EmptyTextReportsEarliestRule(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	analysis := analyzer.Analyze(domain.RawDocument{Filename: "empty.pdf", Text: ""})

	// Empty text violates several rules at once; the reason must be the
	// earliest one in rule order.
	if got := analysis.Scores.Classification; got != domain.ClassificationRejectIncomplete {
		t.Fatalf("expected classification %s, got %s", domain.ClassificationRejectIncomplete, got)
	}
	want := []string{hardFailPrefix + reasonNoParties}
	if !reflect.DeepEqual(analysis.Flags.MissingCoreBuckets, want) {
		t.Errorf("expected missing buckets %v, got %v", want, analysis.Flags.MissingCoreBuckets)
	}
	if got := analysis.Scores.OverallScore; got != 0 {
		t.Errorf("expected overall 0, got %d", got)
	}
}

func TestLegalAnalyzer_Analyze_Idempotent(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	docs := []domain.RawDocument{
		{Filename: "project-falcon-spa.pdf", Text: sharePurchaseAgreementText, PageCount: 42},
		{Filename: "project-aurora-teaser.pdf", Text: teaserText},
		{Filename: "project-delta-term-sheet.pdf", Text: termSheetText},
		{Filename: "draft-share-purchase-agreement.docx", Text: noLitigationText},
	}
	for _, doc := range docs {
		first := analyzer.Analyze(doc)
		second := analyzer.Analyze(doc)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated analysis of %s diverged", doc.Filename)
		}
	}
}

func TestLegalAnalyzer_Analyze_MoreEvidenceNeverLowersScore(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	base := analyzer.Analyze(domain.RawDocument{
		Filename: "project-delta-term-sheet.pdf",
		Text:     termSheetText,
	})
	extended := analyzer.Analyze(domain.RawDocument{
		Filename: "project-delta-term-sheet.pdf",
		Text:     termSheetText + "\nThe Disclosure Schedule and Schedule 2.1 list all material contracts.",
	})

	if extended.Scores.OverallScore < base.Scores.OverallScore {
		t.Errorf("appending evidence lowered the score: %d -> %d",
			base.Scores.OverallScore, extended.Scores.OverallScore)
	}
	if extended.Scores.BucketCoverageScore < base.Scores.BucketCoverageScore {
		t.Errorf("appending evidence lowered coverage: %d -> %d",
			base.Scores.BucketCoverageScore, extended.Scores.BucketCoverageScore)
	}
}

func TestLegalAnalyzer_Analyze_ScoreBounds(t *testing.T) {
	analyzer := NewLegalAnalyzer(&mockLogger{})
	docs := []domain.RawDocument{
		{Filename: "project-falcon-spa.pdf", Text: sharePurchaseAgreementText},
		{Filename: "project-aurora-teaser.pdf", Text: teaserText},
		{Filename: "project-delta-term-sheet.pdf", Text: termSheetText},
		{Filename: "project-ember-loi.pdf", Text: letterOfIntentText},
		{Filename: "draft-share-purchase-agreement.docx", Text: noLitigationText},
		{Filename: "empty.pdf", Text: ""},
		{Filename: "odd.txt", Text: strings.Repeat("lorem ipsum dolor sit amet ", 200)},
	}
	for _, doc := range docs {
		scores := analyzer.Analyze(doc).Scores
		if scores.BucketCoverageScore < 0 || scores.BucketCoverageScore > domain.MaxBucketCoverageScore {
			t.Errorf("%s: coverage %d out of range", doc.Filename, scores.BucketCoverageScore)
		}
		if scores.BucketCoverageScore%domain.BucketPoints != 0 {
			t.Errorf("%s: coverage %d not a multiple of %d", doc.Filename, scores.BucketCoverageScore, domain.BucketPoints)
		}
		if scores.EvidenceStrengthScore < 0 || scores.EvidenceStrengthScore > domain.MaxEvidenceStrengthScore {
			t.Errorf("%s: evidence %d out of range", doc.Filename, scores.EvidenceStrengthScore)
		}
		if scores.OverallScore != scores.BucketCoverageScore+scores.EvidenceStrengthScore {
			t.Errorf("%s: overall %d is not coverage+evidence", doc.Filename, scores.OverallScore)
		}
		if scores.OverallScore < 0 || scores.OverallScore > domain.MaxOverallScore {
			t.Errorf("%s: overall %d out of range", doc.Filename, scores.OverallScore)
		}
		if !scores.Classification.Valid() {
			t.Errorf("%s: invalid classification %q", doc.Filename, scores.Classification)
		}
	}
}

func TestClassifyLegal(t *testing.T) {
	tests := []struct {
		score int
		want  domain.Classification
	}{
		{score: 0, want: domain.ClassificationRejectIncomplete},
		{score: 49, want: domain.ClassificationRejectIncomplete},
		{score: 50, want: domain.ClassificationAcceptWithWarnings},
		{score: 69, want: domain.ClassificationAcceptWithWarnings},
		{score: 70, want: domain.ClassificationAcceptOK},
		{score: 100, want: domain.ClassificationAcceptOK},
	}
	for _, tt := range tests {
		if got := classifyLegal(tt.score); got != tt.want {
			t.Errorf("classifyLegal(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
