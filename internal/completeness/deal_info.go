package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// analyzeDealInfo resolves the headline transaction facts. The signing
// date is simply the first date in the document; closing and effective
// dates are only searched for near their gate terms. Venue is surfaced in
// the schema but never extracted today.
func analyzeDealInfo(normText, lower string) domain.DealInfo {
	structure := domain.StructureUnknown
	for _, check := range structureChecks {
		if containsAny(lower, check.terms...) {
			structure = domain.DealStructure(check.structure)
			break
		}
	}

	closingDate := ""
	if containsAny(lower, closingDateGateTerms...) {
		closingDate = dateNearTerms(normText, lower, closingDateWindowTerms)
	}
	effectiveDate := ""
	if containsAny(lower, effectiveDateGateTerms...) {
		effectiveDate = dateNearTerms(normText, lower, []string{"effective"})
	}

	governingLaw := ""
	if containsAny(lower, governingLawGateTerms...) {
		if m := governingLawPattern.FindStringSubmatch(normText); m != nil {
			governingLaw = strings.TrimSpace(m[1])
		}
	}

	return domain.DealInfo{
		Structure:                    structure,
		SigningDate:                  firstDate(normText),
		ClosingDate:                  closingDate,
		EffectiveDate:                effectiveDate,
		GoverningLaw:                 governingLaw,
		DefinedTermsPresent:          anyPatternMatches(definedTermPatterns, normText),
		ScheduleOrExhibitRefsPresent: anyPatternMatches(schedulePatterns, normText),
	}
}
