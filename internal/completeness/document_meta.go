package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// analyzeDocumentMeta guesses the document flavor and source format. The
// guess chain favors marketing material: teaser and LOI markers are checked
// before agreement markers, so a signed SPA whose cover page says
// "executive summary" still reads as a teaser.
func analyzeDocumentMeta(filename, lower string, pageCount int) domain.DocumentMeta {
	filenameLower := strings.ToLower(filename)

	docType := domain.DocTypeOther
	for _, check := range docTypeChecks {
		if docTypeMatches(check, filenameLower, lower) {
			docType = domain.LegalDocType(check.docType)
			break
		}
	}

	source := domain.SourcePDF
	switch {
	case strings.HasSuffix(filenameLower, ".docx"):
		source = domain.SourceDOCX
	case strings.HasSuffix(filenameLower, ".txt"):
		source = domain.SourceTXT
	}

	return domain.DocumentMeta{
		DocTypeGuess: docType,
		Language:     "en",
		PageCount:    pageCount,
		Source:       source,
	}
}

func docTypeMatches(check docTypeCheck, filenameLower, lower string) bool {
	for _, term := range check.terms {
		if strings.Contains(filenameLower, term) {
			return true
		}
		if check.scope == scopeBoth && strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
