package completeness

import (
	"path/filepath"
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// sniffLimit caps how much body text the router inspects. Routing keywords
// live in headings and recitals, so the head of the document is enough.
const sniffLimit = 8000

// Route picks the analyzer for a document. Spreadsheet extensions go
// straight to the financial analyzer; otherwise deal keywords are tried
// before financial ones, so a merger document quoting revenue figures
// still routes legal. Documents matching nothing route to none.
func Route(filename, text string) domain.AnalyzerKind {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, spreadsheet := range spreadsheetExtensions {
		if ext == spreadsheet {
			return domain.AnalyzerFinancial
		}
	}

	nameLower := strings.ToLower(filename)
	head := text
	if len(head) > sniffLimit {
		head = head[:sniffLimit]
	}
	headLower := strings.ToLower(head)

	if containsAny(nameLower, legalFilenameKeys...) || containsAny(headLower, legalTextKeys...) {
		return domain.AnalyzerLegal
	}
	if containsAny(nameLower, financialFilenameKeys...) || containsAny(headLower, financialTextKeys...) {
		return domain.AnalyzerFinancial
	}
	return domain.AnalyzerNone
}
