package completeness

import "strings"

// Evidence snippet bounds.
const (
	evidenceSnippetRadius = 50
	maxEvidenceSnippets   = 3
)

// evidence returns up to maxEvidenceSnippets context snippets for the named
// keyword table. Keywords are tried in table order, so earlier table
// entries win snippet slots; each snippet surrounds the first occurrence of
// its keyword and is cut from the original-case text.
func (s *scannerSet) evidence(name, normText, lower string) []string {
	snippets := make([]string, 0, maxEvidenceSnippets)
	scanner, ok := s.byName[name]
	if !ok {
		return snippets
	}
	seen := make(map[string]struct{}, maxEvidenceSnippets)
	for _, kw := range scanner.matchedKeywords(lower) {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		start := idx - evidenceSnippetRadius
		if start < 0 {
			start = 0
		}
		end := idx + len(kw) + evidenceSnippetRadius
		if end > len(normText) {
			end = len(normText)
		}
		if start >= end {
			continue
		}
		snippet := strings.TrimSpace(strings.ToValidUTF8(normText[start:end], ""))
		if snippet == "" {
			continue
		}
		if _, dup := seen[snippet]; dup {
			continue
		}
		seen[snippet] = struct{}{}
		snippets = append(snippets, snippet)
		if len(snippets) == maxEvidenceSnippets {
			break
		}
	}
	return snippets
}
