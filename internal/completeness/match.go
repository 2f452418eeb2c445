package completeness

import (
	"regexp"
	"strings"
)

// containsAny reports whether lower contains at least one of the terms.
func containsAny(lower string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// anyPatternMatches reports whether any of the patterns matches text.
func anyPatternMatches(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// firstDate returns the first date-pattern match in text, or empty.
func firstDate(text string) string {
	for _, re := range datePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// dateWindow is how far past a gate term a related date may sit.
const dateWindow = 100

// dateNearTerms returns the first date found within dateWindow bytes after
// an occurrence of any of the terms, or empty. Every occurrence of a term
// is tried before moving to the next term. Terms are located in the
// lowercased text and the date is read from the original-case text at the
// same offsets.
func dateNearTerms(normText, lower string, terms []string) string {
	for _, term := range terms {
		for from := 0; ; {
			idx := strings.Index(lower[from:], term)
			if idx < 0 {
				break
			}
			idx += from
			end := idx + len(term) + dateWindow
			if end > len(normText) {
				end = len(normText)
			}
			if idx < end {
				if d := firstDate(normText[idx:end]); d != "" {
					return d
				}
			}
			from = idx + len(term)
		}
	}
	return ""
}

func countTrue(values ...bool) int {
	n := 0
	for _, v := range values {
		if v {
			n++
		}
	}
	return n
}
