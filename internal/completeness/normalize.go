package completeness

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// typographicReplacer folds curly quotes and long dashes to ASCII so the
// quote- and hyphen-anchored patterns match text extracted from word
// processors.
var typographicReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"‘", "'", "’", "'", "‚", "'",
	"–", "-", "—", "-",
)

// normalizeText prepares extracted text for matching: diacritics stripped,
// typographic punctuation folded. Case is preserved; callers lowercase
// separately where matching is case-insensitive.
func normalizeText(text string) string {
	return typographicReplacer.Replace(removeAccents(text))
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
