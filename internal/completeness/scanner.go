package completeness

import (
	ahocorasick "github.com/cloudflare/ahocorasick"
)

// keywordScanner matches one ordered keyword table against lowercased text
// in a single Aho-Corasick pass. Scanners are immutable after construction
// and safe for concurrent use.
type keywordScanner struct {
	name     string
	keywords []string
	matcher  *ahocorasick.Matcher
}

func newKeywordScanner(list keywordList) *keywordScanner {
	return &keywordScanner{
		name:     list.name,
		keywords: list.keywords,
		matcher:  ahocorasick.NewStringMatcher(list.keywords),
	}
}

// hits returns how many distinct table keywords occur in lower.
func (s *keywordScanner) hits(lower string) int {
	return len(s.matcher.MatchThreadSafe([]byte(lower)))
}

// matchedKeywords returns the table keywords present in lower, in table
// order.
func (s *keywordScanner) matchedKeywords(lower string) []string {
	found := s.matcher.MatchThreadSafe([]byte(lower))
	if len(found) == 0 {
		return nil
	}
	present := make(map[int]bool, len(found))
	for _, idx := range found {
		present[idx] = true
	}
	matched := make([]string, 0, len(found))
	for idx, kw := range s.keywords {
		if present[idx] {
			matched = append(matched, kw)
		}
	}
	return matched
}

// scannerSet holds one scanner per keyword table, addressable by bucket
// name and iterable in table order.
type scannerSet struct {
	ordered []*keywordScanner
	byName  map[string]*keywordScanner
}

func newScannerSet(lists []keywordList) *scannerSet {
	set := &scannerSet{
		ordered: make([]*keywordScanner, 0, len(lists)),
		byName:  make(map[string]*keywordScanner, len(lists)),
	}
	for _, list := range lists {
		scanner := newKeywordScanner(list)
		set.ordered = append(set.ordered, scanner)
		set.byName[list.name] = scanner
	}
	return set
}

// hits returns the distinct-keyword count for the named table, zero when
// no such table exists.
func (s *scannerSet) hits(name, lower string) int {
	scanner, ok := s.byName[name]
	if !ok {
		return 0
	}
	return scanner.hits(lower)
}

// minHits reports whether the named table reaches the given number of
// distinct keyword hits.
func (s *scannerSet) minHits(name, lower string, minimum int) bool {
	return s.hits(name, lower) >= minimum
}
