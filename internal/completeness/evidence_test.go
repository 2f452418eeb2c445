//nolint:testpackage // Testing internal scoring stages requires same package access
package completeness

import (
	"strings"
	"testing"
)

func TestEvidence_CapsAndKeepsTableOrder(t *testing.T) {
	const filler = "Additional commercial background appears in the following clauses for completeness. "
	text := "The purchase price is payable at closing. " + filler +
		"The consideration mechanics follow. " + filler +
		"An escrow account will be funded. " + filler +
		"A holdback applies to warranty claims."

	set := newScannerSet(legalKeywordLists)
	snippets := set.evidence(BucketPricePayment, text, strings.ToLower(text))

	if len(snippets) != maxEvidenceSnippets {
		t.Fatalf("got %d snippets, want %d: %v", len(snippets), maxEvidenceSnippets, snippets)
	}
	wantOrder := []string{"purchase price", "consideration", "escrow"}
	for i, kw := range wantOrder {
		if !strings.Contains(snippets[i], kw) {
			t.Errorf("snippets[%d] = %q, want it to contain %q", i, snippets[i], kw)
		}
	}
	for _, snippet := range snippets {
		if strings.Contains(snippet, "holdback") {
			t.Errorf("holdback leaked into a snippet: %q", snippet)
		}
	}
}

func TestEvidence_TableOrderBeatsTextOrder(t *testing.T) {
	text := "The holdback figure appears in the third column of the spreadsheet, " +
		"and the purchase price appears in the first."

	set := newScannerSet(legalKeywordLists)
	snippets := set.evidence(BucketPricePayment, text, strings.ToLower(text))

	if len(snippets) != 2 {
		t.Fatalf("got %d snippets, want 2: %v", len(snippets), snippets)
	}
	if !strings.Contains(snippets[0], "purchase price") {
		t.Errorf("snippets[0] = %q, want the purchase price context first", snippets[0])
	}
	if !strings.Contains(snippets[1], "holdback") {
		t.Errorf("snippets[1] = %q, want the holdback context second", snippets[1])
	}
}

func TestEvidence_CollapsesIdenticalWindows(t *testing.T) {
	// Both keyword windows cover the whole of a short text, so the second
	// snippet deduplicates away.
	text := "escrow and holdback apply."

	set := newScannerSet(legalKeywordLists)
	snippets := set.evidence(BucketPricePayment, text, text)

	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1: %v", len(snippets), snippets)
	}
	if snippets[0] != "escrow and holdback apply." {
		t.Errorf("snippet = %q, want the full trimmed text", snippets[0])
	}
}

func TestEvidence_UnknownTable(t *testing.T) {
	set := newScannerSet(legalKeywordLists)
	snippets := set.evidence("no_such_table", "purchase price", "purchase price")

	if snippets == nil {
		t.Fatal("snippets is nil, want empty slice")
	}
	if len(snippets) != 0 {
		t.Errorf("got %d snippets, want 0", len(snippets))
	}
}
