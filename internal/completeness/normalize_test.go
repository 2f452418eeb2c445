//nolint:testpackage // Testing internal scoring stages requires same package access
package completeness

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "diacritics and typographic punctuation",
			in:   "Café Früh “Deal” – 5",
			want: `Cafe Fruh "Deal" - 5`,
		},
		{
			name: "curly single quotes",
			in:   "the ‘Seller’s’ view",
			want: "the 'Seller's' view",
		},
		{
			name: "em dash",
			in:   "price—subject to adjustment",
			want: "price-subject to adjustment",
		},
		{
			name: "case preserved",
			in:   "ÉLAN Systèmes",
			want: "ELAN Systemes",
		},
		{
			name: "ascii unchanged",
			in:   `plain "text" with -dashes-`,
			want: `plain "text" with -dashes-`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.in); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveAccents(t *testing.T) {
	if got := removeAccents("Zürich São Paulo"); got != "Zurich Sao Paulo" {
		t.Errorf("removeAccents = %q, want %q", got, "Zurich Sao Paulo")
	}
}
