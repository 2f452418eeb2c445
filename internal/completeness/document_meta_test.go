//nolint:testpackage // Testing internal scoring stages requires same package access
package completeness

import (
	"strings"
	"testing"

	"github.com/dealdesk/triage/internal/domain"
)

func TestAnalyzeDocumentMeta_DocTypeChain(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     domain.LegalDocType
	}{
		{
			name:     "spa by filename",
			filename: "project-falcon-spa.pdf",
			want:     domain.DocTypeSPA,
		},
		{
			name:     "teaser marker beats agreement filename",
			filename: "signed-spa.pdf",
			text:     "includes an executive summary section",
			want:     domain.DocTypeTeaser,
		},
		{
			// "mou" matches inside "paramount", so the LOI check fires
			// before the filename ever reaches the SPA check.
			name:     "loi marker hides inside an unrelated word",
			filename: "paramount-purchase-agreement.pdf",
			want:     domain.DocTypeLOI,
		},
		{
			name:     "letter of intent in body",
			filename: "deal.pdf",
			text:     "this letter of intent sets out the terms",
			want:     domain.DocTypeLOI,
		},
		{
			name:     "merger resolves msa",
			filename: "merger-plan.pdf",
			want:     domain.DocTypeMSA,
		},
		{
			name:     "nda by filename",
			filename: "mutual-nda.pdf",
			want:     domain.DocTypeNDA,
		},
		{
			name:     "financials by filename",
			filename: "audited-financials-2023.pdf",
			want:     domain.DocTypeFinancials,
		},
		{
			// The financials check is filename-scoped, so statement talk in
			// the body alone never resolves it.
			name:     "statement language in body does not resolve financials",
			filename: "scan-001.pdf",
			text:     "statement of intent regarding the site visit",
			want:     domain.DocTypeOther,
		},
		{
			name:     "no markers anywhere",
			filename: "scan-001.pdf",
			text:     "plain content",
			want:     domain.DocTypeOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := analyzeDocumentMeta(tt.filename, strings.ToLower(tt.text), 1)
			if meta.DocTypeGuess != tt.want {
				t.Errorf("DocTypeGuess = %s, want %s", meta.DocTypeGuess, tt.want)
			}
		})
	}
}

func TestAnalyzeDocumentMeta_SourceFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     domain.SourceFormat
	}{
		{"brief.docx", domain.SourceDOCX},
		{"NOTES.TXT", domain.SourceTXT},
		{"deck.pdf", domain.SourcePDF},
		{"archive.zip", domain.SourcePDF},
	}
	for _, tt := range tests {
		meta := analyzeDocumentMeta(tt.filename, "", 1)
		if meta.Source != tt.want {
			t.Errorf("Source for %q = %s, want %s", tt.filename, meta.Source, tt.want)
		}
	}
}

func TestAnalyzeDocumentMeta_CarriesPageCountAndLanguage(t *testing.T) {
	meta := analyzeDocumentMeta("deal.pdf", "", 17)
	if meta.PageCount != 17 {
		t.Errorf("PageCount = %d, want 17", meta.PageCount)
	}
	if meta.Language != "en" {
		t.Errorf("Language = %q, want %q", meta.Language, "en")
	}
}
