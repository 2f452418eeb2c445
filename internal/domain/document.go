// Package domain contains the core domain models for the triage service.
package domain

// RawDocument is the pre-extracted input to a completeness assessment.
// Text comes from an upstream extraction step; the engine never opens files.
type RawDocument struct {
	Filename  string `json:"filename"`
	Text      string `json:"text"`
	PageCount int    `json:"page_count,omitempty"`
}
