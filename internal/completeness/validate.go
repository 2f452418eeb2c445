package completeness

import (
	"fmt"
	"strings"
)

// ValidationResult is an intake check outcome. Failures carry a
// human-readable reason; they are expected outcomes, not errors.
type ValidationResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// ValidateFilename rejects names without an extension or with an extension
// outside the supported set. Matching is case-insensitive on the last
// dot-separated segment.
func ValidateFilename(filename string) ValidationResult {
	if filename == "" || !strings.Contains(filename, ".") {
		return ValidationResult{Reason: "File has no extension."}
	}
	segments := strings.Split(filename, ".")
	ext := "." + strings.ToLower(segments[len(segments)-1])
	for _, allowed := range allowedUploadExtensions {
		if ext == allowed {
			return ValidationResult{OK: true}
		}
	}
	return ValidationResult{
		Reason: fmt.Sprintf("Unsupported file type: %s. Allowed: %s",
			ext, strings.Join(allowedUploadExtensions, ", ")),
	}
}

// ValidateSize rejects empty payloads and payloads over maxBytes.
func ValidateSize(sizeBytes, maxBytes int64) ValidationResult {
	if sizeBytes <= 0 {
		return ValidationResult{Reason: "File is empty."}
	}
	if sizeBytes > maxBytes {
		mb := float64(maxBytes) / (1 << 20)
		return ValidationResult{Reason: fmt.Sprintf("File too large. Max allowed: %.0f MB.", mb)}
	}
	return ValidationResult{OK: true}
}
