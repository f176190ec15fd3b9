package errors

import (
	"math"
	"strings"
	"unicode"
)

// Limits applied to untrusted label input (CLI arguments, API bodies).
const (
	MaxLabels      = 10000
	MaxLabelLength = 1024
	MaxFontSize    = 512
)

// ValidateLabels validates a label set received from outside the process.
//
// The rules are intentionally conservative:
//   - At most MaxLabels labels
//   - Each label at most MaxLabelLength bytes
//   - No control characters other than tab
//
// An empty set is valid: every layout function has a defined result for it.
func ValidateLabels(labels []string) error {
	if len(labels) > MaxLabels {
		return New(ErrCodeInvalidInput, "too many labels (max %d)", MaxLabels)
	}
	for i, label := range labels {
		if len(label) > MaxLabelLength {
			return New(ErrCodeInvalidInput, "label %d too long (max %d bytes)", i, MaxLabelLength)
		}
		for _, r := range label {
			if r != '\t' && unicode.IsControl(r) {
				return New(ErrCodeInvalidInput, "label %d contains invalid control characters", i)
			}
		}
	}
	return nil
}

// ValidateFontSize rejects font sizes that cannot describe rendered text.
// Zero is accepted and means "use the default size".
func ValidateFontSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return New(ErrCodeInvalidFont, "font size must be a finite number")
	}
	if size < 0 {
		return New(ErrCodeInvalidFont, "font size cannot be negative: %g", size)
	}
	if size > MaxFontSize {
		return New(ErrCodeInvalidFont, "font size too large (max %d)", MaxFontSize)
	}
	return nil
}

// ValidateFinite rejects NaN and infinities for the named numeric input.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	return nil
}

// ValidatePath validates a file path for theme and config files.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
