package errors

import (
	"strings"
	"unicode"
)

// MaxVertexCount bounds the vertex count accepted from the command line.
// Enumeration is exponential, so anything beyond this is never useful; the
// pipeline size guard applies a much tighter limit by default.
const MaxVertexCount = 1 << 16

// ValidateVertexCount validates a requested vertex count for generated graphs.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "vertex count must be >= 0, got %d", n)
	}
	if n > MaxVertexCount {
		return New(ErrCodeInvalidInput, "vertex count too large (max %d), got %d", MaxVertexCount, n)
	}
	return nil
}

// ValidateWorkers validates a worker count. Zero selects the default.
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "workers must be >= 0, got %d", n)
	}
	return nil
}

// ValidateTSetIndex validates an index into a list of count T-sets.
func ValidateTSetIndex(k, count int) error {
	if count == 0 {
		return New(ErrCodeNotFound, "no T-sets to select from")
	}
	if k < 0 || k >= count {
		return New(ErrCodeInvalidInput, "T-set index %d out of range [0, %d)", k, count)
	}
	return nil
}

// ValidatePath validates an output or input file path supplied by the user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateChoice validates that value is one of choices (case-sensitive).
// The returned error carries code and names the accepted values.
func ValidateChoice(code Code, what, value string, choices []string) error {
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return New(code, "invalid %s %q (want one of: %s)", what, value, strings.Join(choices, ", "))
}
