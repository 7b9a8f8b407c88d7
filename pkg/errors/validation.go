package errors

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateLayoutID validates a layout identifier received from an external
// surface (API path parameter, CLI argument). Stored layouts are keyed by
// UUID, so anything that does not parse as one is rejected before it reaches
// the store.
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLayoutID, "layout ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return New(ErrCodeInvalidLayoutID, "layout ID must be a UUID: %q", id)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It rejects paths that could escape the intended directory or smuggle
// control characters into filenames.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - No parent-directory traversal segments
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return New(ErrCodeInvalidPath, "output path cannot traverse parent directories")
		}
	}

	return nil
}
