package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath checks that an export target path is usable.
//
// Validation rules:
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// An empty path is allowed; exporters substitute a default file name.
func ValidateOutputPath(path string) error {
	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormatName rejects format names that are not a bare extension.
func ValidateFormatName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if strings.ContainsAny(name, `./\`) {
		return New(ErrCodeInvalidFormat, "format must be a bare extension, got %q", name)
	}
	return nil
}
