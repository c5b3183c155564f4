package errors

import (
	"strings"
	"unicode"
)

// ValidateMetadataPath validates a metadata file path given on the command
// line or discovered in a directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateMetadataPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "metadata path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "metadata path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "metadata path contains invalid characters")
		}
	}

	return nil
}

// ValidateSectionPath validates a dotted section path such as "gui" or
// "plugins.gui". Empty paths are valid and select the root.
func ValidateSectionPath(path string) error {
	if path == "" {
		return nil
	}
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return New(ErrCodeInvalidPath, "section path %q has an empty segment", path)
		}
		for _, r := range part {
			if unicode.IsSpace(r) || unicode.IsControl(r) {
				return New(ErrCodeInvalidPath, "section path %q contains invalid characters", path)
			}
		}
	}
	return nil
}
