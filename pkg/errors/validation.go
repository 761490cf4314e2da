package errors

import (
	"strings"
	"unicode"
)

// maxVoteIDLength bounds vote ids used as output file names.
const maxVoteIDLength = 128

// ValidateVoteID checks that a vote id is safe to use as an output file name.
// Vote ids look like "h3-115.2017"; anything that could escape the output
// directory is rejected:
//   - No empty ids
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateVoteID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPath, "vote id cannot be empty")
	}

	if len(id) > maxVoteIDLength {
		return New(ErrCodeInvalidPath, "vote id too long (max %d characters)", maxVoteIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "vote id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",
		"/",
		"\\",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidPath, "vote id contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(id, ".") {
		return New(ErrCodeInvalidPath, "vote id cannot start with a dot")
	}

	return nil
}
