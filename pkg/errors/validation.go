package errors

import (
	"strings"
	"unicode"
)

// MaxItemIDLength is the longest accepted item id.
const MaxItemIDLength = 256

// ValidateItemID validates an item id read from an input document.
//
// Ids must be non-empty, at most MaxItemIDLength bytes, and free of control
// characters. Everything else is accepted: ids are opaque to the engine.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}
	if len(id) > MaxItemIDLength {
		return New(ErrCodeInvalidInput, "item id too long (max %d characters)", MaxItemIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id %q contains control characters", id)
		}
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

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

// ValidateCacheURL validates a cache backend URL.
// Accepted schemes are redis, rediss, mongodb and mongodb+srv.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "cache URL cannot be empty")
	}
	for _, scheme := range []string{"redis://", "rediss://", "mongodb://", "mongodb+srv://"} {
		if strings.HasPrefix(rawURL, scheme) {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "cache URL must use redis, rediss, mongodb or mongodb+srv scheme")
}

// ValidateFormat checks that format is one of the accepted names.
func ValidateFormat(format string, accepted ...string) error {
	for _, a := range accepted {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(accepted, ", "))
}
