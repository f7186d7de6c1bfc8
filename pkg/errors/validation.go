package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// resourceNameRegex matches PokeAPI identifiers: numeric ids or lower-case
// hyphenated names such as "mr-mime" or "special-attack".
var resourceNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateResourceName validates a pokemon id, pokemon name, region name or
// type name before it is interpolated into an upstream URL path.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
//   - Only lower-case ASCII letters, digits and hyphens
//
// Callers lower-case user input first; ValidateResourceName does not.
func ValidateResourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "name contains invalid characters: %q", pattern)
		}
	}

	if !resourceNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid name: %q", name)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
