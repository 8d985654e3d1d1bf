package sanitizer

import "strings"

// SanitizeEmail normalizes an email used as a lookup key.
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// OrEmpty returns values unchanged, or an empty slice when values is nil.
// Order, blanks and duplicates are kept.
func OrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
