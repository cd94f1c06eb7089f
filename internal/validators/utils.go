package validators

import "strings"

// HasNoSpaces checks if a string contains no whitespace
func HasNoSpaces(s string) bool {
	return !strings.ContainsAny(s, " \t\r\n")
}

// IsBlank checks if a string is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
