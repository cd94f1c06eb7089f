package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PascalCase upper-cases the first letter of every word in s and drops the
// separators between words. Underscores, hyphens and spaces separate words;
// existing camelCase humps are kept.
func PascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upper := true
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LowerFirst lower-cases the first letter of s, turning a PascalCase type
// name into a camelCase variable name
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
