// Package utils provides small derivation helpers shared by the services.
package utils

import "strings"

// GenerateSlug derives a URL-safe identifier from a title. It lowercases
// the input, drops every rune that is not a lowercase letter, digit or
// whitespace, turns whitespace runs into single hyphens and trims
// leading/trailing hyphens. Symbol-only input yields ""; callers must
// treat an empty result as invalid.
func GenerateSlug(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
