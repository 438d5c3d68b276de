package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single '-', edges trimmed.
// "Wireless Mouse!!" becomes "wireless-mouse".
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
