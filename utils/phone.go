package utils

import "strings"

// NormalizePhone strips formatting and local prefixes from a phone number so
// that stored and user-entered numbers compare on their significant digits.
// Removes spaces and dashes, then a leading "+977", "977" or a single "0".
func NormalizePhone(phone string) string {
	p := strings.ReplaceAll(phone, " ", "")
	p = strings.ReplaceAll(p, "-", "")
	p = strings.TrimPrefix(p, "+977")
	p = strings.TrimPrefix(p, "977")
	p = strings.TrimPrefix(p, "0")
	return p
}

// PhoneMatches reports whether two phone numbers refer to the same line after
// normalization. Numbers match when equal or when one is a suffix of the
// other, so "+977-9860056658" matches "9860056658".
func PhoneMatches(stored, entered string) bool {
	a := NormalizePhone(stored)
	b := NormalizePhone(entered)
	if a == "" || b == "" {
		return false
	}
	return strings.HasSuffix(a, b) || strings.HasSuffix(b, a)
}
