package outline

import (
	"strings"
	"unicode"
)

// Normalize collapses whitespace runs to single spaces, strips
// non-printable characters and trims the result. Idempotent.
func Normalize(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, collapsed)
	return strings.TrimSpace(cleaned)
}
