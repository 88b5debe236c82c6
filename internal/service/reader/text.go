package reader

import (
	"strings"
	"unicode/utf8"
)

// truncateUTF8 cuts s to at most limit bytes without splitting a rune.
// limit <= 0 means no limit.
func truncateUTF8(s string, limit int) (string, bool) {
	if limit <= 0 || len(s) <= limit {
		return s, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}

func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}
