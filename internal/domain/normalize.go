package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares free text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// IsWordStart reports whether a word may begin with r. A combining mark only
// continues a word.
func IsWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordKey returns the lookup key for a word: lowercase with every non-word
// character removed. "Fox." and "FOX" share the key "fox". A combining mark
// is kept only when it follows a kept character.
func WordKey(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inWord := false
	for _, r := range text {
		switch {
		case IsWordStart(r), inWord && unicode.IsMark(r):
			b.WriteRune(unicode.ToLower(r))
			inWord = true
		default:
			inWord = false
		}
	}
	return b.String()
}
