// Package tokenize splits raw text into clickable word segments and literal
// segments, classifying each word by difficulty.
package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// Lookuper resolves a normalized word key to a difficulty tier.
type Lookuper interface {
	Lookup(key string) domain.Tier
}

type class uint8

const (
	classSpace class = iota
	classWord
	classPunct
)

// classify assigns r its class given the class of the run before it. A
// combining mark continues a word but never starts one.
func classify(r rune, prev class) class {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case domain.IsWordStart(r):
		return classWord
	case unicode.IsMark(r) && prev == classWord:
		return classWord
	default:
		return classPunct
	}
}

// unknownTable classifies every word as unknown.
type unknownTable struct{}

func (unknownTable) Lookup(string) domain.Tier { return domain.TierUnknown }

// Tokenize splits text into segments in a single pass:
//   - a run of whitespace is one literal segment
//   - a run of word characters is one word segment
//   - every other character is a literal segment of its own
//
// Concatenating the Text of the result reproduces text byte for byte, even
// when text is not valid UTF-8. Words missing from the table, or every word
// when table is nil, are classified as unknown. The empty string yields an empty slice.
func Tokenize(text string, table Lookuper) []domain.Segment {
	if text == "" {
		return []domain.Segment{}
	}
	if table == nil {
		table = unknownTable{}
	}

	segments := make([]domain.Segment, 0, len(text)/3+1)
	start := 0
	var current class

	emit := func(end int) {
		if end <= start {
			return
		}
		chunk := text[start:end]
		index := len(segments)
		if current == classWord {
			key := domain.WordKey(chunk)
			segments = append(segments, domain.NewWordSegment(index, chunk, key, table.Lookup(key)))
		} else {
			segments = append(segments, domain.NewLiteralSegment(index, chunk))
		}
		start = end
	}

	for i := 0; i < len(text); {
		// Invalid bytes decode as utf8.RuneError with width 1 and land in
		// classPunct, so they pass through as single-byte literals.
		r, width := utf8.DecodeRuneInString(text[i:])
		c := classify(r, current)

		if i > start && (c != current || c == classPunct) {
			emit(i)
		}
		current = c
		i += width
	}
	emit(len(text))

	return segments
}
