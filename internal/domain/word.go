package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FallbackPartOfSpeech is used when a dictionary payload has no meaning groups.
const FallbackPartOfSpeech = "word"

// WordEntry is a dictionary record reduced to what the reader displays.
// List fields are bounded and never nil after normalization.
type WordEntry struct {
	Word          string            `json:"word"`
	Pronunciation string            `json:"pronunciation"`
	Audio         string            `json:"audio,omitempty"`
	PartOfSpeech  string            `json:"partOfSpeech"`
	Definitions   []string          `json:"definitions"`
	Examples      []string          `json:"examples"`
	Synonyms      []string          `json:"synonyms"`
	Antonyms      []string          `json:"antonyms"`
	Translations  map[string]string `json:"translations,omitempty"`
}

// Translation is the translation row shown next to an entry.
type Translation struct {
	Language    string `json:"language"`
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// TranslationFor returns the translation row for the target language, or nil
// when source and target are the same language. A missing translation yields
// a placeholder of the form "word (code)".
func (e *WordEntry) TranslationFor(source, target string) *Translation {
	target = ResolveLanguage(target)
	if target == ResolveLanguage(source) {
		return nil
	}
	if text, ok := e.Translations[target]; ok && text != "" {
		return &Translation{Language: target, Text: text}
	}
	return &Translation{
		Language:    target,
		Text:        fmt.Sprintf("%s (%s)", e.Word, target),
		Placeholder: true,
	}
}

// VocabularyEntry is a word entry saved to a user's vocabulary list.
type VocabularyEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"-"`
	WordEntry
	Tier      Tier      `json:"tier,omitempty"`
	Note      string    `json:"notes"`
	CreatedAt time.Time `json:"dateAdded"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VocabularyFilter narrows a vocabulary listing.
type VocabularyFilter struct {
	// Search matches a substring of the word, case-insensitively.
	Search       string
	PartOfSpeech string
	// SortBy is "word" or "created_at" (default).
	SortBy string
	// SortOrder is "ASC" or "DESC" (default).
	SortOrder string
	Limit     int
	Offset    int
}

const (
	DefaultVocabularyLimit = 50
	MaxVocabularyLimit     = 200

	SortByWord      = "word"
	SortByCreatedAt = "created_at"
)

// Normalized returns a copy of f with defaults applied and values clamped.
func (f VocabularyFilter) Normalized() VocabularyFilter {
	switch f.SortBy {
	case SortByWord, SortByCreatedAt:
	default:
		f.SortBy = SortByCreatedAt
	}

	switch strings.ToUpper(f.SortOrder) {
	case "ASC":
		f.SortOrder = "ASC"
	default:
		f.SortOrder = "DESC"
	}

	if f.Limit <= 0 {
		f.Limit = DefaultVocabularyLimit
	}
	if f.Limit > MaxVocabularyLimit {
		f.Limit = MaxVocabularyLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	f.Search = strings.TrimSpace(f.Search)
	f.PartOfSpeech = strings.TrimSpace(f.PartOfSpeech)
	return f
}
