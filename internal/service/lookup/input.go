package lookup

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

const maxWordLength = 100

// LookupInput is a clicked word and the reader's language pair.
// Empty Source means auto-detect; empty Target means the default language.
type LookupInput struct {
	Word   string
	Source string
	Target string
}

// Validate checks the word and language codes.
func (i LookupInput) Validate() error {
	var errs []domain.FieldError

	word := strings.TrimSpace(i.Word)
	switch {
	case word == "":
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	case utf8.RuneCountInString(word) > maxWordLength:
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	case domain.WordKey(word) == "":
		errs = append(errs, domain.FieldError{Field: "word", Message: "must contain a letter or digit"})
	}

	if i.Source != "" {
		if _, ok := domain.LookupLanguage(i.Source); !ok {
			errs = append(errs, domain.FieldError{Field: "source", Message: "unsupported language"})
		}
	}
	if i.Target != "" {
		lang, ok := domain.LookupLanguage(i.Target)
		if !ok || lang.SourceOnly {
			errs = append(errs, domain.FieldError{Field: "target", Message: "unsupported language"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i LookupInput) sourceOrDefault() string {
	if i.Source == "" {
		return domain.LanguageAuto
	}
	return i.Source
}

func (i LookupInput) targetOrDefault() string {
	if i.Target == "" {
		return domain.DefaultLanguage
	}
	return i.Target
}

// LookupResult is a normalized entry annotated for display.
type LookupResult struct {
	Key         string
	Entry       *domain.WordEntry
	Tier        domain.Tier
	Band        domain.Band
	Translation *domain.Translation // nil when target and source are the same language
	Cached      bool
}
