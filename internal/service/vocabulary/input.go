package vocabulary

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/normalize"
)

const (
	// MaxNoteLength is the longest personal note, in characters.
	MaxNoteLength = 5000
	// MaxImportEntries bounds one import request.
	MaxImportEntries = 1000

	maxWordLength = 100
)

// entryCaps bounds saved entries. Clients may have normalized with either
// policy, so the larger one applies.
var entryCaps = normalize.CapsRich

// SaveInput is an entry the reader chose to keep.
type SaveInput struct {
	Entry domain.WordEntry
	Note  string
}

// Validate checks the entry shape and note length.
func (i SaveInput) Validate() error {
	errs := validateEntry(i.Entry, "entry")
	errs = append(errs, validateNote(i.Note, "note")...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateNoteInput replaces the note of a saved entry.
type UpdateNoteInput struct {
	ID   uuid.UUID
	Note string
}

// Validate checks the ID and note length.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateNote(i.Note, "note")...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput filters and pages the vocabulary list.
type ListInput struct {
	Search       string
	PartOfSpeech string
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

// Validate rejects unknown sort options instead of silently defaulting.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	switch i.SortBy {
	case "", domain.SortByWord, domain.SortByCreatedAt:
	default:
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "must be word or created_at"})
	}
	switch strings.ToUpper(i.SortOrder) {
	case "", "ASC", "DESC":
	default:
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be ASC or DESC"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.VocabularyFilter {
	return domain.VocabularyFilter{
		Search:       i.Search,
		PartOfSpeech: i.PartOfSpeech,
		SortBy:       i.SortBy,
		SortOrder:    i.SortOrder,
		Limit:        i.Limit,
		Offset:       i.Offset,
	}.Normalized()
}

// ListResult is one page of entries and the total matching count.
type ListResult struct {
	Entries []domain.VocabularyEntry
	Total   int
	Limit   int
	Offset  int
}

// ImportItem is one entry of a previously exported vocabulary.
// A zero SavedAt means "now".
type ImportItem struct {
	Entry   domain.WordEntry
	Note    string
	SavedAt time.Time
}

// ImportInput is a batch of exported entries.
type ImportInput struct {
	Items []ImportItem
}

// Validate checks the batch size and every item.
func (i ImportInput) Validate() error {
	if len(i.Items) == 0 {
		return domain.NewValidationError("items", "at least one entry is required")
	}
	if len(i.Items) > MaxImportEntries {
		return domain.NewValidationError("items", fmt.Sprintf("at most %d entries per import", MaxImportEntries))
	}

	var errs []domain.FieldError
	for n, item := range i.Items {
		prefix := fmt.Sprintf("items[%d]", n)
		errs = append(errs, validateEntry(item.Entry, prefix)...)
		errs = append(errs, validateNote(item.Note, prefix+".note")...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportResult reports how many entries were added and skipped.
type ImportResult struct {
	Imported int
	// Skipped lists words already in the vocabulary or repeated in the batch.
	Skipped []string
}

func validateEntry(e domain.WordEntry, prefix string) []domain.FieldError {
	var errs []domain.FieldError
	word := strings.TrimSpace(e.Word)
	switch {
	case word == "":
		errs = append(errs, domain.FieldError{Field: prefix + ".word", Message: "required"})
	case utf8.RuneCountInString(word) > maxWordLength:
		errs = append(errs, domain.FieldError{Field: prefix + ".word", Message: "too long"})
	case domain.WordKey(word) == "":
		errs = append(errs, domain.FieldError{Field: prefix + ".word", Message: "must contain a letter or digit"})
	}

	bounded := []struct {
		field string
		n     int
		limit int
	}{
		{"definitions", len(e.Definitions), entryCaps.Definitions},
		{"examples", len(e.Examples), entryCaps.Examples},
		{"synonyms", len(e.Synonyms), entryCaps.Synonyms},
		{"antonyms", len(e.Antonyms), entryCaps.Antonyms},
	}
	for _, b := range bounded {
		if b.n > b.limit {
			errs = append(errs, domain.FieldError{
				Field:   prefix + "." + b.field,
				Message: fmt.Sprintf("at most %d items", b.limit),
			})
		}
	}
	return errs
}

func validateNote(note, field string) []domain.FieldError {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("at most %d characters", MaxNoteLength)}}
	}
	return nil
}
