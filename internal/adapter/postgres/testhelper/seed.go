package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// NewEntry builds an unsaved vocabulary entry for word owned by userID.
func NewEntry(userID uuid.UUID, word string) domain.VocabularyEntry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.VocabularyEntry{
		ID:     uuid.New(),
		UserID: userID,
		WordEntry: domain.WordEntry{
			Word:          word,
			Pronunciation: "/" + word + "/",
			PartOfSpeech:  "noun",
			Definitions:   []string{"A definition of " + word + "."},
			Examples:      []string{},
			Synonyms:      []string{"syn-" + word},
			Antonyms:      []string{},
			Translations:  map[string]string{"es": word + "-es"},
		},
		Tier:      domain.TierB1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SeedEntry inserts an entry directly and returns it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word string) domain.VocabularyEntry {
	t.Helper()

	e := NewEntry(userID, word)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_entries (id, user_id, word, word_key, pronunciation, part_of_speech,
		     definitions, synonyms, translations, tier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.UserID, e.Word, domain.WordKey(e.Word), e.Pronunciation, e.PartOfSpeech,
		e.Definitions, e.Synonyms, e.Translations, string(e.Tier), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry %q: %v", word, err)
	}
	return e
}
