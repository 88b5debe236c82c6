package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

func openTestDB(t *testing.T) *VocabularyRepo {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVocabularyRepo(db)
}

func newEntry(userID uuid.UUID, word string, created time.Time) *domain.VocabularyEntry {
	return &domain.VocabularyEntry{
		ID:     uuid.New(),
		UserID: userID,
		WordEntry: domain.WordEntry{
			Word:          word,
			Pronunciation: "/" + word + "/",
			PartOfSpeech:  "noun",
			Definitions:   []string{"def of " + word},
			Synonyms:      []string{"a", "b"},
		},
		Tier:      domain.TierA2,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOpen_InMemory(t *testing.T) {
	t.Parallel()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='vocabulary_entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "vocabulary_entries", name)
}

func TestOpen_Reopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	repo := NewVocabularyRepo(db)
	e := newEntry(uuid.New(), "persist", time.Now())
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewVocabularyRepo(db).GetByID(ctx, e.UserID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "persist", got.Word)
}

func TestVocabularyRepo_CreateGet(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 30, 0, 123456789, time.UTC)

	e := newEntry(uuid.New(), "fox", created)
	e.Translations = map[string]string{"fr": "renard"}
	e.Note = "quick"
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.UserID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.WordEntry.Definitions, got.Definitions)
	assert.Equal(t, []string{}, got.Examples)
	assert.Equal(t, []string{"a", "b"}, got.Synonyms)
	assert.Equal(t, map[string]string{"fr": "renard"}, got.Translations)
	assert.Equal(t, domain.TierA2, got.Tier)
	assert.Equal(t, "quick", got.Note)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, uuid.New(), e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVocabularyRepo_Constraints(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, newEntry(userID, "Dog", time.Now())))
	assert.ErrorIs(t, repo.Create(ctx, newEntry(userID, "dog!", time.Now())), domain.ErrAlreadyExists)

	long := newEntry(userID, "long", time.Now())
	long.Note = strings.Repeat("x", 5001)
	assert.ErrorIs(t, repo.Create(ctx, long), domain.ErrValidation)

	blank := newEntry(userID, "...", time.Now())
	assert.ErrorIs(t, repo.Create(ctx, blank), domain.ErrValidation)
}

func TestVocabularyRepo_List(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, w := range []string{"brown", "alphabet", "fox", "foxhole"} {
		e := newEntry(userID, w, base.Add(time.Duration(i)*time.Millisecond*900))
		if w == "alphabet" {
			e.PartOfSpeech = "verb"
		}
		require.NoError(t, repo.Create(ctx, e))
	}
	require.NoError(t, repo.Create(ctx, newEntry(uuid.New(), "foreign", base)))

	entries, total, err := repo.List(ctx, userID, domain.VocabularyFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, "foxhole", entries[0].Word)
	assert.Equal(t, "brown", entries[3].Word)

	entries, _, err = repo.List(ctx, userID, domain.VocabularyFilter{SortBy: "word", SortOrder: "asc", Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "brown", entries[0].Word)
	assert.Equal(t, "fox", entries[1].Word)

	_, total, err = repo.List(ctx, userID, domain.VocabularyFilter{Search: "FOX"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = repo.List(ctx, userID, domain.VocabularyFilter{Search: "_"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	entries, total, err = repo.List(ctx, userID, domain.VocabularyFilter{PartOfSpeech: "verb"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "alphabet", entries[0].Word)
}

func TestVocabularyRepo_UpdateNoteAndDelete(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	ctx := context.Background()
	e := newEntry(uuid.New(), "note", time.Now())
	require.NoError(t, repo.Create(ctx, e))

	at := time.Now().Add(time.Hour).UTC()
	got, err := repo.UpdateNote(ctx, e.UserID, e.ID, "updated", at)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Note)
	assert.True(t, at.Equal(got.UpdatedAt))

	_, err = repo.UpdateNote(ctx, uuid.New(), e.ID, "nope", at)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, e.UserID, e.ID))
	assert.ErrorIs(t, repo.Delete(ctx, e.UserID, e.ID), domain.ErrNotFound)
}

func TestTxManager_RollbackAndNested(t *testing.T) {
	t.Parallel()

	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)
	txm := NewTxManager(db)
	ctx := context.Background()
	userID := uuid.New()
	sentinel := errors.New("abort")

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, newEntry(userID, "one", time.Now())); err != nil {
			return err
		}
		return txm.RunInTx(ctx, func(ctx context.Context) error {
			if err := repo.Create(ctx, newEntry(userID, "two", time.Now())); err != nil {
				return err
			}
			return sentinel
		})
	})
	require.ErrorIs(t, err, sentinel)

	_, total, err := repo.List(ctx, userID, domain.VocabularyFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	require.NoError(t, txm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Create(ctx, newEntry(userID, "three", time.Now()))
	}))
	_, total, err = repo.List(ctx, userID, domain.VocabularyFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestVocabularyRepo_ExistingKeys(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newEntry(userID, "Fox", now)))
	require.NoError(t, repo.Create(ctx, newEntry(uuid.New(), "dog", now)))

	found, err := repo.ExistingKeys(ctx, userID, []string{"fox", "dog", "cat"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"fox": true}, found)

	empty, err := repo.ExistingKeys(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
