package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/pkg/ctxutil"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mapTable map[string]domain.Tier

func (m mapTable) Lookup(key string) domain.Tier {
	if t, ok := m[key]; ok {
		return t
	}
	return domain.TierUnknown
}

func newTestService(t *testing.T, repo *vocabularyRepoMock) *Service {
	t.Helper()
	svc := NewService(slog.Default(), repo, defaultTxMock(), mapTable{"serendipity": domain.TierC2, "run": domain.TierA1})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func sampleEntry(word string) domain.WordEntry {
	return domain.WordEntry{
		Word:          word,
		Pronunciation: "/ˌsɛɹənˈdɪpɪti/",
		PartOfSpeech:  "noun",
		Definitions:   []string{"A happy accident."},
		Examples:      []string{},
		Synonyms:      []string{"chance"},
		Antonyms:      []string{},
	}
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestSave_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &vocabularyRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error { return nil },
	}
	svc := newTestService(t, repo)

	got, err := svc.Save(userCtx(userID), SaveInput{Entry: sampleEntry("  Serendipity "), Note: " from a novel "})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "Serendipity", got.Word)
	assert.Equal(t, "from a novel", got.Note)
	assert.Equal(t, domain.TierC2, got.Tier)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	require.Len(t, repo.CreateCalls(), 1)
	assert.Same(t, got, repo.CreateCalls()[0].E)
}

func TestSave_DefaultsPartOfSpeech(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error { return nil },
	}
	svc := newTestService(t, repo)

	entry := sampleEntry("glimmer")
	entry.PartOfSpeech = ""

	got, err := svc.Save(userCtx(uuid.New()), SaveInput{Entry: entry})
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackPartOfSpeech, got.PartOfSpeech)
	assert.Equal(t, domain.TierUnknown, got.Tier)
}

func TestSave_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &vocabularyRepoMock{})

	_, err := svc.Save(context.Background(), SaveInput{Entry: sampleEntry("run")})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSave_Validation(t *testing.T) {
	t.Parallel()

	tooMany := sampleEntry("run")
	tooMany.Definitions = []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		input SaveInput
		field string
	}{
		{"empty word", SaveInput{Entry: sampleEntry("   ")}, "entry.word"},
		{"punctuation only", SaveInput{Entry: sampleEntry("?!")}, "entry.word"},
		{"word too long", SaveInput{Entry: sampleEntry(strings.Repeat("a", 101))}, "entry.word"},
		{"note too long", SaveInput{Entry: sampleEntry("run"), Note: strings.Repeat("ж", MaxNoteLength+1)}, "note"},
		{"too many definitions", SaveInput{Entry: tooMany}, "entry.definitions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &vocabularyRepoMock{}
			svc := newTestService(t, repo)

			_, err := svc.Save(userCtx(uuid.New()), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Empty(t, repo.CreateCalls())
		})
	}
}

func TestSave_NoteAtLimit(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error { return nil },
	}
	svc := newTestService(t, repo)

	_, err := svc.Save(userCtx(uuid.New()), SaveInput{Entry: sampleEntry("run"), Note: strings.Repeat("ж", MaxNoteLength)})
	assert.NoError(t, err)
}

func TestSave_AlreadyExists(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error {
			return fmt.Errorf("vocabulary_entry %s: %w", e.Word, domain.ErrAlreadyExists)
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.Save(userCtx(uuid.New()), SaveInput{Entry: sampleEntry("run")})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

// ---------------------------------------------------------------------------
// Get / UpdateNote / Delete
// ---------------------------------------------------------------------------

func TestGet_ScopedToUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()
	repo := &vocabularyRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, id uuid.UUID) (*domain.VocabularyEntry, error) {
			if uid != userID {
				return nil, domain.ErrNotFound
			}
			return &domain.VocabularyEntry{ID: id, UserID: uid}, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Get(userCtx(userID), entryID)
	require.NoError(t, err)
	assert.Equal(t, entryID, got.ID)

	_, err = svc.Get(userCtx(uuid.New()), entryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateNote_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()
	repo := &vocabularyRepoMock{
		UpdateNoteFunc: func(ctx context.Context, uid, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error) {
			return &domain.VocabularyEntry{ID: id, UserID: uid, Note: note, UpdatedAt: at}, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.UpdateNote(userCtx(userID), UpdateNoteInput{ID: entryID, Note: "  seen twice  "})
	require.NoError(t, err)
	assert.Equal(t, "seen twice", got.Note)
	assert.Equal(t, fixedNow, got.UpdatedAt)

	calls := repo.UpdateNoteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, userID, calls[0].UserID)
	assert.Equal(t, entryID, calls[0].Id)
}

func TestUpdateNote_Validation(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{}
	svc := newTestService(t, repo)

	_, err := svc.UpdateNote(userCtx(uuid.New()), UpdateNoteInput{Note: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateNote(userCtx(uuid.New()), UpdateNoteInput{ID: uuid.New(), Note: strings.Repeat("a", MaxNoteLength+1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.UpdateNoteCalls())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	known := uuid.New()
	repo := &vocabularyRepoMock{
		DeleteFunc: func(ctx context.Context, uid, id uuid.UUID) error {
			if id != known {
				return fmt.Errorf("vocabulary_entry %s: %w", id, domain.ErrNotFound)
			}
			return nil
		},
	}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Delete(userCtx(userID), known))
	assert.ErrorIs(t, svc.Delete(userCtx(userID), uuid.New()), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(userCtx(userID), uuid.Nil), domain.ErrValidation)
	assert.ErrorIs(t, svc.Delete(context.Background(), known), domain.ErrUnauthorized)
	assert.Len(t, repo.DeleteCalls(), 2)
}

// ---------------------------------------------------------------------------
// List / Export
// ---------------------------------------------------------------------------

func TestList_NormalizesFilter(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{
		ListFunc: func(ctx context.Context, uid uuid.UUID, f domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
			return []domain.VocabularyEntry{{Note: "a"}}, 7, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.List(userCtx(uuid.New()), ListInput{Search: " ser ", SortOrder: "asc", Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Total)
	assert.Equal(t, domain.MaxVocabularyLimit, got.Limit)
	assert.Len(t, got.Entries, 1)

	f := repo.ListCalls()[0].Filter
	assert.Equal(t, "ser", f.Search)
	assert.Equal(t, "ASC", f.SortOrder)
	assert.Equal(t, domain.SortByCreatedAt, f.SortBy)
}

func TestList_RejectsBadSort(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &vocabularyRepoMock{})

	_, err := svc.List(userCtx(uuid.New()), ListInput{SortBy: "tier"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(userCtx(uuid.New()), ListInput{SortOrder: "sideways"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(userCtx(uuid.New()), ListInput{Offset: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExport_PagesThroughEverything(t *testing.T) {
	t.Parallel()

	const total = domain.MaxVocabularyLimit + 30
	repo := &vocabularyRepoMock{
		ListFunc: func(ctx context.Context, uid uuid.UUID, f domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
			n := min(f.Limit, total-f.Offset)
			page := make([]domain.VocabularyEntry, n)
			for i := range page {
				page[i].Note = fmt.Sprint(f.Offset + i)
			}
			return page, total, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Export(userCtx(uuid.New()))
	require.NoError(t, err)
	require.Len(t, got, total)
	assert.Equal(t, "0", got[0].Note)
	assert.Equal(t, fmt.Sprint(total-1), got[total-1].Note)

	calls := repo.ListCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "ASC", calls[0].Filter.SortOrder)
	assert.Equal(t, domain.MaxVocabularyLimit, calls[1].Filter.Offset)
}

func TestExport_Empty(t *testing.T) {
	t.Parallel()

	repo := &vocabularyRepoMock{
		ListFunc: func(ctx context.Context, uid uuid.UUID, f domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
			return []domain.VocabularyEntry{}, 0, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Export(userCtx(uuid.New()))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Import
// ---------------------------------------------------------------------------

func TestImport_SkipsExistingAndDuplicates(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	savedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	var created []*domain.VocabularyEntry
	repo := &vocabularyRepoMock{
		ExistingKeysFunc: func(ctx context.Context, uid uuid.UUID, keys []string) (map[string]bool, error) {
			return map[string]bool{"run": true}, nil
		},
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error {
			created = append(created, e)
			return nil
		},
	}
	tx := defaultTxMock()
	svc := NewService(slog.Default(), repo, tx, mapTable{})
	svc.now = func() time.Time { return fixedNow }

	got, err := svc.Import(userCtx(userID), ImportInput{Items: []ImportItem{
		{Entry: sampleEntry("Run")},
		{Entry: sampleEntry("serendipity"), Note: "keep", SavedAt: savedAt},
		{Entry: sampleEntry("Serendipity!")},
		{Entry: sampleEntry("glimmer")},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Imported)
	assert.Equal(t, []string{"Run", "Serendipity!"}, got.Skipped)
	assert.Len(t, tx.RunInTxCalls(), 1)

	require.Len(t, created, 2)
	assert.Equal(t, "serendipity", created[0].Word)
	assert.Equal(t, savedAt, created[0].CreatedAt)
	assert.Equal(t, fixedNow, created[0].UpdatedAt)
	assert.Equal(t, fixedNow, created[1].CreatedAt)

	keys := repo.ExistingKeysCalls()[0].Keys
	assert.Equal(t, []string{"run", "serendipity", "serendipity", "glimmer"}, keys)
}

func TestImport_RollsBackOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	repo := &vocabularyRepoMock{
		ExistingKeysFunc: func(ctx context.Context, uid uuid.UUID, keys []string) (map[string]bool, error) {
			return map[string]bool{}, nil
		},
		CreateFunc: func(ctx context.Context, e *domain.VocabularyEntry) error { return boom },
	}
	svc := newTestService(t, repo)

	_, err := svc.Import(userCtx(uuid.New()), ImportInput{Items: []ImportItem{{Entry: sampleEntry("run")}}})
	assert.ErrorIs(t, err, boom)
}

func TestImport_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &vocabularyRepoMock{})
	ctx := userCtx(uuid.New())

	_, err := svc.Import(ctx, ImportInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Import(ctx, ImportInput{Items: make([]ImportItem, MaxImportEntries+1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Import(ctx, ImportInput{Items: []ImportItem{{Entry: sampleEntry("run")}, {Entry: sampleEntry("")}}})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[1].word", ve.Errors[0].Field)
}
