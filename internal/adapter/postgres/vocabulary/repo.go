// Package vocabulary implements the vocabulary store on PostgreSQL.
// Fixed-shape statements are raw SQL; listings are built with squirrel.
package vocabulary

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clicktionary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

const entity = "vocabulary_entry"

const columns = `id, user_id, word, pronunciation, audio, part_of_speech,
    definitions, examples, synonyms, antonyms, translations, tier, note,
    created_at, updated_at`

const insertSQL = `
INSERT INTO vocabulary_entries (
    id, user_id, word, word_key, pronunciation, audio, part_of_speech,
    definitions, examples, synonyms, antonyms, translations, tier, note,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

const getByIDSQL = `SELECT ` + columns + `
FROM vocabulary_entries
WHERE id = $1 AND user_id = $2`

const updateNoteSQL = `
UPDATE vocabulary_entries
SET note = $3, updated_at = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

const existingKeysSQL = `
SELECT word_key FROM vocabulary_entries
WHERE user_id = $1 AND word_key = ANY($2)`

const deleteSQL = `DELETE FROM vocabulary_entries WHERE id = $1 AND user_id = $2`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new entry.
// Returns domain.ErrAlreadyExists if the user already saved the same word.
func (r *Repo) Create(ctx context.Context, e *domain.VocabularyEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	translations := e.Translations
	if translations == nil {
		translations = map[string]string{}
	}

	_, err := q.Exec(ctx, insertSQL,
		e.ID, e.UserID, e.Word, domain.WordKey(e.Word), e.Pronunciation, e.Audio, e.PartOfSpeech,
		nonNil(e.Definitions), nonNil(e.Examples), nonNil(e.Synonyms), nonNil(e.Antonyms),
		translations, string(e.Tier), e.Note, e.CreatedAt, e.UpdatedAt,
	)
	return postgres.MapError(err, entity, e.Word)
}

// GetByID returns an entry owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyEntry, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID)

	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// List returns a page of the user's entries and the total number matching
// the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
	f := filter.Normalized()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if f.Search != "" {
		where = append(where, sq.ILike{"word": "%" + escapeLike(f.Search) + "%"})
	}
	if f.PartOfSpeech != "" {
		where = append(where, sq.Eq{"part_of_speech": f.PartOfSpeech})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("vocabulary_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", entity, err)
	}

	sortColumn := "created_at"
	if f.SortBy == domain.SortByWord {
		sortColumn = "word_key"
	}

	listSQL, listArgs, err := psql.Select(columns).
		From("vocabulary_entries").
		Where(where).
		OrderBy(sortColumn+" "+f.SortOrder, "id "+f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", entity, err)
	}
	defer rows.Close()

	entries := make([]domain.VocabularyEntry, 0, f.Limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", entity, err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", entity, err)
	}

	return entries, total, nil
}

// UpdateNote replaces the note of an entry and returns the updated entry.
func (r *Repo) UpdateNote(ctx context.Context, userID, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateNoteSQL, id, userID, note, at)

	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// Delete removes an entry. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ExistingKeys reports which of keys the user has already saved.
func (r *Repo) ExistingKeys(ctx context.Context, userID uuid.UUID, keys []string) (map[string]bool, error) {
	found := make(map[string]bool, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, existingKeysSQL, userID, keys)
	if err != nil {
		return nil, fmt.Errorf("existing keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		found[key] = true
	}
	return found, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.VocabularyEntry, error) {
	var (
		e    domain.VocabularyEntry
		tier string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Word, &e.Pronunciation, &e.Audio, &e.PartOfSpeech,
		&e.Definitions, &e.Examples, &e.Synonyms, &e.Antonyms, &e.Translations,
		&tier, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Tier = domain.ParseTier(tier)
	if len(e.Translations) == 0 {
		e.Translations = nil
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
