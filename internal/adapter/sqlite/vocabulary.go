package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

const entity = "vocabulary_entry"

// timeLayout sorts lexicographically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const columns = `id, user_id, word, pronunciation, audio, part_of_speech,
    definitions, examples, synonyms, antonyms, translations, tier, note,
    created_at, updated_at`

// VocabularyRepo stores vocabulary entries in SQLite.
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a repository on an opened database.
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Create inserts a new entry.
// Returns domain.ErrAlreadyExists if the user already saved the same word.
func (r *VocabularyRepo) Create(ctx context.Context, e *domain.VocabularyEntry) error {
	lists, err := encodeLists(e)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, e.Word, err)
	}

	_, err = querier(ctx, r.db).ExecContext(ctx, `
INSERT INTO vocabulary_entries (
    id, user_id, word, word_key, pronunciation, audio, part_of_speech,
    definitions, examples, synonyms, antonyms, translations, tier, note,
    created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.UserID.String(), e.Word, domain.WordKey(e.Word), e.Pronunciation, e.Audio, e.PartOfSpeech,
		lists[0], lists[1], lists[2], lists[3], lists[4], string(e.Tier), e.Note,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	return mapError(err, entity, e.Word)
}

// GetByID returns an entry owned by userID.
func (r *VocabularyRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyEntry, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM vocabulary_entries WHERE id = ? AND user_id = ?`,
		id.String(), userID.String(),
	)
	e, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, entity, id)
	}
	return e, nil
}

// List returns a page of the user's entries and the total matching count.
func (r *VocabularyRepo) List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
	f := filter.Normalized()
	q := querier(ctx, r.db)

	where := sq.And{sq.Eq{"user_id": userID.String()}}
	if f.Search != "" {
		where = append(where, sq.Expr(`word LIKE ? ESCAPE '\'`, "%"+escapeLike(f.Search)+"%"))
	}
	if f.PartOfSpeech != "" {
		where = append(where, sq.Eq{"part_of_speech": f.PartOfSpeech})
	}

	countSQL, countArgs, err := sq.Select("count(*)").From("vocabulary_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", entity, err)
	}

	sortColumn := "created_at"
	if f.SortBy == domain.SortByWord {
		sortColumn = "word_key"
	}

	listSQL, listArgs, err := sq.Select(columns).
		From("vocabulary_entries").
		Where(where).
		OrderBy(sortColumn+" "+f.SortOrder, "id "+f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.QueryContext(ctx, listSQL, listArgs...)
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
func (r *VocabularyRepo) UpdateNote(ctx context.Context, userID, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx,
		`UPDATE vocabulary_entries SET note = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?
		 RETURNING `+columns,
		note, formatTime(at), id.String(), userID.String(),
	)
	e, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, entity, id)
	}
	return e, nil
}

// Delete removes an entry. Returns domain.ErrNotFound if nothing was deleted.
func (r *VocabularyRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := querier(ctx, r.db).ExecContext(ctx,
		`DELETE FROM vocabulary_entries WHERE id = ? AND user_id = ?`, id.String(), userID.String())
	if err != nil {
		return mapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ExistingKeys reports which of keys the user has already saved.
func (r *VocabularyRepo) ExistingKeys(ctx context.Context, userID uuid.UUID, keys []string) (map[string]bool, error) {
	found := make(map[string]bool, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	query, args, err := sq.Select("word_key").
		From("vocabulary_entries").
		Where(sq.Eq{"user_id": userID.String(), "word_key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keys query: %w", err)
	}

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, args...)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*domain.VocabularyEntry, error) {
	var (
		e                          domain.VocabularyEntry
		id, userID, tier           string
		defs, exs, syns, ants, trs string
		created, updated           string
	)
	err := row.Scan(&id, &userID, &e.Word, &e.Pronunciation, &e.Audio, &e.PartOfSpeech,
		&defs, &exs, &syns, &ants, &trs, &tier, &e.Note, &created, &updated)
	if err != nil {
		return nil, err
	}

	if e.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	if e.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}
	for _, f := range []struct {
		raw string
		dst any
	}{
		{defs, &e.Definitions}, {exs, &e.Examples}, {syns, &e.Synonyms}, {ants, &e.Antonyms}, {trs, &e.Translations},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decode list column: %w", err)
		}
	}
	if len(e.Translations) == 0 {
		e.Translations = nil
	}
	if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	e.Tier = domain.ParseTier(tier)

	return &e, nil
}

// encodeLists returns the JSON columns in column order:
// definitions, examples, synonyms, antonyms, translations.
func encodeLists(e *domain.VocabularyEntry) ([5]string, error) {
	var out [5]string
	values := []any{nonNil(e.Definitions), nonNil(e.Examples), nonNil(e.Synonyms), nonNil(e.Antonyms), e.Translations}
	if e.Translations == nil {
		values[4] = map[string]string{}
	}
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return out, err
		}
		out[i] = string(b)
	}
	return out, nil
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
