// Package vocabulary manages a reader's saved words.
package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	Create(ctx context.Context, e *domain.VocabularyEntry) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error)
	UpdateNote(ctx context.Context, userID, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ExistingKeys(ctx context.Context, userID uuid.UUID, keys []string) (map[string]bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tierTable interface {
	Lookup(key string) domain.Tier
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic. Every operation is
// scoped to the reader ID carried in the context.
type Service struct {
	log   *slog.Logger
	repo  vocabularyRepo
	tx    txManager
	table tierTable
	now   func() time.Time
}

// NewService creates a vocabulary service.
func NewService(logger *slog.Logger, repo vocabularyRepo, tx txManager, table tierTable) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		repo:  repo,
		tx:    tx,
		table: table,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) tierOf(word string) domain.Tier {
	if s.table == nil {
		return domain.TierUnknown
	}
	return s.table.Lookup(domain.WordKey(word))
}
