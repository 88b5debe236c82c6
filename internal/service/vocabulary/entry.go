package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/pkg/ctxutil"
)

// Get returns one saved entry.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// UpdateNote replaces the personal note on a saved entry.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.UpdateNote(ctx, userID, input.ID, strings.TrimSpace(input.Note), s.now())
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}

// Delete removes a saved entry.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "word removed",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)

	return nil
}
