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

// Save adds an entry to the authenticated reader's vocabulary.
// Returns domain.ErrAlreadyExists if the word is already saved.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := s.newEntry(userID, input.Entry, input.Note)
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("save word: %w", err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("word", entry.Word),
	)

	return entry, nil
}

func (s *Service) newEntry(userID uuid.UUID, src domain.WordEntry, note string) *domain.VocabularyEntry {
	now := s.now()

	word := src
	word.Word = strings.TrimSpace(word.Word)
	if strings.TrimSpace(word.PartOfSpeech) == "" {
		word.PartOfSpeech = domain.FallbackPartOfSpeech
	}

	return &domain.VocabularyEntry{
		ID:        uuid.New(),
		UserID:    userID,
		WordEntry: word,
		Tier:      s.tierOf(word.Word),
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
