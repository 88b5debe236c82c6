package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/pkg/ctxutil"
)

// Import adds previously exported entries in one transaction. Words already
// in the vocabulary, and repeats within the batch, are skipped.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		keys = append(keys, domain.WordKey(item.Entry.Word))
	}

	result := &ImportResult{Skipped: []string{}}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.ExistingKeys(txCtx, userID, keys)
		if err != nil {
			return fmt.Errorf("check existing: %w", err)
		}

		seen := make(map[string]bool, len(keys))
		for n, item := range input.Items {
			key := keys[n]
			if existing[key] || seen[key] {
				result.Skipped = append(result.Skipped, item.Entry.Word)
				continue
			}
			seen[key] = true

			entry := s.newEntry(userID, item.Entry, item.Note)
			if !item.SavedAt.IsZero() {
				entry.CreatedAt = item.SavedAt.UTC()
			}
			if err := s.repo.Create(txCtx, entry); err != nil {
				return fmt.Errorf("import %q: %w", item.Entry.Word, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vocabulary imported",
		slog.String("user_id", userID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}
