package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/pkg/ctxutil"
)

// List returns a page of the reader's vocabulary.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()
	entries, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}

	return &ListResult{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

// Export returns the whole vocabulary, oldest entry first.
func (s *Service) Export(ctx context.Context) ([]domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := domain.VocabularyFilter{
		SortBy:    domain.SortByCreatedAt,
		SortOrder: "ASC",
		Limit:     domain.MaxVocabularyLimit,
	}.Normalized()

	all := make([]domain.VocabularyEntry, 0)
	for {
		page, total, err := s.repo.List(ctx, userID, filter)
		if err != nil {
			return nil, fmt.Errorf("export vocabulary: %w", err)
		}
		all = append(all, page...)
		if len(page) < filter.Limit || len(all) >= total {
			break
		}
		filter.Offset += len(page)
	}

	return all, nil
}
