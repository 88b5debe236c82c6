package lookup

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/clicktionary-backend/internal/provider"
)

// fetchConcurrently queries the dictionary and, when wanted, the translator
// in parallel. Neither failure is returned: a dictionary error yields a nil
// entry and a translation error an empty string.
func (s *Service) fetchConcurrently(ctx context.Context, key, source, target string, wantTranslation bool) (*provider.RawEntry, string) {
	var (
		raw        *provider.RawEntry
		translated string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		defer s.observe(sourceDictionary, start)

		entry, err := s.dict.FetchEntry(gctx, key)
		if err != nil {
			s.metrics.upstreamErrors.WithLabelValues(sourceDictionary).Inc()
			s.log.WarnContext(ctx, "dictionary fetch failed, treating as not found",
				slog.String("word", key),
				slog.String("error", err.Error()),
			)
			return nil
		}
		raw = entry
		return nil
	})

	if wantTranslation && s.translator != nil {
		g.Go(func() error {
			start := time.Now()
			defer s.observe(sourceTranslation, start)

			text, err := s.translator.Translate(gctx, key, source, target)
			if err != nil {
				s.metrics.upstreamErrors.WithLabelValues(sourceTranslation).Inc()
				s.log.WarnContext(ctx, "word translation failed",
					slog.String("word", key),
					slog.String("target", target),
					slog.String("error", err.Error()),
				)
				return nil
			}
			translated = text
			return nil
		})
	}

	_ = g.Wait()
	return raw, translated
}
