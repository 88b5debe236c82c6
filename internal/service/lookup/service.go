// Package lookup resolves a clicked word into a normalized dictionary entry
// with its difficulty and display translation.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/normalize"
	"github.com/heartmarshall/clicktionary-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.RawEntry, error)
}

type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type tierTable interface {
	Lookup(key string) domain.Tier
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word lookup.
type Service struct {
	log        *slog.Logger
	dict       dictionaryProvider
	translator translator
	table      tierTable
	caps       normalize.Caps
	cache      *expirable.LRU[string, *domain.WordEntry]
	group      singleflight.Group
	metrics    *metrics
}

// NewService creates a lookup service. reg may be nil, in which case the
// metrics are collected but not exported.
func NewService(
	logger *slog.Logger,
	dict dictionaryProvider,
	tr translator,
	table tierTable,
	cfg config.LookupConfig,
	reg prometheus.Registerer,
) (*Service, error) {
	caps, ok := normalize.CapsFor(cfg.CapsTier)
	if !ok {
		return nil, fmt.Errorf("lookup: unknown caps tier %q", cfg.CapsTier)
	}

	s := &Service{
		log:        logger.With("service", "lookup"),
		dict:       dict,
		translator: tr,
		table:      table,
		caps:       caps,
		metrics:    newMetrics(reg),
	}
	if cfg.CacheSize > 0 {
		s.cache = expirable.NewLRU[string, *domain.WordEntry](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return s, nil
}

// Caps returns the list bounds this service normalizes with.
func (s *Service) Caps() normalize.Caps { return s.caps }

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

// Lookup fetches and normalizes the entry for input.Word.
//
// Dictionary transport failures are logged and reported as not found, the
// same as a word the dictionary does not know. A failed translation only
// degrades the result to the placeholder text.
func (s *Service) Lookup(ctx context.Context, input LookupInput) (*LookupResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := domain.WordKey(input.Word)
	source := input.sourceOrDefault()
	target := input.targetOrDefault()
	wantTranslation := domain.ResolveLanguage(source) != domain.ResolveLanguage(target)

	cacheKey := key
	if wantTranslation {
		cacheKey = key + "|" + source + "|" + target
	}

	entry, cached, err := s.entry(ctx, cacheKey, key, source, target, wantTranslation)
	if err != nil {
		return nil, err
	}

	tier := domain.TierUnknown
	if s.table != nil {
		tier = s.table.Lookup(key)
	}

	return &LookupResult{
		Key:         key,
		Entry:       entry,
		Tier:        tier,
		Band:        tier.Band(),
		Translation: entry.TranslationFor(source, target),
		Cached:      cached,
	}, nil
}

func (s *Service) entry(ctx context.Context, cacheKey, key, source, target string, wantTranslation bool) (*domain.WordEntry, bool, error) {
	if s.cache != nil {
		if e, ok := s.cache.Get(cacheKey); ok {
			s.metrics.lookups.WithLabelValues(outcomeHit).Inc()
			return e, true, nil
		}
	}

	// Concurrent identical lookups share one fetch. The shared fetch is
	// detached from the first caller's cancellation; the HTTP clients carry
	// their own timeouts.
	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), key, source, target, wantTranslation)
	})
	if err != nil {
		return nil, false, err
	}

	entry := v.(*domain.WordEntry)
	if s.cache != nil {
		s.cache.Add(cacheKey, entry)
	}
	return entry, false, nil
}

func (s *Service) fetch(ctx context.Context, key, source, target string, wantTranslation bool) (*domain.WordEntry, error) {
	raw, translated := s.fetchConcurrently(ctx, key, source, target, wantTranslation)

	entry, err := normalize.Normalize(raw, key, s.caps)
	if err != nil {
		s.metrics.lookups.WithLabelValues(outcomeNotFound).Inc()
		return nil, err
	}
	s.metrics.lookups.WithLabelValues(outcomeFetched).Inc()

	if translated != "" {
		merged := make(map[string]string, len(entry.Translations)+1)
		for k, v := range entry.Translations {
			merged[k] = v
		}
		merged[target] = translated
		entry.Translations = merged
	}

	s.log.DebugContext(ctx, "word fetched",
		slog.String("word", key),
		slog.Int("definitions", len(entry.Definitions)),
		slog.Bool("translated", translated != ""),
	)
	return entry, nil
}

func (s *Service) observe(source string, start time.Time) {
	s.metrics.fetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
