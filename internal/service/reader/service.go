// Package reader turns pasted text, web articles and translations into
// clickable, difficulty-annotated segment streams.
package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/tokenize"
)

type articleExtractor interface {
	Extract(ctx context.Context, rawURL string) (*article.Article, error)
}

type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Service implements text analysis.
type Service struct {
	log          *slog.Logger
	table        tokenize.Lookuper
	articles     articleExtractor
	translator   translator
	maxTextBytes int
}

// NewService creates a reader service. articles and tr may be nil, which
// disables ImportURL and makes TranslateText fall back to the original text.
func NewService(
	logger *slog.Logger,
	table tokenize.Lookuper,
	articles articleExtractor,
	tr translator,
	cfg config.ReaderConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "reader"),
		table:        table,
		articles:     articles,
		translator:   tr,
		maxTextBytes: cfg.MaxTextBytes,
	}
}

// Analyze tokenizes input.Text against the difficulty table.
// Invalid UTF-8 or text over the size limit is rejected as malformed input.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	if err := s.checkText(input.Text); err != nil {
		return nil, err
	}
	if input.Language != "" {
		if _, ok := domain.LookupLanguage(input.Language); !ok {
			return nil, domain.NewValidationError("language", "unsupported language")
		}
	}
	return s.analyze(input.Text, input.Language), nil
}

// ImportURL extracts the readable text of a web page and analyzes it.
// Text beyond the size limit is cut at a rune boundary and flagged.
func (s *Service) ImportURL(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if s.articles == nil {
		return nil, fmt.Errorf("import url: %w", domain.ErrUpstream)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.articles.Extract(ctx, input.URL)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.log.WarnContext(ctx, "article import failed",
			slog.String("url", input.URL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("import %s: %w: %w", input.URL, domain.ErrUpstream, err)
	}

	text, truncated := truncateUTF8(toValidUTF8(a.Text), s.maxTextBytes)

	s.log.InfoContext(ctx, "article imported",
		slog.String("url", a.URL),
		slog.Int("bytes", len(text)),
		slog.Bool("truncated", truncated),
	)

	return &ImportResult{
		Article:   *a,
		Truncated: truncated,
		Analysis:  s.analyze(text, input.Language),
	}, nil
}

// TranslateText translates input.Text and analyzes the translation so its
// words are clickable too. When the translation service fails the original
// text is returned with Translated=false.
func (s *Service) TranslateText(ctx context.Context, input TranslateInput) (*TranslateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkText(input.Text); err != nil {
		return nil, err
	}

	result := &TranslateResult{
		Source: input.Source,
		Target: input.Target,
		Text:   input.Text,
	}

	if s.translator != nil {
		translated, err := s.translator.Translate(ctx, input.Text, input.Source, input.Target)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "text translation failed, showing original",
				slog.String("source", input.Source),
				slog.String("target", input.Target),
				slog.String("error", err.Error()),
			)
		case translated != "":
			result.Text = translated
			result.Translated = true
		}
	}

	// The translation comes from outside; keep the segment stream valid.
	result.Text, _ = truncateUTF8(toValidUTF8(result.Text), s.maxTextBytes)
	result.Analysis = s.analyze(result.Text, input.Target)
	return result, nil
}

func (s *Service) analyze(text, language string) *AnalyzeResult {
	segments := tokenize.Tokenize(text, s.table)
	return &AnalyzeResult{
		Language: language,
		Segments: segments,
		Summary:  tokenize.Summarize(segments),
	}
}

func (s *Service) checkText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("text is not valid UTF-8: %w", domain.ErrMalformedInput)
	}
	if s.maxTextBytes > 0 && len(text) > s.maxTextBytes {
		return fmt.Errorf("text is %d bytes, limit is %d: %w", len(text), s.maxTextBytes, domain.ErrMalformedInput)
	}
	return nil
}
