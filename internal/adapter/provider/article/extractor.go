// Package article downloads web pages and extracts their readable text.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

const defaultMaxBytes = 5 << 20

// Article is the readable part of a web page.
type Article struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"siteName,omitempty"`
	Text     string `json:"text"`
}

// Extractor fetches pages over HTTP and runs readability on them.
type Extractor struct {
	httpClient *http.Client
	maxBytes   int64
	log        *slog.Logger
}

// NewExtractor creates an Extractor. maxBytes <= 0 selects a 5 MiB limit.
func NewExtractor(timeout time.Duration, maxBytes int64, logger *slog.Logger) *Extractor {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Extractor{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
		log:        logger.With("adapter", "article"),
	}
}

// Extract downloads rawURL and returns its readable text.
// Non-http(s) URLs are rejected with a validation error.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*Article, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return nil, domain.NewValidationError("url", "must be an absolute http or https URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("article: create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("article: fetch %s: %w", pageURL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article: fetch %s: unexpected status %d", pageURL.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %w", err)
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("article: extract: %w", err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return nil, fmt.Errorf("article: no readable text at %s: %w", pageURL.Host, domain.ErrNotFound)
	}

	e.log.InfoContext(ctx, "article extracted",
		slog.String("host", pageURL.Host),
		slog.String("title", parsed.Title),
		slog.Int("chars", len(text)),
	)

	return &Article{
		URL:      pageURL.String(),
		Title:    parsed.Title,
		Byline:   parsed.Byline,
		SiteName: parsed.SiteName,
		Text:     text,
	}, nil
}
