package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/clicktionary-backend/internal/provider"
)

const (
	// DefaultBaseURL is the public English endpoint of dictionaryapi.dev.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	maxBodyBytes = 2 << 20
	retryDelay   = 500 * time.Millisecond
)

// Provider fetches raw dictionary entries from the Free Dictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects DefaultBaseURL.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchEntry fetches the raw entry for word.
// Returns nil, nil if the API does not know the word (HTTP 404).
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.RawEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	resp, err := p.doWithRetry(ctx, reqURL, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("meanings", len(result.Meanings)),
		slog.Int("phonetics", len(result.Phonetics)),
	)

	return result, nil
}

// doWithRetry issues a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, word string) (*http.Response, error) {
	resp, err := p.get(ctx, reqURL)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	timer := time.NewTimer(retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return p.get(ctx, reqURL)
}

func (p *Provider) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return p.httpClient.Do(req)
}

// mapAPIResponse merges the API entries into one provider.RawEntry.
// Meanings and phonetics of later etymologies are appended in order;
// phonetics with neither text nor audio are dropped.
func mapAPIResponse(entries []apiEntry) *provider.RawEntry {
	result := &provider.RawEntry{
		Word:      entries[0].Word,
		Phonetics: []provider.RawPhonetic{},
		Meanings:  []provider.RawMeaning{},
	}

	for _, entry := range entries {
		hasText := false
		for _, ph := range entry.Phonetics {
			if ph.Text == "" && ph.Audio == "" {
				continue
			}
			hasText = hasText || strings.TrimSpace(ph.Text) != ""
			result.Phonetics = append(result.Phonetics, provider.RawPhonetic{Text: ph.Text, Audio: ph.Audio})
		}
		// The top-level phonetic string is the only IPA when every listed
		// phonetic is audio-only.
		if !hasText && strings.TrimSpace(entry.Phonetic) != "" {
			result.Phonetics = append(result.Phonetics, provider.RawPhonetic{Text: entry.Phonetic})
		}

		for _, m := range entry.Meanings {
			meaning := provider.RawMeaning{
				PartOfSpeech: m.PartOfSpeech,
				Synonyms:     m.Synonyms,
				Antonyms:     m.Antonyms,
				Definitions:  make([]provider.RawDefinition, 0, len(m.Definitions)),
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, provider.RawDefinition{
					Definition: d.Definition,
					Example:    d.Example,
					Synonyms:   d.Synonyms,
					Antonyms:   d.Antonyms,
				})
			}
			result.Meanings = append(result.Meanings, meaning)
		}
	}

	return result
}
