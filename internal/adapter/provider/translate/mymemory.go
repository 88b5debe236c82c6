// Package translate contains translation providers: the MyMemory HTTP API
// and a stub used when translation is switched off.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// DefaultBaseURL is the public MyMemory endpoint.
const DefaultBaseURL = "https://api.mymemory.translated.net/get"

// ErrUnavailable reports that no translation could be produced.
var ErrUnavailable = errors.New("translation unavailable")

// MyMemory translates text through the MyMemory API.
type MyMemory struct {
	baseURL    string
	email      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewMyMemory creates a MyMemory client. An empty baseURL selects
// DefaultBaseURL. email, when set, is sent as the "de" parameter to raise
// the anonymous daily quota.
func NewMyMemory(baseURL, email string, timeout time.Duration, logger *slog.Logger) *MyMemory {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MyMemory{
		baseURL:    baseURL,
		email:      email,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "mymemory"),
	}
}

type mmResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  statusCode `json:"responseStatus"`
	ResponseDetails string     `json:"responseDetails"`
}

// statusCode accepts both 200 and "200"; the API uses either.
type statusCode int

func (s *statusCode) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("responseStatus %s: %w", b, err)
	}
	*s = statusCode(n)
	return nil
}

// Translate translates text from source to target. The auto source is sent
// as MyMemory's "autodetect".
func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == "" || source == domain.LanguageAuto {
		source = "autodetect"
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)
	if m.email != "" {
		q.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("mymemory: create request: %w", err)
	}

	start := time.Now()
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("mymemory: read body: %w", err)
	}

	var parsed mmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("mymemory: decode json: %w", err)
	}

	if parsed.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("mymemory: status %d %s: %w", parsed.ResponseStatus, parsed.ResponseDetails, ErrUnavailable)
	}

	translated := strings.TrimSpace(parsed.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("mymemory: empty translation: %w", ErrUnavailable)
	}

	m.log.DebugContext(ctx, "mymemory response",
		slog.String("langpair", source+"|"+target),
		slog.Int("chars", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	return translated, nil
}
