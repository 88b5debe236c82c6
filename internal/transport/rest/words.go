package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
)

type lookupService interface {
	Lookup(ctx context.Context, input lookup.LookupInput) (*lookup.LookupResult, error)
}

// WordHandler serves dictionary lookups and the language catalog.
type WordHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc lookupService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type lookupResponse struct {
	Key         string              `json:"key"`
	Entry       *domain.WordEntry   `json:"entry"`
	Tier        domain.Tier         `json:"tier"`
	Band        domain.Band         `json:"band"`
	Translation *domain.Translation `json:"translation,omitempty"`
	Cached      bool                `json:"cached"`
}

type languagesResponse struct {
	Languages []domain.Language `json:"languages"`
	Default   string            `json:"default"`
}

// Lookup handles GET /api/words/{word}?source=&target=.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.svc.Lookup(r.Context(), lookup.LookupInput{
		Word:   r.PathValue("word"),
		Source: q.Get("source"),
		Target: q.Get("target"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Key:         result.Key,
		Entry:       result.Entry,
		Tier:        result.Tier,
		Band:        result.Band,
		Translation: result.Translation,
		Cached:      result.Cached,
	})
}

// Languages handles GET /api/languages.
func (h *WordHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{
		Languages: domain.Languages(),
		Default:   domain.DefaultLanguage,
	})
}
