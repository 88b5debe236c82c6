package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/reader"
	"github.com/heartmarshall/clicktionary-backend/internal/tokenize"
)

type readerService interface {
	Analyze(ctx context.Context, input reader.AnalyzeInput) (*reader.AnalyzeResult, error)
	ImportURL(ctx context.Context, input reader.ImportInput) (*reader.ImportResult, error)
	TranslateText(ctx context.Context, input reader.TranslateInput) (*reader.TranslateResult, error)
}

// ReaderHandler serves text analysis, article import and translation.
type ReaderHandler struct {
	svc readerService
	log *slog.Logger
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(svc readerService, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{svc: svc, log: logger.With("handler", "reader")}
}

type analyzeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type importRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"`
}

type articleResponse struct {
	Article   article.Article  `json:"article"`
	Truncated bool             `json:"truncated"`
	Segments  []domain.Segment `json:"segments"`
	Summary   tokenize.Summary `json:"summary"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Source     string           `json:"source"`
	Target     string           `json:"target"`
	Text       string           `json:"text"`
	Translated bool             `json:"translated"`
	Segments   []domain.Segment `json:"segments"`
	Summary    tokenize.Summary `json:"summary"`
}

// Analyze handles POST /api/analyze.
func (h *ReaderHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Analyze(r.Context(), reader.AnalyzeInput{Text: req.Text, Language: req.Language})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Import handles POST /api/import.
func (h *ReaderHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ImportURL(r.Context(), reader.ImportInput{URL: req.URL, Language: req.Language})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleResponse{
		Article:   result.Article,
		Truncated: result.Truncated,
		Segments:  result.Analysis.Segments,
		Summary:   result.Analysis.Summary,
	})
}

// Translate handles POST /api/translate.
func (h *ReaderHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.TranslateText(r.Context(), reader.TranslateInput{
		Text:   req.Text,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Source:     result.Source,
		Target:     result.Target,
		Text:       result.Text,
		Translated: result.Translated,
		Segments:   result.Analysis.Segments,
		Summary:    result.Analysis.Summary,
	})
}
