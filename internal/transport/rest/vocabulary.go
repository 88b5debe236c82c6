package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	UpdateNote(ctx context.Context, input vocabulary.UpdateNoteInput) (*domain.VocabularyEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
	Export(ctx context.Context) ([]domain.VocabularyEntry, error)
	Import(ctx context.Context, input vocabulary.ImportInput) (*vocabulary.ImportResult, error)
}

// VocabularyHandler serves the reader's saved words. All routes require an
// authenticated user.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

// savedWordRequest is the exported entry shape: the word entry fields plus
// the personal note and, on import, the original save time.
type savedWordRequest struct {
	domain.WordEntry
	Notes     string    `json:"notes"`
	DateAdded time.Time `json:"dateAdded"`
}

type updateNoteRequest struct {
	Notes string `json:"notes"`
}

type listResponse struct {
	Entries []domain.VocabularyEntry `json:"entries"`
	Total   int                      `json:"total"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
}

type vocabularyImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

// List handles GET /api/vocabulary.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := intParam(q.Get("offset"), "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), vocabulary.ListInput{
		Search:       q.Get("search"),
		PartOfSpeech: q.Get("partOfSpeech"),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Entries: result.Entries,
		Total:   result.Total,
		Limit:   result.Limit,
		Offset:  result.Offset,
	})
}

// Create handles POST /api/vocabulary.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req savedWordRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Save(r.Context(), vocabulary.SaveInput{Entry: req.WordEntry, Note: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Get handles GET /api/vocabulary/{id}.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// UpdateNote handles PATCH /api/vocabulary/{id}.
func (h *VocabularyHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.UpdateNote(r.Context(), vocabulary.UpdateNoteInput{ID: id, Note: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/vocabulary/export as a downloadable JSON array.
func (h *VocabularyHandler) Export(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="vocabulary.json"`)
	writeJSON(w, http.StatusOK, entries)
}

// Import handles POST /api/vocabulary/import with a previously exported array.
func (h *VocabularyHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req []savedWordRequest
	if err := decodeJSON(w, r, maxImportBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]vocabulary.ImportItem, len(req))
	for i, item := range req {
		items[i] = vocabulary.ImportItem{Entry: item.WordEntry, Note: item.Notes, SavedAt: item.DateAdded}
	}

	result, err := h.svc.Import(r.Context(), vocabulary.ImportInput{Items: items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, vocabularyImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func intParam(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}
