package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

type educationService interface {
	ListContent(ctx context.Context, f domain.ContentFilter) ([]domain.EducationalContent, error)
	ViewContent(ctx context.Context, id uuid.UUID) (*domain.EducationalContent, error)
}

// ContentHandler serves the education hub.
type ContentHandler struct {
	svc educationService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc educationService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

// List handles GET /api/content?search=&category=&language=.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.ListContent(r.Context(), domain.ContentFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Language: q.Get("language"),
	})
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load content")
		return
	}

	out := make([]contentResponse, len(items))
	for i := range items {
		out[i] = toContentResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// View handles GET /api/content/{id} and counts the view.
func (h *ContentHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load content")
		return
	}

	item, err := h.svc.ViewContent(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load content")
		return
	}
	writeJSON(w, http.StatusOK, toContentResponse(item))
}
