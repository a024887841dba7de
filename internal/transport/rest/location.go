package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

type locationService interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (domain.Location, error)
	SearchPlace(ctx context.Context, query string) (domain.Location, error)
	FailureMessage(code string) string
}

// LocationHandler serves /api/location.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

type failureRequest struct {
	Code string `json:"code"`
}

type failureResponse struct {
	Code            string `json:"code"`
	Message         string `json:"message"`
	ManualEntryOnly bool   `json:"manualEntry"`
}

// Reverse handles GET /api/location/reverse?lat=&lng=.
func (h *LocationHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil || !finite(lat) || !finite(lng) {
		respondError(w, r, h.log, domain.NewValidationError("latlng", "lat and lng must be numbers"), "Failed to resolve address")
		return
	}

	loc, err := h.svc.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to resolve address")
		return
	}
	writeJSON(w, http.StatusOK, toLocationBody(loc))
}

// Search handles GET /api/location/search?q=.
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	loc, err := h.svc.SearchPlace(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, h.log, err, "Failed to search location")
		return
	}
	writeJSON(w, http.StatusOK, toLocationBody(loc))
}

// Failure handles POST /api/location/failure. It returns the message shown
// when the device cannot locate itself; the client then asks for a typed address.
func (h *LocationHandler) Failure(w http.ResponseWriter, r *http.Request) {
	var req failureRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Failed to read failure code")
		return
	}
	writeJSON(w, http.StatusOK, failureResponse{
		Code:            req.Code,
		Message:         h.svc.FailureMessage(req.Code),
		ManualEntryOnly: true,
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
