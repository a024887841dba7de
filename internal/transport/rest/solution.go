package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/solution"
)

type solutionService interface {
	AddSolution(ctx context.Context, input solution.AddSolutionInput) (*domain.Solution, error)
	ListSolutions(ctx context.Context, issueID uuid.UUID) ([]domain.Solution, error)
	VoteSolution(ctx context.Context, id uuid.UUID) (*domain.Solution, error)
}

// SolutionHandler serves issue solutions and votes.
type SolutionHandler struct {
	svc solutionService
	log *slog.Logger
}

// NewSolutionHandler creates a SolutionHandler.
func NewSolutionHandler(svc solutionService, logger *slog.Logger) *SolutionHandler {
	return &SolutionHandler{svc: svc, log: logger.With("handler", "solution")}
}

type createSolutionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cost        string   `json:"cost"`
	Difficulty  string   `json:"difficulty"`
	Materials   []string `json:"materials"`
	Steps       []string `json:"steps"`
}

// List handles GET /api/issues/{id}/solutions.
func (h *SolutionHandler) List(w http.ResponseWriter, r *http.Request) {
	issueID, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to list solutions")
		return
	}

	sols, err := h.svc.ListSolutions(r.Context(), issueID)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to list solutions")
		return
	}

	out := make([]solutionResponse, len(sols))
	for i := range sols {
		out[i] = toSolutionResponse(&sols[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/issues/{id}/solutions.
func (h *SolutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	issueID, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to add solution")
		return
	}

	var req createSolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Failed to add solution")
		return
	}

	sol, err := h.svc.AddSolution(r.Context(), solution.AddSolutionInput{
		IssueID:     issueID,
		Title:       req.Title,
		Description: req.Description,
		Cost:        req.Cost,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Materials:   req.Materials,
		Steps:       req.Steps,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Failed to add solution")
		return
	}
	writeJSON(w, http.StatusCreated, toSolutionResponse(sol))
}

// Vote handles POST /api/solutions/{id}/vote.
func (h *SolutionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to record vote")
		return
	}

	sol, err := h.svc.VoteSolution(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to record vote")
		return
	}
	writeJSON(w, http.StatusOK, toSolutionResponse(sol))
}
