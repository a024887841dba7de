package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/issue"
	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

type issueService interface {
	AddIssue(ctx context.Context, input issue.AddIssueInput) (*issue.AddIssueResult, error)
	GetIssue(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	ListIssues(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
	UpdateStatus(ctx context.Context, input issue.UpdateStatusInput) (*domain.Issue, error)
	ClaimIssue(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.IssueActivity, error)
}

// IssueHandler serves /api/issues.
type IssueHandler struct {
	svc issueService
	log *slog.Logger
}

// NewIssueHandler creates an IssueHandler.
func NewIssueHandler(svc issueService, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issue")}
}

type photoRequest struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

type createIssueRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Priority    string         `json:"priority"`
	Location    locationBody   `json:"location"`
	Photos      []photoRequest `json:"photos"`
}

type createIssueResponse struct {
	issueResponse
	RejectedPhotos []photo.Rejection `json:"rejectedPhotos"`
}

type updateStatusRequest struct {
	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

// List handles GET /api/issues. Query filters: status (comma separated),
// category, reportedBy, assignedTo, available=true.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseIssueFilter(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to list issues")
		return
	}

	issues, err := h.svc.ListIssues(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to list issues")
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponses(r.Context(), issues))
}

func parseIssueFilter(r *http.Request) (domain.IssueFilter, error) {
	q := r.URL.Query()
	var f domain.IssueFilter

	if s := q.Get("status"); s != "" && s != domain.FilterAll {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Statuses = append(f.Statuses, domain.IssueStatus(part))
			}
		}
	}
	if c := q.Get("category"); c != "" && c != domain.FilterAll {
		f.Category = domain.IssueCategory(c)
	}
	for _, p := range []struct {
		key string
		dst **uuid.UUID
	}{{"reportedBy", &f.ReportedBy}, {"assignedTo", &f.AssignedTo}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return f, domain.NewValidationError(p.key, "invalid id")
		}
		*p.dst = &id
	}
	f.Available = q.Get("available") == "true"
	return f, nil
}

// Create handles POST /api/issues.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Failed to report issue")
		return
	}

	uploads := make([]issue.PhotoUpload, len(req.Photos))
	for i, p := range req.Photos {
		uploads[i] = issue.PhotoUpload{Name: p.Name, DataURL: p.DataURL}
	}

	res, err := h.svc.AddIssue(r.Context(), issue.AddIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.IssueCategory(req.Category),
		Priority:    domain.Priority(req.Priority),
		Location:    domain.Location{Lat: req.Location.Lat, Lng: req.Location.Lng, Address: req.Location.Address},
		Photos:      uploads,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Failed to report issue")
		return
	}

	rejected := res.Rejected
	if rejected == nil {
		rejected = []photo.Rejection{}
	}
	writeJSON(w, http.StatusCreated, createIssueResponse{
		issueResponse:  toIssueResponse(r.Context(), res.Issue),
		RejectedPhotos: rejected,
	})
}

// Get handles GET /api/issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load issue")
		return
	}

	is, err := h.svc.GetIssue(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load issue")
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(r.Context(), is))
}

// Claim handles POST /api/issues/{id}/claim.
func (h *IssueHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to claim issue")
		return
	}

	is, err := h.svc.ClaimIssue(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to claim issue")
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(r.Context(), is))
}

// UpdateStatus handles PATCH /api/issues/{id}/status.
func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to update issue")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Failed to update issue")
		return
	}

	input := issue.UpdateStatusInput{IssueID: id, Status: domain.IssueStatus(req.Status)}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("assignedTo", "invalid id"), "Failed to update issue")
			return
		}
		input.AssigneeID = &assignee
	}

	is, err := h.svc.UpdateStatus(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to update issue")
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(r.Context(), is))
}

// History handles GET /api/issues/{id}/history.
func (h *IssueHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load issue history")
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load issue history")
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponses(r.Context(), records))
}
