package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gramaconnect/gramaconnect-backend/internal/service/dashboard"
)

type dashboardService interface {
	Get(ctx context.Context) (*dashboard.Dashboard, error)
}

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type citizenDashboardResponse struct {
	Role   string          `json:"role"`
	Issues []issueResponse `json:"issues"`
	Stats  struct {
		Reported       int `json:"reported"`
		InProgress     int `json:"inProgress"`
		Resolved       int `json:"resolved"`
		CommunityTotal int `json:"communityTotal"`
	} `json:"stats"`
}

type volunteerDashboardResponse struct {
	Role      string          `json:"role"`
	Assigned  []issueResponse `json:"assigned"`
	Available []issueResponse `json:"available"`
	Stats     struct {
		Assigned   int `json:"assigned"`
		InProgress int `json:"inProgress"`
		Resolved   int `json:"resolved"`
		Available  int `json:"available"`
	} `json:"stats"`
}

// Get renders the dashboard for the caller's role.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load dashboard")
		return
	}

	if v := d.Volunteer; v != nil {
		var resp volunteerDashboardResponse
		resp.Role = d.Role.String()
		resp.Assigned = toIssueResponses(r.Context(), v.Assigned)
		resp.Available = toIssueResponses(r.Context(), v.Available)
		resp.Stats.Assigned = v.Stats.Assigned
		resp.Stats.InProgress = v.Stats.InProgress
		resp.Stats.Resolved = v.Stats.Resolved
		resp.Stats.Available = v.Stats.Available
		writeJSON(w, http.StatusOK, resp)
		return
	}

	c := d.Citizen
	var resp citizenDashboardResponse
	resp.Role = d.Role.String()
	resp.Issues = toIssueResponses(r.Context(), c.Issues)
	resp.Stats.Reported = c.Stats.Reported
	resp.Stats.InProgress = c.Stats.InProgress
	resp.Stats.Resolved = c.Stats.Resolved
	resp.Stats.CommunityTotal = c.Stats.CommunityTotal
	writeJSON(w, http.StatusOK, resp)
}
