// Package dashboard assembles the role-specific dashboards.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/ctxutil"
)

type issueRepo interface {
	List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
	Count(ctx context.Context, f domain.IssueFilter) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service builds dashboards from issue listings.
type Service struct {
	log    *slog.Logger
	issues issueRepo
	users  userRepo
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, issues issueRepo, users userRepo) *Service {
	return &Service{log: logger.With("service", "dashboard"), issues: issues, users: users}
}

// CitizenStats counts a citizen's own reports.
type CitizenStats struct {
	Reported       int
	InProgress     int
	Resolved       int
	CommunityTotal int
}

// CitizenDashboard is what a citizen sees after logging in.
type CitizenDashboard struct {
	Issues []domain.Issue
	Stats  CitizenStats
}

// VolunteerStats counts a volunteer's workload.
type VolunteerStats struct {
	Assigned   int
	InProgress int
	Resolved   int
	Available  int
}

// VolunteerDashboard is what a volunteer sees after logging in.
type VolunteerDashboard struct {
	Assigned  []domain.Issue
	Available []domain.Issue
	Stats     VolunteerStats
}

// Dashboard holds exactly one of the role variants.
type Dashboard struct {
	Role      domain.Role
	Citizen   *CitizenDashboard
	Volunteer *VolunteerDashboard
}

// Get returns the dashboard matching the caller's role.
func (s *Service) Get(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("dashboard: load user: %w", err)
	}

	switch user.Profile.(type) {
	case domain.Volunteer:
		v, err := s.Volunteer(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return &Dashboard{Role: domain.RoleVolunteer, Volunteer: v}, nil
	default:
		c, err := s.Citizen(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return &Dashboard{Role: domain.RoleCitizen, Citizen: c}, nil
	}
}

// Citizen returns the issues reported by userID with summary counts.
func (s *Service) Citizen(ctx context.Context, userID uuid.UUID) (*CitizenDashboard, error) {
	own, err := s.issues.List(ctx, domain.IssueFilter{ReportedBy: &userID})
	if err != nil {
		return nil, fmt.Errorf("dashboard.Citizen list issues: %w", err)
	}

	total, err := s.issues.Count(ctx, domain.IssueFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard.Citizen count issues: %w", err)
	}

	stats := CitizenStats{Reported: len(own), CommunityTotal: total}
	for _, i := range own {
		switch {
		case i.Status.Active():
			stats.InProgress++
		case i.Status == domain.StatusResolved:
			stats.Resolved++
		}
	}

	return &CitizenDashboard{Issues: own, Stats: stats}, nil
}

// Volunteer returns the issues assigned to userID and those open for claiming.
func (s *Service) Volunteer(ctx context.Context, userID uuid.UUID) (*VolunteerDashboard, error) {
	assigned, err := s.issues.List(ctx, domain.IssueFilter{AssignedTo: &userID})
	if err != nil {
		return nil, fmt.Errorf("dashboard.Volunteer list assigned: %w", err)
	}

	available, err := s.issues.List(ctx, domain.IssueFilter{Available: true})
	if err != nil {
		return nil, fmt.Errorf("dashboard.Volunteer list available: %w", err)
	}

	stats := VolunteerStats{Assigned: len(assigned), Available: len(available)}
	for _, i := range assigned {
		switch {
		case i.Status.Active():
			stats.InProgress++
		case i.Status == domain.StatusResolved:
			stats.Resolved++
		}
	}

	return &VolunteerDashboard{Assigned: assigned, Available: available, Stats: stats}, nil
}
