package issue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

// GetIssue returns one issue by id.
func (s *Service) GetIssue(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	issue, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("issue.GetIssue: %w", err)
	}
	return issue, nil
}

// ListIssues returns issues matching f, most recent first.
func (s *Service) ListIssues(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	for _, st := range f.Statuses {
		if !st.IsValid() {
			return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", st))
		}
	}
	if f.Category != "" && !f.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	issues, err := s.issues.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("issue.ListIssues: %w", err)
	}
	return issues, nil
}

// GetIssuesByUser returns the issues reported by userID.
func (s *Service) GetIssuesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Issue, error) {
	return s.ListIssues(ctx, domain.IssueFilter{ReportedBy: &userID})
}

// GetAssignedIssues returns the issues assigned to volunteerID.
func (s *Service) GetAssignedIssues(ctx context.Context, volunteerID uuid.UUID) ([]domain.Issue, error) {
	return s.ListIssues(ctx, domain.IssueFilter{AssignedTo: &volunteerID})
}
