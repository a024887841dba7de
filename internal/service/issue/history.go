package issue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

const historyLimit = 100

// History returns the activity log of an issue, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.IssueActivity, error) {
	if _, err := s.issues.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("issue.History: %w", err)
	}

	records, err := s.history.ListByIssue(ctx, id, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("issue.History: %w", err)
	}
	return records, nil
}
