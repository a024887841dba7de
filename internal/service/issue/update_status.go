package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/ctxutil"
)

// UpdateStatus moves an issue along its lifecycle on behalf of the caller.
// The row is locked for the duration of the check so concurrent claims
// cannot both succeed.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if input.AssigneeID != nil && *input.AssigneeID != actor.ID {
		return nil, fmt.Errorf("issue %s: assignee must be the caller: %w", input.IssueID, domain.ErrForbidden)
	}

	var updated *domain.Issue
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		issue, err := s.issues.GetForUpdate(txCtx, input.IssueID)
		if err != nil {
			return err
		}

		from := issue.Status
		if err := issue.Transition(actor, input.Status, s.now()); err != nil {
			return err
		}

		if err := s.issues.UpdateStatus(txCtx, issue); err != nil {
			return err
		}
		if err := s.history.Log(txCtx, domain.NewTransitionActivity(issue, actor.ID, from)); err != nil {
			return err
		}
		updated = issue
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("issue.UpdateStatus: %w", err)
	}

	s.metrics.IssueTransitioned(updated.Status.String())
	s.log.InfoContext(ctx, "issue status changed",
		slog.String("issue_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
		slog.String("actor_id", actor.ID.String()))

	return updated, nil
}

// ClaimIssue assigns a reported issue to the calling volunteer.
func (s *Service) ClaimIssue(ctx context.Context, issueID uuid.UUID) (*domain.Issue, error) {
	return s.UpdateStatus(ctx, UpdateStatusInput{IssueID: issueID, Status: domain.StatusUnderReview})
}

func (s *Service) actor(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("issue: load actor: %w", err)
	}
	return user, nil
}
