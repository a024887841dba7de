// Package solution manages proposed remedies for issues and their votes.
package solution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/ctxutil"
)

type solutionRepo interface {
	Create(ctx context.Context, s *domain.Solution) error
	ListByIssue(ctx context.Context, issueID uuid.UUID) ([]domain.Solution, error)
	IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.Solution, error)
}

type issueRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
}

// Service implements solution operations.
type Service struct {
	log       *slog.Logger
	solutions solutionRepo
	issues    issueRepo
	now       func() time.Time
}

// NewService creates a new solution service.
func NewService(logger *slog.Logger, solutions solutionRepo, issues issueRepo) *Service {
	return &Service{
		log:       logger.With("service", "solution"),
		solutions: solutions,
		issues:    issues,
		now:       time.Now,
	}
}

// AddSolutionInput holds the fields of a proposed solution.
type AddSolutionInput struct {
	IssueID     uuid.UUID
	Title       string
	Description string
	Cost        string
	Difficulty  domain.Difficulty
	Materials   []string
	Steps       []string
}

func (i *AddSolutionInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Cost = strings.TrimSpace(i.Cost)
	i.Materials = compact(i.Materials)
	i.Steps = compact(i.Steps)
	if i.Difficulty == "" {
		i.Difficulty = domain.DifficultyMedium
	}
}

// Validate checks required fields.
func (i AddSolutionInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium or hard"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// compact trims entries and drops blanks, keeping order.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AddSolution proposes a solution for an existing issue. Votes start at zero.
func (s *Service) AddSolution(ctx context.Context, input AddSolutionInput) (*domain.Solution, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.issues.GetByID(ctx, input.IssueID); err != nil {
		return nil, fmt.Errorf("solution.AddSolution: %w", err)
	}

	sol := &domain.Solution{
		ID:          uuid.New(),
		IssueID:     input.IssueID,
		Title:       input.Title,
		Description: input.Description,
		Cost:        input.Cost,
		Difficulty:  input.Difficulty,
		Materials:   input.Materials,
		Steps:       input.Steps,
		ProvidedBy:  userID,
		CreatedAt:   s.now(),
	}
	if err := s.solutions.Create(ctx, sol); err != nil {
		return nil, fmt.Errorf("solution.AddSolution: %w", err)
	}

	s.log.InfoContext(ctx, "solution added",
		slog.String("solution_id", sol.ID.String()),
		slog.String("issue_id", sol.IssueID.String()))

	return sol, nil
}

// ListSolutions returns the solutions for an issue, oldest first.
func (s *Service) ListSolutions(ctx context.Context, issueID uuid.UUID) ([]domain.Solution, error) {
	if _, err := s.issues.GetByID(ctx, issueID); err != nil {
		return nil, fmt.Errorf("solution.ListSolutions: %w", err)
	}
	out, err := s.solutions.ListByIssue(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("solution.ListSolutions: %w", err)
	}
	return out, nil
}

// VoteSolution adds one vote.
func (s *Service) VoteSolution(ctx context.Context, id uuid.UUID) (*domain.Solution, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	sol, err := s.solutions.IncrementVotes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("solution.VoteSolution: %w", err)
	}
	return sol, nil
}
