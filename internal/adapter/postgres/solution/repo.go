// Package solution persists proposed solutions and their votes.
package solution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

var columns = []string{
	"id", "issue_id", "title", "description", "cost", "difficulty",
	"materials", "steps", "provided_by", "votes", "created_at",
}

type row struct {
	ID          uuid.UUID `db:"id"`
	IssueID     uuid.UUID `db:"issue_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Cost        string    `db:"cost"`
	Difficulty  string    `db:"difficulty"`
	Materials   []string  `db:"materials"`
	Steps       []string  `db:"steps"`
	ProvidedBy  uuid.UUID `db:"provided_by"`
	Votes       int       `db:"votes"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Solution {
	return domain.Solution{
		ID:          r.ID,
		IssueID:     r.IssueID,
		Title:       r.Title,
		Description: r.Description,
		Cost:        r.Cost,
		Difficulty:  domain.Difficulty(r.Difficulty),
		Materials:   r.Materials,
		Steps:       r.Steps,
		ProvidedBy:  r.ProvidedBy,
		Votes:       r.Votes,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides solution persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a solution repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts s. An unknown issue yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, s *domain.Solution) error {
	query, args, err := postgres.Builder.
		Insert("solutions").
		Columns(columns...).
		Values(s.ID, s.IssueID, s.Title, s.Description, s.Cost, string(s.Difficulty),
			nonNil(s.Materials), nonNil(s.Steps), s.ProvidedBy, s.Votes, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("solution.Create: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "issue", s.IssueID)
	}
	return nil
}

// ListByIssue returns the solutions proposed for an issue, oldest first.
func (r *Repo) ListByIssue(ctx context.Context, issueID uuid.UUID) ([]domain.Solution, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("solutions").
		Where(squirrel.Eq{"issue_id": issueID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("solution.ListByIssue: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("solution.ListByIssue: %w", err)
	}

	out := make([]domain.Solution, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// IncrementVotes adds one vote and returns the updated solution.
func (r *Repo) IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.Solution, error) {
	query, args, err := postgres.Builder.
		Update("solutions").
		Set("votes", squirrel.Expr("votes + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("solution.IncrementVotes: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "solution", id)
	}

	s := rw.toDomain()
	return &s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
