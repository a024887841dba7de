// Package audit implements the append-only issue activity log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

var columns = []string{"id", "issue_id", "actor_id", "action", "changes", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	IssueID   uuid.UUID `db:"issue_id"`
	ActorID   uuid.UUID `db:"actor_id"`
	Action    string    `db:"action"`
	Changes   []byte    `db:"changes"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() (domain.IssueActivity, error) {
	a := domain.IssueActivity{
		ID:        r.ID,
		IssueID:   r.IssueID,
		ActorID:   r.ActorID,
		Action:    domain.ActivityAction(r.Action),
		CreatedAt: r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &a.Changes); err != nil {
			return domain.IssueActivity{}, fmt.Errorf("issue_activity %s unmarshal changes: %w", r.ID, err)
		}
	}
	return a, nil
}

// Repo provides issue activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends a record. It joins the caller's transaction when there is one.
func (r *Repo) Log(ctx context.Context, a domain.IssueActivity) error {
	var changes []byte
	if len(a.Changes) > 0 {
		var err error
		if changes, err = json.Marshal(a.Changes); err != nil {
			return fmt.Errorf("issue_activity marshal changes: %w", err)
		}
	}

	query, args, err := postgres.Builder.
		Insert("issue_activity").
		Columns(columns...).
		Values(a.ID, a.IssueID, a.ActorID, string(a.Action), changes, a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("audit.Log: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "issue_activity", a.ID)
	}
	return nil
}

// ListByIssue returns the history of one issue, newest first, at most limit records.
func (r *Repo) ListByIssue(ctx context.Context, issueID uuid.UUID, limit int) ([]domain.IssueActivity, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("issue_activity").
		Where(squirrel.Eq{"issue_id": issueID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("audit.ListByIssue: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("audit.ListByIssue: %w", err)
	}

	out := make([]domain.IssueActivity, len(rows))
	for i, rw := range rows {
		a, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}
