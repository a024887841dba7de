// Package issue persists reported issues in PostgreSQL.
package issue

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

var columns = []string{
	"id", "title", "description", "category", "status", "priority",
	"reported_by", "assigned_to", "latitude", "longitude", "address", "photos",
	"created_at", "updated_at", "resolved_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	ReportedBy  uuid.UUID  `db:"reported_by"`
	AssignedTo  *uuid.UUID `db:"assigned_to"`
	Latitude    float64    `db:"latitude"`
	Longitude   float64    `db:"longitude"`
	Address     string     `db:"address"`
	Photos      []string   `db:"photos"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
}

func (r row) toDomain() domain.Issue {
	return domain.Issue{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.IssueCategory(r.Category),
		Status:      domain.IssueStatus(r.Status),
		Priority:    domain.Priority(r.Priority),
		ReportedBy:  r.ReportedBy,
		AssignedTo:  r.AssignedTo,
		Location:    domain.Location{Lat: r.Latitude, Lng: r.Longitude, Address: r.Address},
		Photos:      r.Photos,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates an issue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new issue.
func (r *Repo) Create(ctx context.Context, i *domain.Issue) error {
	photos := i.Photos
	if photos == nil {
		photos = []string{}
	}

	query, args, err := postgres.Builder.
		Insert("issues").
		Columns(columns...).
		Values(i.ID, i.Title, i.Description, string(i.Category), string(i.Status), string(i.Priority),
			i.ReportedBy, i.AssignedTo, i.Location.Lat, i.Location.Lng, i.Location.Address, photos,
			i.CreatedAt, i.UpdatedAt, i.ResolvedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("issue.Create: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "issue", i.ID)
	}
	return nil
}

// GetByID returns an issue by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns an issue and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Issue, error) {
	b := postgres.Builder.
		Select(columns...).
		From("issues").
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("issue.GetByID: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "issue", id)
	}

	i := rw.toDomain()
	return &i, nil
}

// UpdateStatus persists the lifecycle fields of i: status, assignee and timestamps.
func (r *Repo) UpdateStatus(ctx context.Context, i *domain.Issue) error {
	query, args, err := postgres.Builder.
		Update("issues").
		Set("status", string(i.Status)).
		Set("assigned_to", i.AssignedTo).
		Set("updated_at", i.UpdatedAt).
		Set("resolved_at", i.ResolvedAt).
		Where(squirrel.Eq{"id": i.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("issue.UpdateStatus: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "issue", i.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("issue %s: %w", i.ID, domain.ErrNotFound)
	}
	return nil
}

// CloseResolvedBefore closes every issue resolved before threshold and
// returns how many were closed. resolved_at is left untouched.
func (r *Repo) CloseResolvedBefore(ctx context.Context, threshold, now time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Update("issues").
		Set("status", string(domain.StatusClosed)).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": string(domain.StatusResolved)}).
		Where(squirrel.Lt{"resolved_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("issue.CloseResolvedBefore: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("issue.CloseResolvedBefore: %w", err)
	}
	return tag.RowsAffected(), nil
}

// List returns issues matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	b := postgres.Builder.
		Select(columns...).
		From("issues").
		OrderBy("created_at DESC", "id DESC")
	b = applyFilter(b, f)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("issue.List: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("issue.List: %w", err)
	}

	issues := make([]domain.Issue, 0, len(rows))
	for _, rw := range rows {
		issues = append(issues, rw.toDomain())
	}
	return issues, nil
}

// Count returns the number of issues matching f.
func (r *Repo) Count(ctx context.Context, f domain.IssueFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From("issues"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("issue.Count: build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("issue.Count: %w", err)
	}
	return n, nil
}

func applyFilter(b squirrel.SelectBuilder, f domain.IssueFilter) squirrel.SelectBuilder {
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(squirrel.Eq{"status": statuses})
	}
	if f.Category != "" {
		b = b.Where(squirrel.Eq{"category": string(f.Category)})
	}
	if f.ReportedBy != nil {
		b = b.Where(squirrel.Eq{"reported_by": *f.ReportedBy})
	}
	if f.AssignedTo != nil {
		b = b.Where(squirrel.Eq{"assigned_to": *f.AssignedTo})
	}
	if f.Available {
		b = b.Where(squirrel.Eq{"status": string(domain.StatusReported), "assigned_to": nil})
	}
	return b
}
