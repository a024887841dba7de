// Package content persists educational content for the education hub.
package content

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

var columns = []string{"id", "title", "category", "content", "language", "downloadable", "views", "created_at"}

const returning = "RETURNING id, title, category, content, language, downloadable, views, created_at"

type row struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Category     string    `db:"category"`
	Content      string    `db:"content"`
	Language     string    `db:"language"`
	Downloadable bool      `db:"downloadable"`
	Views        int       `db:"views"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.EducationalContent {
	return domain.EducationalContent{
		ID:           r.ID,
		Title:        r.Title,
		Category:     r.Category,
		Content:      r.Content,
		Language:     domain.Language(r.Language),
		Downloadable: r.Downloadable,
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides educational content persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a content repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns content matching f, ordered by title. Search matches title or
// body case-insensitively. Empty and "all" category or language disable that filter.
func (r *Repo) List(ctx context.Context, f domain.ContentFilter) ([]domain.EducationalContent, error) {
	b := postgres.Builder.
		Select(columns...).
		From("educational_content").
		OrderBy("title ASC", "id ASC")

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}
	if f.Category != "" && f.Category != domain.FilterAll {
		b = b.Where(squirrel.Eq{"category": f.Category})
	}
	if f.Language != "" && f.Language != domain.FilterAll {
		b = b.Where(squirrel.Eq{"language": f.Language})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("content.List: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("content.List: %w", err)
	}

	out := make([]domain.EducationalContent, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// IncrementViews records one view and returns the updated item.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (*domain.EducationalContent, error) {
	query, args, err := postgres.Builder.
		Update("educational_content").
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("content.IncrementViews: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "content", id)
	}

	c := rw.toDomain()
	return &c, nil
}

// Upsert inserts c unless an item with the same title and language exists.
// It reports whether a row was inserted.
func (r *Repo) Upsert(ctx context.Context, c *domain.EducationalContent) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("educational_content").
		Columns(columns...).
		Values(c.ID, c.Title, c.Category, c.Content, string(c.Language), c.Downloadable, c.Views, c.CreatedAt).
		Suffix("ON CONFLICT (title, language) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("content.Upsert: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "content", c.Title)
	}
	return tag.RowsAffected() == 1, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
