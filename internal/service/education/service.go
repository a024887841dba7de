// Package education serves the reference material of the education hub.
package education

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

type contentRepo interface {
	List(ctx context.Context, f domain.ContentFilter) ([]domain.EducationalContent, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (*domain.EducationalContent, error)
}

// Service implements education hub queries.
type Service struct {
	log     *slog.Logger
	content contentRepo
}

// NewService creates a new education service.
func NewService(logger *slog.Logger, content contentRepo) *Service {
	return &Service{log: logger.With("service", "education"), content: content}
}

// ListContent returns items matching the search text, category and language.
// Empty values and "all" disable a filter.
func (s *Service) ListContent(ctx context.Context, f domain.ContentFilter) ([]domain.EducationalContent, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Language = strings.ToLower(strings.TrimSpace(f.Language))

	if f.Language != "" && f.Language != domain.FilterAll && !domain.Language(f.Language).IsValid() {
		return nil, domain.NewValidationError("language", "must be hindi, english or all")
	}

	items, err := s.content.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("education.ListContent: %w", err)
	}
	return items, nil
}

// ViewContent returns one item and counts the view.
func (s *Service) ViewContent(ctx context.Context, id uuid.UUID) (*domain.EducationalContent, error) {
	item, err := s.content.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("education.ViewContent: %w", err)
	}
	s.log.DebugContext(ctx, "content viewed", slog.String("content_id", id.String()), slog.Int("views", item.Views))
	return item, nil
}
