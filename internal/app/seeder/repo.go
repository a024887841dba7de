// Package seeder loads reference data into a fresh GramaConnect database:
// the starter educational content and the demo citizen account.
package seeder

import (
	"context"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

// ContentRepo is implemented by content.Repo.
type ContentRepo interface {
	// Upsert inserts unless an item with the same title and language exists.
	Upsert(ctx context.Context, c *domain.EducationalContent) (bool, error)
}

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}
