// Package dataloader batches the user lookups made while rendering issue
// responses into a single query per request.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders holds the per-request loaders.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.UserSummary]
}

// NewLoaders creates loaders backed by users. Call once per request; the
// loaders cache results for their lifetime.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUserBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.UserSummary](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.UserSummary](maxBatch),
		),
	}
}

// newUserBatchFn resolves summaries in key order. Unknown ids resolve to nil.
func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserSummary] {
		results := make([]*dataloader.Result[*domain.UserSummary], len(keys))

		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.UserSummary]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.UserSummary, len(users))
		for i := range users {
			s := users[i].Summary()
			byID[s.ID] = &s
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.UserSummary]{Data: byID[k]}
		}
		return results
	}
}

type contextKey struct{}

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the loaders stored by Middleware, if any.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(contextKey{}).(*Loaders)
	return l, ok && l != nil
}
