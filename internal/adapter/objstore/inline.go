package objstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// Inline keeps photos as data URLs on the issue row. Used when object
// storage is disabled.
type Inline struct{}

// StorePhoto returns p encoded as a data URL.
func (Inline) StorePhoto(_ context.Context, _ uuid.UUID, _ int, p photo.Photo) (string, error) {
	return photo.EncodeDataURL(p), nil
}

// DeletePhotos is a no-op; inline photos live and die with the issue row.
func (Inline) DeletePhotos(context.Context, uuid.UUID) error { return nil }
