package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// GeoCache stores geocoding responses keyed by query.
type GeoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGeoCache creates a cache whose entries expire after ttl.
func NewGeoCache(client *redis.Client, ttl time.Duration) *GeoCache {
	return &GeoCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key. ok is false on a miss.
func (c *GeoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, "geocode:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("geocache: get: %w", err)
	}
	return b, true, nil
}

// Set stores payload under key.
func (c *GeoCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, "geocode:"+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("geocache: set: %w", err)
	}
	return nil
}
