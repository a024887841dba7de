package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportLimiter caps how many issues a user may report per window.
// Counters live under "<prefix>:<userID>" and expire one window after the first report.
// A limit of zero or less disables the quota.
type ReportLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewReportLimiter creates a limiter allowing limit reports per window.
func NewReportLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *ReportLimiter {
	return &ReportLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow counts one report for userID. When the limit is exceeded it returns
// false and the time until the window resets.
func (l *ReportLimiter) Allow(ctx context.Context, userID string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}
	key := l.key(userID)

	// SETNX and INCR share one MULTI: the counter always carries a TTL.
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, l.window)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("report limiter: incr: %w", err)
	}

	if incr.Val() > int64(l.limit) {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}

// Release gives back a slot taken by Allow for a report that was not saved.
func (l *ReportLimiter) Release(ctx context.Context, userID string) error {
	if l.limit <= 0 {
		return nil
	}
	key := l.key(userID)

	n, err := l.client.Decr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("report limiter: decr: %w", err)
	}
	// The window ran out between Allow and Release.
	if n < 0 {
		if err := l.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("report limiter: del: %w", err)
		}
	}
	return nil
}

func (l *ReportLimiter) key(userID string) string {
	return l.prefix + ":" + userID
}
