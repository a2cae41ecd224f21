package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts requests per key in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<key>
// The window key expires on its own, so there is nothing to clean up.
type FixedWindowLimiter struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window
// under the given scope.
func NewFixedWindowLimiter(client *redis.Client, scope string, limit int64, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, scope: scope, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the request is
// within the limit. The INCR and EXPIRE run in one pipeline round trip.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:%s", l.scope, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
