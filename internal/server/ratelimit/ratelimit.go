// Package ratelimit provides a fixed-window request limiter backed by Redis.
// Without a configured Redis the limiter fails open, so the server keeps
// serving when the cache is absent or down.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts requests per key in fixed windows.
type Limiter struct {
	client *redis.Client
}

// New connects to the Redis at redisURL. An empty URL yields a disabled
// limiter that allows everything.
func New(redisURL string) (*Limiter, error) {
	if redisURL == "" {
		return &Limiter{}, nil
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Limiter{client: redis.NewClient(opt)}, nil
}

// Enabled reports whether a Redis backend is configured.
func (l *Limiter) Enabled() bool { return l.client != nil }

// Allow increments the window counter for key and reports whether the count
// is still within limit. Redis errors fail open.
func (l *Limiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	if l.client == nil {
		return true, 0, nil
	}
	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// Close releases the Redis connection if one was configured.
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}
