// Package cache manages the Redis connection used for rate limiting.
package cache

import (
	"context"
	"time"

	"devconnect/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis at the given address. It returns nil when
// Redis is unreachable; callers treat a nil client as "no limiter" and
// fail open.
func NewClient(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unavailable, continuing without rate limiting", "error", err.Error())
		return nil
	}

	middleware.Logger.Info("Redis connected")
	return client
}
