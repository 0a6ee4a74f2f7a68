// Package cache wires the optional Redis client used to cache statistics
// summaries. Redis is opt-in: when REDIS_URL is unset the service runs
// without it.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client from a URL. Returns nil when the
// URL is empty (Redis not configured). Connectivity is verified with a
// ping so a misconfigured URL fails at startup, not mid-request.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
