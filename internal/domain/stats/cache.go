package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	statsCacheKey = "moskito:statistics"
	statsCacheTTL = 30 * time.Second
)

// RedisCache caches the statistics summary in Redis with a short TTL so
// dashboard polling does not hammer the grouped queries. Any Redis error
// behaves like a miss.
type RedisCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewRedisCache(client *redis.Client, logger zerolog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context) (*Statistics, bool) {
	raw, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("statistics cache read failed")
		}
		return nil, false
	}
	var s Statistics
	if err := json.Unmarshal(raw, &s); err != nil {
		c.logger.Warn().Err(err).Msg("statistics cache payload corrupt")
		return nil, false
	}
	return &s, true
}

func (c *RedisCache) Set(ctx context.Context, s *Statistics) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("statistics cache write failed")
	}
}
