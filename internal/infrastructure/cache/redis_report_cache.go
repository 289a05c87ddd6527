package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopledger/backend/internal/domain/report"
)

const defaultReportPrefix = "shopledger:report:"

// RedisReportCache stores report payloads in Redis. Entries are namespaced by
// a generation counter; InvalidateAll bumps the counter so stale entries
// become unreachable and age out on their own TTL without a key scan.
type RedisReportCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisReportCache wraps an existing client. An empty prefix uses the default.
func NewRedisReportCache(client redis.UniversalClient, keyPrefix string) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = defaultReportPrefix
	}
	return &RedisReportCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisReportCache) generationKey() string {
	return c.keyPrefix + "generation"
}

func (c *RedisReportCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisReportCache) entryKey(gen int64, key string) string {
	return fmt.Sprintf("%s%d:%s", c.keyPrefix, gen, key)
}

// Get returns the payload for key in the current generation
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, false, err
	}
	value, err := c.client.Get(ctx, c.entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read report cache: %w", err)
	}
	return value, true, nil
}

// Set stores value under key in the current generation
func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.entryKey(gen, key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// InvalidateAll advances the generation
func (c *RedisReportCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.generationKey()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

var _ report.Cache = (*RedisReportCache)(nil)
