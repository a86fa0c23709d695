// internal/common/cache/cache.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talenthub-dashboard/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// Cache is the injectable query-cache service. Keys are built from
// array-of-primitives parts via Key so a query is invalidated whenever any
// part of its identity (owner email, id set, window) changes.
type Cache interface {
	// Get returns the cached value and whether it was present. A missing
	// key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	// InvalidatePrefix removes every key sharing a prefix; used after
	// mutations, where the exact set of affected query keys is unknown.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Key builds a cache key from primitive parts. Parts are joined with ":"
// after trimming; id slices should be pre-joined so the key tracks the set.
func Key(parts ...interface{}) string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		segs = append(segs, strings.TrimSpace(fmt.Sprint(p)))
	}
	return strings.Join(segs, ":")
}

// RedisCache wraps the Redis client behind the Cache interface.
type RedisCache struct {
	Client *redis.Client
}

// NewRedis creates a Redis-backed query cache.
func NewRedis(cfg config.RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisCache{Client: rdb}
}

// NewRedisWithClient wraps an existing client, mainly for tests.
func NewRedisWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}

func (c *RedisCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.Client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Invalidate(ctx, keys...)
}

// Noop is a disabled cache; every read misses and writes are dropped. Used
// when cache.disabled is set.
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (Noop) Invalidate(context.Context, ...string) error { return nil }

func (Noop) InvalidatePrefix(context.Context, string) error { return nil }
