package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the cache with a Redis instance so several processes
// (for example a few serve instances behind a proxy) share one set of
// rendered artifacts.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis at the given address and verifies the
// connection with a ping. Transient ping failures are retried with
// backoff before the backend is declared unavailable.
func NewRedisCache(ctx context.Context, addr string) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := RetryWithBackoff(ctx, func() error {
		return backendErr(client.Ping(ctx).Err())
	}); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// backendErr tags a Redis failure with ErrBackend and marks it transient.
func backendErr(err error) error {
	if err == nil {
		return nil
	}
	return Retryable(fmt.Errorf("%w: %w", ErrBackend, err))
}

// Get retrieves a value.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, backendErr(err)
	}
	return data, true, nil
}

// Set stores a value. Redis treats a zero expiration as no expiration,
// matching the Cache contract.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return backendErr(err)
	}
	return nil
}

// Delete removes a value.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return backendErr(err)
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
