package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type CacheRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (c *CacheRepository) key(key string) string {
	return c.prefix + ":" + key
}

// Get returns nil on a miss
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, err
}

func (c *CacheRepository) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.key(key), value, c.ttl).Err()
}

func (c *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, c.key(key))
	}
	return c.client.Del(ctx, prefixed...).Err()
}

func NewCacheRepository(client *redis.Client, prefix string, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}
