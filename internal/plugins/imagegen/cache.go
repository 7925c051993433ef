package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheKeyPrefix namespaces cached responses in Redis.
const cacheKeyPrefix = "imagegen:"

// Cache stores successful upstream responses by prompt hash.
type Cache interface {
	// Get returns the cached result, or nil when there is none.
	Get(ctx context.Context, hash string) (*UpstreamResult, error)
	Set(ctx context.Context, hash string, res *UpstreamResult, ttl time.Duration) error
}

// redisCache implements Cache with JSON values in Redis.
type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache creates a Cache backed by the given client.
func NewRedisCache(rdb *redis.Client) Cache {
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, hash string) (*UpstreamResult, error) {
	data, err := c.rdb.Get(ctx, cacheKeyPrefix+hash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached image: %w", err)
	}

	var res UpstreamResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshaling cached image: %w", err)
	}
	return &res, nil
}

func (c *redisCache) Set(ctx context.Context, hash string, res *UpstreamResult, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling image for cache: %w", err)
	}
	if err := c.rdb.Set(ctx, cacheKeyPrefix+hash, data, ttl).Err(); err != nil {
		return fmt.Errorf("caching image: %w", err)
	}
	return nil
}
