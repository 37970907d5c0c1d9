package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "portfolio:list:"

type RedisListCache struct {
	rdb        *redis.Client
	dataExpiry time.Duration
}

func NewRedisListCache(rdb *redis.Client, dataExpiry time.Duration) *RedisListCache {
	return &RedisListCache{
		rdb:        rdb,
		dataExpiry: dataExpiry,
	}
}

func (c *RedisListCache) Get(ctx context.Context, collection string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, keyPrefix+collection).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *RedisListCache) Set(ctx context.Context, collection string, payload []byte) error {
	return c.rdb.Set(ctx, keyPrefix+collection, payload, c.dataExpiry).Err()
}

func (c *RedisListCache) Invalidate(ctx context.Context, collection string) error {
	return c.rdb.Del(ctx, keyPrefix+collection).Err()
}
