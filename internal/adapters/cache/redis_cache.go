package cache

import (
	"context"
	"errors"
	"time"

	"shipment-service/internal/platform/obs"
	"shipment-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis-backed implementation of the KVCache port. Keys are namespaced so
// catalog and tracking entries can be flushed independently.
type RedisCache struct {
	Client    *redis.Client
	Namespace string
	Logger    *zap.Logger
}

func NewRedisCache(client *redis.Client, namespace string, logger *zap.Logger) *RedisCache {
	return &RedisCache{Client: client, Namespace: namespace, Logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(c.Logger, "cache.get")(&err)

	val, err := c.Client.Get(ctx, c.Namespace+":"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) (err error) {
	defer obs.Time(c.Logger, "cache.set")(&err)

	return c.Client.Set(ctx, c.Namespace+":"+key, value, ttl).Err()
}
