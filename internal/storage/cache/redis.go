package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanCount = 100

type RedisCache struct {
	rdb       redis.Cmdable
	ttl       time.Duration
	namespace string
}

// NewRedisCache prefixes every key with namespace so several deployments can
// share one database.
func NewRedisCache(rdb redis.Cmdable, namespace string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.cache.RedisCache.Get"

	val, err := r.rdb.Get(ctx, r.namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return []byte(val), nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.cache.RedisCache.Set"

	if err := r.rdb.Set(ctx, r.namespace+key, string(value), r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	const op = "storage.cache.RedisCache.DeletePrefix"

	var cursor uint64
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, r.namespace+prefix+"*", scanCount).Result()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if len(keys) > 0 {
			if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}
