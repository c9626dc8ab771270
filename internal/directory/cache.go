package directory

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"evaluation_service/pkg/logger"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

// RedisClient is the part of *redis.Client the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisCache struct {
	rdb RedisClient
}

func NewRedisCache(rdb RedisClient) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get treats every redis error as a miss. Errors other than redis.Nil are
// logged so an unreachable cache is visible while the directory keeps
// answering from the source.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		logger.FromContext(ctx).Warn(ctx, "directory cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn(ctx, "directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}
