package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const recordKeyPrefix = "chezleonie:"

// RedisAdapter persists keyed records as plain string payloads in Redis.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, recordKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, recordKeyPrefix+key, value, 0).Err()
}
