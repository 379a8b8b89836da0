package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleKeyPrefix = "taxsim:submit:"

// RedisThrottle keeps one expiring key per fingerprint; the first caller in a
// window creates it and later callers are refused until it expires.
type RedisThrottle struct {
	client *redis.Client
}

func NewRedisThrottle(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{client: client}
}

func (r *RedisThrottle) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	return r.client.SetNX(ctx, throttleKeyPrefix+key, time.Now().UTC().Format(time.RFC3339), window).Result()
}

func (r *RedisThrottle) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, throttleKeyPrefix+key).Err()
}
