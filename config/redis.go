package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for addr, or nil when addr is empty or the
// server does not answer a ping. Callers fall back to the database throttle.
func ConnectRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		log.Warn("REDIS_ADDR not set, using database submission throttle")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Error("could not connect to redis")
		_ = client.Close()
		return nil
	}

	log.Info("connected to redis")
	return client
}
