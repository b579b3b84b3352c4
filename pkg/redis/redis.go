package redis

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/kvellan/gamestore/pkg/config"
)

// New builds a Redis client for the session cart store. The address may be a
// plain "host:port" or a redis:// URL.
func New(cfg config.Redis) *goredis.Client {
	opts, err := goredis.ParseURL(cfg.Addr)
	if err != nil {
		opts = &goredis.Options{
			Addr:         cfg.Addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			PoolSize:     10,
			PoolTimeout:  4 * time.Second,
		}
	}
	return goredis.NewClient(opts)
}

// Ping reports whether the Redis backend is reachable.
func Ping(ctx context.Context, client *goredis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Ping(pingCtx).Err()
}
