package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dashkit/internal/config"
)

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (KV, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return OpenFileStore(cfg.Path)
	case "sqlite":
		return OpenSQLiteStore(cfg.Path)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.Prefix), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
