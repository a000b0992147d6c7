// Package cache connects the portal to Redis.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"skylink/internal/shared/config"
	"skylink/internal/shared/logger"
)

// NewRedisClient creates a client for cfg and pings it once.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.GetAddr(), "db", cfg.DB)

	return client, nil
}
