package redisclients

import (
	"context"
	"time"

	"usage-analytics/internal/shared/configs"

	"github.com/redis/go-redis/v9"
)

// Client is a type alias for redis.Client.
type Client = redis.Client

// New creates a Redis client from config and verifies connectivity with a ping.
func New(cfg configs.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		Password:     cfg.Password,
		PoolSize:     50,
		MinIdleConns: 10,
		MaxRetries:   3,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
