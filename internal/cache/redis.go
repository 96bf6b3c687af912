package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"pdfqa/internal/config"
)

// BuildRedisAddr constructs the host:port address for the cache store.
func BuildRedisAddr(c config.RedisConfig) (string, error) {
	if c.Host == "" || c.Port == "" {
		return "", fmt.Errorf("invalid redis config: host and port are required")
	}
	return net.JoinHostPort(c.Host, c.Port), nil
}

// Options translates the app config into go-redis client options.
// No retries: every store failure is surfaced once and handled by the
// two-tier fallback, never retried here.
func Options(c config.RedisConfig) (*redis.Options, error) {
	addr, err := BuildRedisAddr(c)
	if err != nil {
		return nil, err
	}
	return &redis.Options{
		Addr:       addr,
		Password:   c.Password,
		DB:         c.DB,
		MaxRetries: -1,
	}, nil
}

// NewRedis opens a client for the cache store and verifies connectivity.
// An unreachable store is reported to the caller but is not fatal to the
// service: documents degrade to the filesystem tier and answer caching is
// skipped, so callers may keep the returned client on ping failure.
func NewRedis(c config.RedisConfig) (*redis.Client, error) {
	opt, err := Options(c)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
