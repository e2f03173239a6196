package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// NewRedisClient connects the shared Redis client used for the member list
// cache and the rate limiter. The server runs fine without Redis; callers
// treat a connection error as "run uncached".
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:         net.JoinHostPort(host, port),
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis at %s not reachable: %w", opts.Addr, err)
	}

	return rdb, nil
}
