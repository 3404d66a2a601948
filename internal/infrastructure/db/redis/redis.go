package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// clientName shows up in CLIENT LIST on the server, which makes the
// storefront's cache connections easy to spot next to other tenants.
const clientName = "storefront-api"

const defaultTimeout = 5 * time.Second

// Config captures the settings for the storefront's cache connection.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds dialing and the verification ping. Sourced from
	// REDIS_TIMEOUT; defaults to 5s when unset.
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		ClientName:  clientName,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
