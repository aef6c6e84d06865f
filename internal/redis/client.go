// Package redis wraps the go-redis client used by the Redis sheet backend
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// defaultDialTimeout keeps a CLI invocation from hanging on a dead server
const defaultDialTimeout = 2 * time.Second

// Options configures Redis client behavior
type Options struct {
	Password    string
	DB          int
	DialTimeout time.Duration
	MaxRetries  int
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily; call Ping to fail fast.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
		MaxRetries:  opts.MaxRetries,
	}), nil
}

// Ping checks the server is reachable
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
