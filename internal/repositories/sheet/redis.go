package sheet

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// updatedAtSuffix names the companion key holding the last save time
const updatedAtSuffix = ":updated_at"

type redisStore struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis sheet repository.
type RedisConfig struct {
	Client redisclient.Client
	// Key defaults to DefaultKey
	Key   string
	Clock clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newBlobRepository(&redisStore{client: cfg.Client}, cfg.Key, cfg.Clock), nil
}

func (s *redisStore) name() string { return "redis" }

func (s *redisStore) read(ctx context.Context, key string) (*blob, error) {
	values, err := s.client.MGet(ctx, key, key+updatedAtSuffix).Result()
	if err != nil {
		return nil, err
	}

	value, ok := values[0].(string)
	if !ok {
		return nil, nil
	}

	out := &blob{value: []byte(value)}
	if stamp, ok := values[1].(string); ok {
		// a bad timestamp only loses the save time
		if at, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
			out.updatedAt = at
		}
	}
	return out, nil
}

func (s *redisStore) write(ctx context.Context, key string, value []byte, at time.Time) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, value, 0)
	pipe.Set(ctx, key+updatedAtSuffix, at.UTC().Format(time.RFC3339Nano), 0)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisStore) remove(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Del(ctx, key, key+updatedAtSuffix).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
