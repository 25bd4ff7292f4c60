package session

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewStore builds the store selected by cfg.Store. The Redis client is only
// required for the "redis" backend.
func NewStore(cfg Config, client redis.UniversalClient) (Store, error) {
	switch cfg.Store {
	case "", "memory":
		return NewMemoryStore(cfg.CleanupInterval), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("%w: redis store needs a client", ErrUnknownStore)
		}
		return NewRedisStore(client, cfg.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
