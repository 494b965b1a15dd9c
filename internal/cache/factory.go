package cache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	BackendMemory = "memory"
	BackendLRU    = "lru"
	BackendRedis  = "redis"
)

type Config struct {
	Backend string // "memory" (default), "lru" or "redis"

	// memory
	CleanupInterval time.Duration

	// lru
	LRUSize int
	MaxTTL  time.Duration

	// redis
	Namespace string
}

// NewStore builds the configured backend. redisClient is only used by the
// redis backend; when it is nil the memory backend is used instead.
func NewStore(cfg Config, redisClient redis.UniversalClient) Store {
	switch cfg.Backend {
	case BackendRedis:
		if redisClient != nil {
			return NewRedisStore(redisClient, RedisConfig{
				Namespace: cfg.Namespace,
			})
		}
	case BackendLRU:
		return NewLRUStore(cfg.LRUSize, cfg.MaxTTL)
	}
	return NewMemoryStore(cfg.CleanupInterval)
}
