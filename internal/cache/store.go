package cache

import (
	"context"
	"time"
)

// Store is the key/value backend behind the record cache.
// Implemented by the in-memory store, the LRU store and Redis.
// A ttl <= 0 means the value must not be kept.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
