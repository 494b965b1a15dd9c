package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type lruEntry struct {
	value     []byte
	expiresAt time.Time
}

// LRUStore is a size-bounded in-memory Store. The LRU itself expires entries
// after maxTTL; shorter per-entry TTLs are checked on read.
type LRUStore struct {
	lru *expirable.LRU[string, lruEntry]
}

// NewLRUStore keeps at most size entries (1024 when <= 0). A maxTTL <= 0
// leaves expiry entirely to the per-entry TTL.
func NewLRUStore(size int, maxTTL time.Duration) *LRUStore {
	if size <= 0 {
		size = 1024
	}
	if maxTTL < 0 {
		maxTTL = 0
	}
	return &LRUStore{
		lru: expirable.NewLRU[string, lruEntry](size, nil, maxTTL),
	}
}

func (s *LRUStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.lru.Remove(key)
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

func (s *LRUStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		s.lru.Remove(key)
		return nil
	}
	s.lru.Add(key, lruEntry{
		value:     append([]byte(nil), value...),
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// Len returns the number of cached entries.
func (s *LRUStore) Len() int {
	return s.lru.Len()
}
