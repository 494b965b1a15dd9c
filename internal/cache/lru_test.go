package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		s := NewLRUStore(2, time.Hour)

		require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))

		val, ok, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("1"), val)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		s := NewLRUStore(2, time.Hour)

		require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, s.Set(ctx, "b", []byte("2"), time.Minute))
		_, _, _ = s.Get(ctx, "a")
		require.NoError(t, s.Set(ctx, "c", []byte("3"), time.Minute))

		_, ok, _ := s.Get(ctx, "b")
		assert.False(t, ok)
		_, ok, _ = s.Get(ctx, "a")
		assert.True(t, ok)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("per entry ttl", func(t *testing.T) {
		s := NewLRUStore(4, time.Hour)

		require.NoError(t, s.Set(ctx, "short", []byte("x"), 10*time.Millisecond))
		time.Sleep(20 * time.Millisecond)

		_, ok, err := s.Get(ctx, "short")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-positive ttl removes", func(t *testing.T) {
		s := NewLRUStore(4, 0)

		require.NoError(t, s.Set(ctx, "k", []byte("x"), time.Minute))
		require.NoError(t, s.Set(ctx, "k", []byte("y"), -time.Second))

		_, ok, _ := s.Get(ctx, "k")
		assert.False(t, ok)
	})
}

func TestNewStoreBackends(t *testing.T) {
	mem := NewStore(Config{Backend: BackendMemory}, nil)
	defer mem.(*MemoryStore).Close()
	assert.IsType(t, &MemoryStore{}, mem)

	assert.IsType(t, &LRUStore{}, NewStore(Config{Backend: BackendLRU, LRUSize: 8}, nil))

	// redis without a client falls back to memory
	fallback := NewStore(Config{Backend: BackendRedis}, nil)
	defer fallback.(*MemoryStore).Close()
	assert.IsType(t, &MemoryStore{}, fallback)
}
