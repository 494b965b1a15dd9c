package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"realuseragent/internal/catalog"
)

// RecordCache stores catalog records as JSON in a Store.
type RecordCache struct {
	store Store
}

func NewRecordCache(store Store) *RecordCache {
	return &RecordCache{store: store}
}

// Get returns the records cached under key. An undecodable value is
// reported as an error and should be treated as a miss.
func (c *RecordCache) Get(ctx context.Context, key string) ([]catalog.Record, bool, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	var records []catalog.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("cache: decode records for %s: %w", key, err)
	}
	if records == nil {
		records = []catalog.Record{}
	}

	return records, true, nil
}

// Set replaces the entry under key with records in a single write.
func (c *RecordCache) Set(ctx context.Context, key string, records []catalog.Record, ttl time.Duration) error {
	if records == nil {
		records = []catalog.Record{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cache: encode records for %s: %w", key, err)
	}

	return c.store.Set(ctx, key, raw, ttl)
}
