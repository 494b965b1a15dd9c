// Package collector answers "all known records for a catalog query",
// reading through the record cache and falling back to the catalog.
package collector

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"realuseragent/internal/cache"
	"realuseragent/internal/catalog"
)

// Fetcher retrieves every record for a query from the catalog.
// Implemented by *catalog.Client.
type Fetcher interface {
	FetchPages(ctx context.Context, category, name, orderBy string, pageCount int) ([]catalog.Record, error)
}

type Config struct {
	Pages          int
	CacheTTL       time.Duration
	CacheKeyPrefix string
}

type Collector struct {
	cfg     Config
	cache   *cache.RecordCache
	fetcher Fetcher
	logger  *zap.Logger

	// flights collapses concurrent fetches of one key into a single
	// fetch and a single cache write.
	flights singleflight.Group
}

func New(cfg Config, store cache.Store, fetcher Fetcher, logger *zap.Logger) *Collector {
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collector{
		cfg:     cfg,
		cache:   cache.NewRecordCache(store),
		fetcher: fetcher,
		logger:  logger.Named("collector"),
	}
}

// Key returns the cache key for a query. An empty orderBy means the
// catalog default.
func (c *Collector) Key(category, name, orderBy string) cache.QueryKey {
	if orderBy == "" {
		orderBy = catalog.DefaultOrderBy
	}
	return cache.QueryKey{
		Prefix:   c.cfg.CacheKeyPrefix,
		Category: category,
		Name:     name,
		Pages:    c.cfg.Pages,
		OrderBy:  orderBy,
	}
}

// Collect returns every record for (category, name, orderBy). Unless refresh
// is set, a non-empty cache entry is returned as is. Otherwise all pages are
// fetched and the result replaces the cache entry, even when it is empty.
// Only catalog errors are returned; cache failures degrade to a fetch.
// Concurrent calls for the same key share one fetch and one cache write.
func (c *Collector) Collect(ctx context.Context, category, name, orderBy string, refresh bool) ([]catalog.Record, error) {
	start := time.Now()
	key := c.Key(category, name, orderBy)
	cacheKey := key.String()

	logger := c.logger.With(
		zap.String("category", category),
		zap.String("name", name),
		zap.String("order_by", key.OrderBy),
		zap.Int("pages", key.Pages),
	)

	if !refresh {
		records, hit, err := c.cache.Get(ctx, cacheKey)
		if err != nil {
			// Cache is best-effort; log and treat as miss.
			logger.Warn("record_cache_get_error", zap.Error(err))
		}

		// An empty entry counts as a miss, so empty listings are re-fetched.
		if hit && len(records) > 0 {
			logger.Debug("cache_decision",
				zap.Bool("cache_hit", true),
				zap.Int("records", len(records)),
				zap.Duration("total_latency", time.Since(start)),
			)
			return records, nil
		}
	}

	// The flight outlives a caller that gives up; the other callers of the
	// same key still get its result.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(cacheKey, func() (any, error) {
		return c.fetchAndStore(flightCtx, logger, key, cacheKey, refresh)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		records := res.Val.([]catalog.Record)
		logger.Debug("cache_decision",
			zap.Bool("cache_hit", false),
			zap.Bool("refresh", refresh),
			zap.Bool("shared", res.Shared),
			zap.Int("records", len(records)),
			zap.Duration("total_latency", time.Since(start)),
		)
		return slices.Clone(records), nil
	}
}

// fetchAndStore fetches every page of key and replaces its cache entry.
func (c *Collector) fetchAndStore(ctx context.Context, logger *zap.Logger, key cache.QueryKey, cacheKey string, refresh bool) ([]catalog.Record, error) {
	fetchStart := time.Now()
	records, err := c.fetcher.FetchPages(ctx, key.Category, key.Name, key.OrderBy, key.Pages)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, cacheKey, records, c.cfg.CacheTTL); err != nil {
		logger.Warn("record_cache_set_error", zap.Error(err))
	}

	logger.Debug("catalog_fetched",
		zap.Bool("refresh", refresh),
		zap.Int("records", len(records)),
		zap.Duration("fetch_latency", time.Since(fetchStart)),
	)

	return records, nil
}
