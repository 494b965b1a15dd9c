// Package useragent returns real-world user-agent strings scraped from the
// whatismybrowser.com catalog.
//
// An Agent fetches the catalog listing for a browser, caches the parsed
// records per query and picks one at random, optionally narrowed by
// software version, operating system or hardware type:
//
//	agent, err := useragent.New(useragent.Config{PageNum: 2})
//	if err != nil {
//		return err
//	}
//	defer agent.Close()
//
//	ua, ok, err := agent.Chrome(ctx, useragent.Filter{OperatingSystem: "Windows"})
//
// ok is false when no record matches; err is only set when the catalog
// could not be reached.
package useragent

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"realuseragent/internal/cache"
	"realuseragent/internal/catalog"
	"realuseragent/internal/collector"
	"realuseragent/internal/metrics"
)

type Agent struct {
	cfg       Config
	client    *catalog.Client
	collector *collector.Collector
	store     Store
	ownsStore bool
	intn      func(n int) int
	logger    *zap.Logger
}

// New builds an Agent. Out-of-range settings are replaced by their defaults
// and logged as warnings; they never fail construction.
func New(cfg Config) (*Agent, error) {
	cfg, ignored := cfg.withDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("useragent")

	for _, name := range ignored {
		logger.Warn("invalid setting ignored, using default", zap.String("setting", name))
	}

	client, err := catalog.NewClient(catalog.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.timeout(),
		MaxRetries: cfg.MaxRetries,
		HTTPClient: cfg.HTTPClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("useragent: %w", err)
	}

	store, ownsStore := cfg.Cache, false
	if store == nil {
		store, ownsStore = cache.NewMemoryStore(time.Minute), true
	}

	intn := cfg.Intn
	if intn == nil {
		intn = rand.IntN
	}

	return &Agent{
		cfg:    cfg,
		client: client,
		collector: collector.New(collector.Config{
			Pages:          cfg.PageNum,
			CacheTTL:       cfg.cacheTTL(),
			CacheKeyPrefix: cfg.CacheKeyPrefix,
		}, cache.NewLoggingStore(store, logger.Named("cache")), client, logger),
		store:     store,
		ownsStore: ownsStore,
		intn:      intn,
		logger:    logger,
	}, nil
}

// Config returns the effective settings after defaults were applied.
func (a *Agent) Config() Config {
	return a.cfg
}

// Collect returns every cached or freshly fetched record for a catalog query.
// An empty orderBy means "-times_seen".
func (a *Agent) Collect(ctx context.Context, category, name, orderBy string, refresh bool) ([]Record, error) {
	return a.collector.Collect(ctx, category, name, orderBy, refresh)
}

// Random picks one user agent uniformly from the records matching filter.
// Unset Category and OrderBy use the catalog defaults; an unset Name picks
// one of chrome, safari, firefox, opera and edge. ok is false when nothing
// matches.
func (a *Agent) Random(ctx context.Context, filter Filter, refresh bool) (ua string, ok bool, err error) {
	if filter.Category == "" {
		filter.Category = DefaultCategory
	}
	if filter.Name == "" {
		filter.Name = randomNames[a.intn(len(randomNames))]
	}
	if filter.OrderBy == "" {
		filter.OrderBy = catalog.DefaultOrderBy
	}

	records, err := a.collector.Collect(ctx, filter.Category, filter.Name, filter.OrderBy, refresh)
	if err != nil {
		return "", false, err
	}

	matches := filter.Apply(records)
	if len(matches) == 0 {
		metrics.EmptySelectionsTotal.Inc()
		a.logger.Debug("no matching user agent",
			zap.String("category", filter.Category),
			zap.String("name", filter.Name),
			zap.Int("records", len(records)),
		)
		return "", false, nil
	}

	return matches[a.intn(len(matches))].UserAgent, true, nil
}

// Close releases idle connections and stops the default store's cleanup.
// A store passed in Config is left open.
func (a *Agent) Close() error {
	_ = a.client.Close()
	if a.ownsStore {
		if closer, ok := a.store.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}
