package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"realuseragent/internal/metrics"
	"realuseragent/pkg/logging/logging"
)

// LoggingStore wraps a Store with logging + metrics.
type LoggingStore struct {
	inner  Store
	logger *zap.Logger
}

// NewLoggingStore returns a store that logs and records metrics. logger is
// used when the request context carries no logger of its own.
func NewLoggingStore(inner Store, logger *zap.Logger) Store {
	return &LoggingStore{inner: inner, logger: logger}
}

func (s *LoggingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := s.inner.Get(ctx, key)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	result := "miss"
	if err != nil {
		result = "error"
	} else if ok {
		result = "hit"
	}
	metrics.CacheLookupsTotal.WithLabelValues(result).Inc()

	fields := []zap.Field{
		zap.String("cache_key", key),
		zap.String("cache_result", result), // hit | miss | error
		zap.Int("bytes", len(value)),
		zap.Float64("latency_ms", latencyMs),
	}

	logger := logging.FromContextOr(ctx, s.logger)
	if err != nil {
		logger.Error("record_cache_get", append(fields, zap.Error(err))...)
	} else {
		logger.Debug("record_cache_get", fields...)
	}

	return value, ok, err
}

func (s *LoggingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value, ttl)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	fields := []zap.Field{
		zap.String("cache_key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl),
		zap.Float64("latency_ms", latencyMs),
	}

	logger := logging.FromContextOr(ctx, s.logger)
	if err != nil {
		logger.Error("record_cache_set", append(fields, zap.Error(err))...)
	} else {
		logger.Debug("record_cache_set", fields...)
	}

	return err
}
