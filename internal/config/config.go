// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"realuseragent/internal/cache"
	"realuseragent/pkg/useragent"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	dotenvLoaded sync.Once
)

type Config struct {
	Env            string        `env:"ENV" envDefault:"production"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Port           string        `env:"PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	CacheBackend   string `env:"CACHE_BACKEND" envDefault:"memory"` // memory | lru | redis
	RedisURL       string `env:"REDIS_URL" envDefault:"redis://127.0.0.1:6379/0"`
	RedisNamespace string `env:"REDIS_NAMESPACE"`
	LRUSize        int    `env:"LRU_SIZE" envDefault:"1024"`

	// Catalog settings, see useragent.Config.
	Timeout        int    `env:"UA_TIMEOUT" envDefault:"5"`
	CacheTTL       int    `env:"UA_CACHE_TTL" envDefault:"86400"`
	CacheKeyPrefix string `env:"UA_CACHE_KEY_PREFIX" envDefault:"realuseragent"`
	PageNum        int    `env:"UA_PAGE_NUM" envDefault:"1"`
	BaseURL        string `env:"UA_BASE_URL"`
	MaxRetries     int    `env:"UA_MAX_RETRIES" envDefault:"0"`
}

// Load reads .env once (a missing file is fine) and parses the environment.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// UserAgent maps the catalog settings onto useragent.Config. Out-of-range
// values are left for useragent.New to replace.
func (c Config) UserAgent() useragent.Config {
	return useragent.Config{
		Timeout:        c.Timeout,
		CacheTTL:       c.CacheTTL,
		CacheKeyPrefix: c.CacheKeyPrefix,
		PageNum:        c.PageNum,
		BaseURL:        c.BaseURL,
		MaxRetries:     c.MaxRetries,
	}
}

// Cache returns the store settings. The LRU keeps entries no longer than
// the catalog cache TTL.
func (c Config) Cache() cache.Config {
	return cache.Config{
		Backend:         c.CacheBackend,
		CleanupInterval: time.Minute,
		LRUSize:         c.LRUSize,
		MaxTTL:          time.Duration(c.CacheTTL) * time.Second,
		Namespace:       c.RedisNamespace,
	}
}
