package useragent

import (
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"realuseragent/internal/cache"
	"realuseragent/internal/catalog"
)

const (
	DefaultTimeout        = 5
	DefaultCacheTTL       = 24 * 60 * 60
	DefaultCacheKeyPrefix = "realuseragent"
	DefaultPageNum        = 1
	MaxPageNum            = 11
)

// Store is the cache backend an Agent reads and writes through.
type Store = cache.Store

// Record is one scraped row of the catalog.
type Record = catalog.Record

type Config struct {
	Timeout        int    // per-page request timeout in seconds, > 0 (default 5)
	CacheTTL       int    // cache lifetime in seconds (default 86400, 0 means default)
	CacheKeyPrefix string // default "realuseragent"
	PageNum        int    // pages fetched per query, 1..11 (default 1)

	// BaseURL overrides the catalog endpoint (tests, mirrors).
	BaseURL string
	// MaxRetries enables retrying transient page failures. Off by default.
	MaxRetries int

	// Cache defaults to a process-local in-memory store.
	Cache Store
	// HTTPClient substitutes the transport used for catalog requests.
	HTTPClient *http.Client
	Logger     *zap.Logger
	// Intn returns a uniform int in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
}

// withDefaults replaces unusable settings with defaults. It never fails;
// the names of replaced settings are returned so the caller can warn.
func (c Config) withDefaults() (Config, []string) {
	var ignored []string

	if c.Timeout <= 0 {
		if c.Timeout < 0 {
			ignored = append(ignored, "timeout")
		}
		c.Timeout = DefaultTimeout
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.CacheKeyPrefix == "" {
		c.CacheKeyPrefix = DefaultCacheKeyPrefix
	}
	if c.PageNum < 1 || c.PageNum > MaxPageNum {
		if c.PageNum != 0 {
			ignored = append(ignored, "page_num")
		}
		c.PageNum = DefaultPageNum
	}
	if c.BaseURL != "" && !validBaseURL(c.BaseURL) {
		ignored = append(ignored, "base_url")
		c.BaseURL = catalog.DefaultBaseURL
	}
	if c.MaxRetries < 0 {
		ignored = append(ignored, "max_retries")
		c.MaxRetries = 0
	}

	return c, ignored
}

func validBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c Config) cacheTTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}
