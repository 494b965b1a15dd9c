package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"realuseragent/internal/cache"
	"realuseragent/internal/config"
	"realuseragent/internal/handlers"
	"realuseragent/internal/httpserver"
	"realuseragent/internal/metrics"
	"realuseragent/pkg/logging/logging"
	"realuseragent/pkg/useragent"
)

const usage = `usage:
  realuseragent [serve]           run the HTTP service
  realuseragent get [browser]     print one random user agent`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("realuseragent exited with error: %v", err)
	}
}

func run(args []string) error {
	// ----- Config -----
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// ----- Logger -----
	logger, err := logging.NewLogger(logging.Options{Env: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()
	logging.SetDefault(logger)

	// ----- Redis client (only if needed) -----
	var redisClient redis.UniversalClient
	if cfg.CacheBackend == cache.BackendRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()

		// Fail fast if Redis is misconfigured
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Error("redis connection failed", zap.Error(err))
			return err
		}
		logger.Info("redis connection established", zap.String("addr", opts.Addr))
	}

	// ----- Cache -----
	store := cache.NewStore(cfg.Cache(), redisClient)
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// ----- Agent -----
	uaCfg := cfg.UserAgent()
	uaCfg.Cache = store
	uaCfg.Logger = logger

	agent, err := useragent.New(uaCfg)
	if err != nil {
		return err
	}
	defer agent.Close()

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "serve":
		return serve(cfg, logger, agent)
	case "get":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		return printOne(agent, name)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printOne(agent *useragent.Agent, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		ua  string
		ok  bool
		err error
	)
	if name == "" {
		ua, ok, err = agent.Random(ctx, useragent.Filter{}, false)
	} else {
		ua, ok, err = agent.Get(ctx, name)
	}
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no user agent found")
	}

	fmt.Println(ua)
	return nil
}

func serve(cfg config.Config, logger *zap.Logger, agent *useragent.Agent) error {
	// ----- Metrics -----
	metrics.Register()

	effective := agent.Config()
	logger.Info("loaded config",
		zap.String("port", cfg.Port),
		zap.String("cache_backend", cfg.CacheBackend),
		zap.Int("page_num", effective.PageNum),
		zap.Int("timeout_s", effective.Timeout),
		zap.Int("cache_ttl_s", effective.CacheTTL),
		zap.String("cache_key_prefix", effective.CacheKeyPrefix),
	)

	// ----- Router + middleware -----
	r := chi.NewRouter()
	httpserver.SetupRouter(r, logger, handlers.NewUserAgentHandler(agent), cfg.RequestTimeout)

	// ----- HTTP server -----
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("starting service", zap.String("addr", srv.Addr))

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// ----- Graceful shutdown -----
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-stop:
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("server shutdown complete")
	return nil
}
