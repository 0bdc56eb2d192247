package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"trend_hunter/internal/cache"
	"trend_hunter/internal/config"
	"trend_hunter/internal/domain"
	"trend_hunter/internal/handler"
	"trend_hunter/internal/publisher"
	"trend_hunter/internal/scheduler"
	"trend_hunter/internal/service"
	"trend_hunter/internal/source/youtube"
	"trend_hunter/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if cfg.API.APIKey == "" {
		logger.Warn("video API key is not configured, ranking requests will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	responseCache, closeCache := setupCache(ctx, cfg.Cache, logger)
	defer closeCache()

	source := youtube.New(youtube.Config{
		BaseURL:         cfg.API.BaseURL,
		APIKey:          cfg.API.APIKey,
		PageSize:        cfg.API.PageSize,
		Timeout:         cfg.API.Timeout,
		WindowStartDays: cfg.API.WindowStartDays,
		WindowEndDays:   cfg.API.WindowEndDays,
		Cache:           responseCache,
		CacheTTL:        cfg.Cache.TTL,
	}, logger)

	var (
		searches   service.SearchLogStore
		searchLogs handler.SearchReader
	)
	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")

		store := postgres.NewSearchLogStore(db, postgres.NewKeywordStatsStore(db), postgres.NewTransactionManager(db))
		searches = store
		searchLogs = store
	}

	var events service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()

		events = rabbitMQ
	}

	rankingService := service.NewRankingService(source, searches, events, logger)

	if len(cfg.Watch.Keywords) > 0 {
		queries := make([]domain.SearchQuery, len(cfg.Watch.Keywords))
		for i, w := range cfg.Watch.Keywords {
			queries[i] = domain.SearchQuery{Keyword: w.Keyword, Type: domain.ParseVideoType(w.Type)}
		}
		sched := scheduler.NewScheduler(rankingService, queries, cfg.Watch.Interval, cfg.Watch.RunTimeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.NewServer(rankingService, searchLogs, cfg.HTTP.RequestTimeout, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.HTTP.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting trend hunter",
			"addr", cfg.HTTP.Addr,
			"source", source.Name(),
			"cache_ttl", cfg.Cache.TTL,
			"watched_keywords", len(cfg.Watch.Keywords),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		_ = srv.Close()
	}
	logger.Info("server stopped")
}

// setupCache picks the revalidation store: Redis when an address is
// configured, in-process otherwise, none for a negative TTL.
func setupCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (youtube.ResponseCache, func()) {
	if cfg.TTL < 0 {
		logger.Info("response cache disabled")
		return nil, func() {}
	}

	if cfg.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}

	rdb := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis", "addr", cfg.RedisAddr)

	return rdb, func() { _ = rdb.Close() }
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
