package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpapi "udaan/internal/http"
	"udaan/internal/platform/config"
	"udaan/internal/platform/httpserver"
	"udaan/internal/platform/logger"
	platformmetrics "udaan/internal/platform/metrics"
	"udaan/internal/platform/postgres"
	"udaan/internal/platform/redis"
	ratelimitmetrics "udaan/internal/ratelimit/metrics"
	ratelimitmw "udaan/internal/ratelimit/middleware"
	"udaan/internal/ratelimit/store/bucket"
	registrycache "udaan/internal/registry/cache"
	registryhandler "udaan/internal/registry/handler"
	registrymetrics "udaan/internal/registry/metrics"
	registryservice "udaan/internal/registry/service"
	registrystore "udaan/internal/registry/store"
	searchloghandler "udaan/internal/searchlog/handler"
	searchlogmetrics "udaan/internal/searchlog/metrics"
	"udaan/internal/searchlog/publisher"
	searchlogstore "udaan/internal/searchlog/store"
	"udaan/internal/searchlog/worker"
	unifiedhandler "udaan/internal/unified/handler"
	unifiedservice "udaan/internal/unified/service"
	unifiedstore "udaan/internal/unified/store"
	"udaan/pkg/platform/middleware/metadata"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var recordCache registryservice.Cache
	healthChecks := map[string]httpapi.HealthCheck{"postgres": db.PingContext}
	if redisClient != nil {
		defer redisClient.Close()
		recordCache = registrycache.NewRedis(redisClient, cfg.RecordCacheTTL)
		healthChecks["redis"] = redis.Health(redisClient)
		log.Info("record cache backed by redis")
	} else {
		recordCache = registrycache.NewInMemory(cfg.RecordCacheTTL)
		log.Info("REDIS_URL not set, using in-memory record cache")
	}

	searchLogMetrics := searchlogmetrics.New()
	searchLog := publisher.New(cfg.SearchLogBuffer,
		publisher.WithLogger(log),
		publisher.WithMetrics(searchLogMetrics),
	)
	searchLogStore := searchlogstore.NewPostgres(db)
	searchLogWorker := worker.New(searchLogStore, searchLog.Entries(), log, searchLogMetrics)

	registrySvc := registryservice.New(registrystore.NewPostgres(db),
		registryservice.WithCache(recordCache),
		registryservice.WithSearchLogger(searchLog),
		registryservice.WithLogger(log),
		registryservice.WithMetrics(registrymetrics.New()),
	)

	buckets := bucket.NewInMemoryBucketStore()
	buckets.StartSweeper(ctx, time.Minute)
	limiter := ratelimitmw.New(buckets, cfg.SearchRateLimit, log,
		ratelimitmw.WithMetrics(ratelimitmetrics.New()),
	)

	clientIP, err := metadata.NewResolver(cfg.TrustedProxies)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(httpapi.Config{
		Logger:        log,
		AllowedOrigin: cfg.CORSAllowedOrigin,
		Metrics:       platformmetrics.New(),
		HealthChecks:  healthChecks,
		ClientIP:      clientIP,
	},
		unifiedhandler.New(unifiedservice.New(unifiedstore.NewPostgres(db), log), log),
		registryhandler.New(registrySvc, log, limiter.Search),
		searchloghandler.New(searchLogStore, log),
	)

	srv := httpserver.New(cfg.Addr, router, cfg.HTTP)
	log.Info("starting udaan", "addr", cfg.Addr)
	return serve(ctx, srv, searchLogWorker, log)
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type backgroundWorker interface {
	Run(ctx context.Context) error
}

// serve runs the HTTP server and the search log worker until ctx ends. The
// worker outlives Shutdown so searches from in-flight requests still reach
// the log.
func serve(ctx context.Context, srv httpServer, worker backgroundWorker, log *slog.Logger) error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWorker()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
