// Command unify runs the unified record pipeline once: it reads every source
// registry, normalizes the rows and upserts them into unified_records.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"udaan/internal/platform/config"
	"udaan/internal/platform/logger"
	"udaan/internal/platform/postgres"
	"udaan/internal/unified/metrics"
	"udaan/internal/unified/service"
	"udaan/internal/unified/sources"
	"udaan/internal/unified/store"
)

func main() {
	cfg := config.UnifyFromEnv()
	log := logger.NewWithWriter(os.Stderr, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		stop()
		log.Error("unify failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Unify, log *slog.Logger, out io.Writer) error {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	pipeline := service.NewPipeline(sources.NewPostgres(db).Set(), store.NewPostgres(db),
		service.WithConcurrency(cfg.Concurrency),
		service.WithPipelineLogger(log),
		service.WithPipelineMetrics(metrics.New()),
	)
	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Unified %d records.\n", summary.Total)
	return err
}
