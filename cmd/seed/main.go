// Command seed creates the portal tables and loads the sample records.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"udaan/internal/platform/config"
	"udaan/internal/platform/logger"
	"udaan/internal/platform/postgres"
	"udaan/internal/seed"
)

func main() {
	cfg := config.UnifyFromEnv()
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Database, log); err != nil {
		stop()
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Database, log *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	_, err = seed.New(db, log).Run(ctx)
	return err
}
