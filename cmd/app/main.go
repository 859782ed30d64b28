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

	"github.com/osse101/InkGacha_Go/internal/catalog"
	"github.com/osse101/InkGacha_Go/internal/config"
	"github.com/osse101/InkGacha_Go/internal/gacha"
	"github.com/osse101/InkGacha_Go/internal/scheduler"
	"github.com/osse101/InkGacha_Go/internal/server"
	"github.com/osse101/InkGacha_Go/internal/session"
	"github.com/osse101/InkGacha_Go/internal/storage"
	"github.com/osse101/InkGacha_Go/internal/worker"
)

// version is stamped at build time via -ldflags.
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	kv, err := storage.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer kv.Close()

	store := storage.New(kv, time.Now)

	pool, err := catalog.Load()
	if err != nil {
		return err
	}

	engine, err := gacha.New(pool)
	if err != nil {
		return err
	}

	sessionService, err := session.NewService(context.Background(), store, engine, pool, time.Now)
	if err != nil {
		return err
	}

	// Background day-boundary checks catch rollovers that happen while
	// the process idles between requests.
	jobs := worker.NewPool(1, 4)
	jobs.Start()
	defer jobs.Stop()

	sched := scheduler.New(jobs)
	sched.Schedule(time.Duration(cfg.RolloverCheckMinutes)*time.Minute, worker.JobFunc(func(ctx context.Context) error {
		if sessionService.CheckRollover(ctx) {
			slog.Info("Daily rollover applied")
		}
		return nil
	}))
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, kv, sessionService, pool, time.Now)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
