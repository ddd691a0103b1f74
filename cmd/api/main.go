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

	"github.com/baharkarakas/calc-backend/internal/api"
	"github.com/baharkarakas/calc-backend/internal/config"
	"github.com/baharkarakas/calc-backend/internal/db"
	"github.com/baharkarakas/calc-backend/internal/logger"
	"github.com/baharkarakas/calc-backend/internal/metrics"
	"github.com/baharkarakas/calc-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg); err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg.DatabaseURL, db.Options{Migrate: cfg.Migrate, MaxConns: cfg.DBMaxConns})
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("store ready", "dialect", store.Dialect, "migrate", cfg.Migrate)

	userSvc := services.NewUserService(store.Repos.Users)
	calcSvc := services.NewCalculationService(store.Repos.Calculations, store.Repos.Users)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, calcSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
