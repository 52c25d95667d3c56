package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"unistats/internal/admissions"
	"unistats/internal/admissions/cache"
	"unistats/internal/admissions/filter"
	admissionsmetrics "unistats/internal/admissions/metrics"
	"unistats/internal/admissions/service"
	"unistats/internal/admissions/store"
	"unistats/internal/platform/config"
	"unistats/internal/platform/db"
	"unistats/internal/platform/httpserver"
	"unistats/internal/platform/logger"
	"unistats/internal/platform/metrics"
	redisclient "unistats/internal/platform/redis"
	"unistats/internal/tips"
	tipsservice "unistats/internal/tips/service"
	tipsstore "unistats/internal/tips/store"
	"unistats/pkg/platform/circuit"
)

// main wires dependencies and runs the HTTP server until SIGINT or SIGTERM.
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rc != nil {
		defer rc.Close()
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(admissionsmetrics.New()),
		service.WithFilterOptions(
			filter.WithMinAverage(cfg.Filter.MinAverage),
			filter.WithMinEntriesPerSchool(cfg.Filter.MinEntriesPerSchool),
		),
	}
	switch {
	case !cfg.Cache.Enabled:
		log.Info("snapshot cache disabled")
	case rc != nil:
		breaker := circuit.New("snapshot-cache", circuit.WithCooldown(cfg.Cache.BreakerCooldown))
		guarded := cache.NewGuarded(cache.NewRedis(rc.Client), breaker, log)
		opts = append(opts, service.WithCache(guarded, cfg.Cache.TTL))
	default:
		opts = append(opts, service.WithCache(cache.NewInMemory(), cfg.Cache.TTL))
	}

	svc, err := admissions.NewService(store.NewSQL(database), opts...)
	if err != nil {
		return err
	}
	tipsSvc, err := tips.NewService(tipsstore.NewSQL(database), tipsservice.WithLogger(log))
	if err != nil {
		return err
	}

	router := newRouter(routerDeps{
		logger:    log,
		metrics:   metrics.New(),
		admission: admissions.NewHandler(svc, log),
		tips:      tips.NewHandler(tipsSvc, log),
		health:    healthCheck(database, rc),
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting unistats", "addr", cfg.Server.Addr, "db_driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
