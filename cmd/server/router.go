package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unistats/internal/admissions"
	"unistats/internal/platform/metrics"
	"unistats/internal/platform/middleware"
	redisclient "unistats/internal/platform/redis"
	"unistats/internal/tips"
	"unistats/pkg/domain"
	"unistats/pkg/platform/httputil"
	"unistats/pkg/platform/middleware/metadata"
	"unistats/pkg/platform/middleware/requesttime"
	"unistats/pkg/platform/middleware/version"
)

const healthTimeout = 2 * time.Second

type routerDeps struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	admission *admissions.Handler
	tips      *tips.Handler
	health    func(ctx context.Context) error
}

// newRouter mounts the admissions and tips APIs under /v1 and at the root,
// plus the operational endpoints.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.AccessLog(deps.logger, deps.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := deps.health(ctx); err != nil {
			deps.logger.WarnContext(ctx, "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(version.ExtractVersion(domain.APIVersionV1))
		deps.admission.Register(r)
		deps.tips.Register(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(version.ExtractVersion(domain.APIVersionV1))
		deps.admission.Register(r)
		deps.tips.Register(r)
	})
	return r
}

func healthCheck(database *sqlx.DB, rc *redisclient.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := database.PingContext(ctx); err != nil {
			return err
		}
		if rc != nil {
			return rc.Health(ctx)
		}
		return nil
	}
}
