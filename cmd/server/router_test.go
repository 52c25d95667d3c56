package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unistats/internal/admissions"
	"unistats/internal/admissions/models"
	"unistats/internal/admissions/store"
	"unistats/internal/platform/metrics"
	"unistats/internal/tips"
	tipsmodels "unistats/internal/tips/models"
	"unistats/pkg/platform/middleware/version"
	"unistats/pkg/testutil"
)

type tipList []*tipsmodels.Tip

func (l tipList) ListAll(context.Context) ([]*tipsmodels.Tip, error) { return l, nil }

func testRouter(t *testing.T, health func(context.Context) error) http.Handler {
	t.Helper()
	avg := 91.0
	source := store.NewInMemory(&models.Record{ID: "1", School: "University of Waterloo", Program: "Computer Science", Average: &avg})
	svc, err := admissions.NewService(source)
	require.NoError(t, err)
	tipsSvc, err := tips.NewService(tipList{{ID: "t1", Title: "Apply early", Content: "OUAC opens in the fall."}})
	require.NoError(t, err)

	return newRouter(routerDeps{
		logger:    testutil.DiscardLogger(),
		metrics:   metrics.NewWithRegisterer(prometheus.NewRegistry()),
		admission: admissions.NewHandler(svc, testutil.DiscardLogger()),
		tips:      tips.NewHandler(tipsSvc, testutil.DiscardLogger()),
		health:    health,
	})
}

func TestRouter(t *testing.T) {
	healthy := func(context.Context) error { return nil }

	t.Run("versioned and root routes serve the same API", func(t *testing.T) {
		router := testRouter(t, healthy)
		for _, path := range []string{"/v1/admissions?q=computer", "/admissions?q=computer", "/v1/tips", "/tips"} {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rr.Code, path)
			assert.Equal(t, "v1", rr.Header().Get(version.VersionHeader))
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		}
	})

	t.Run("health reports dependency failures", func(t *testing.T) {
		rr := testutil.DoRequest(testRouter(t, healthy), testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		down := func(context.Context) error { return errors.New("connection refused") }
		rr = testutil.DoRequest(testRouter(t, down), testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("unknown routes are not found", func(t *testing.T) {
		rr := testutil.DoRequest(testRouter(t, healthy), testutil.NewJSONRequest(t, http.MethodGet, "/v2/admissions", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
