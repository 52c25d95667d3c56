package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"unistats/internal/platform/metrics"
	"unistats/pkg/requestcontext"
)

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc-123", seen)
}

func TestAccessLogRecordsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(AccessLog(logger, m))
	r.Get("/admissions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admissions/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/admissions/{id}", http.MethodGet, "418")))
	assert.Contains(t, buf.String(), `"route":"/admissions/{id}"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestAccessLogParsesUserAgent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(AccessLog(logger, m))
	r.Get("/universities", func(w http.ResponseWriter, r *http.Request) {})

	t.Run("bots are counted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/universities", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.BotRequests.WithLabelValues("/universities")))
		assert.Contains(t, buf.String(), `"bot":true`)
	})

	t.Run("browsers are not", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/universities", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.BotRequests.WithLabelValues("/universities")))
		assert.Contains(t, buf.String(), `"browser":"Chrome"`)
		assert.Contains(t, buf.String(), `"bot":false`)
	})

	t.Run("missing user agent", func(t *testing.T) {
		assert.Equal(t, clientInfo{browser: "unknown", os: "unknown"}, parseClient(""))
	})
}
