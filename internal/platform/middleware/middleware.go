// Package middleware holds the HTTP middleware that depends on platform services.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"unistats/internal/platform/metrics"
	"unistats/pkg/requestcontext"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses a caller-supplied request id or mints a UUID, stores it in
// the context and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), reqID)))
	})
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request and feeds the HTTP metrics. The user
// agent is parsed so bot traffic is counted separately; m may be nil.
func AccessLog(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := routePattern(r)
			m.ObserveRequest(route, r.Method, rec.status, start)

			ctx := r.Context()
			client := parseClient(userAgent(r))
			if client.bot {
				m.IncrementBotRequest(route)
			}

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(ctx, level, "http request",
				"request_id", requestcontext.RequestID(ctx),
				"method", r.Method,
				"route", route,
				"status", rec.status,
				"client_ip", requestcontext.ClientIP(ctx),
				"browser", client.browser,
				"os", client.os,
				"bot", client.bot,
				"mobile", client.mobile,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// routePattern keeps metric cardinality bounded by using chi's matched pattern.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

type clientInfo struct {
	browser string
	os      string
	bot     bool
	mobile  bool
}

func userAgent(r *http.Request) string {
	if ua := requestcontext.UserAgent(r.Context()); ua != "" {
		return ua
	}
	return r.UserAgent()
}

func parseClient(raw string) clientInfo {
	if raw == "" {
		return clientInfo{browser: "unknown", os: "unknown"}
	}
	ua := useragent.New(raw)
	name, _ := ua.Browser()
	info := clientInfo{browser: name, os: ua.OS(), bot: ua.Bot(), mobile: ua.Mobile()}
	if info.browser == "" {
		info.browser = "unknown"
	}
	if info.os == "" {
		info.os = "unknown"
	}
	return info
}
