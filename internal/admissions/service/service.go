package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"unistats/internal/admissions/filter"
	"unistats/internal/admissions/metrics"
	"unistats/internal/admissions/models"
)

// RecordSource returns the full raw admissions batch.
type RecordSource interface {
	ListAll(ctx context.Context) ([]*models.Record, error)
}

// SnapshotCache holds the canonicalized batch between requests.
// Get returns sentinel.ErrNotFound on a miss.
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]*models.Record, error)
	Set(ctx context.Context, key string, records []*models.Record, ttl time.Duration) error
}

// DefaultSnapshotTTL is how long a cached snapshot is served before reloading.
const DefaultSnapshotTTL = 7 * 24 * time.Hour

var errNilSource = errors.New("admissions service: record source is required")

// Service orchestrates the admissions pipeline over a record source.
type Service struct {
	source      RecordSource
	cache       SnapshotCache
	cacheTTL    time.Duration
	filterOpts  []filter.Option
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	maxPrograms int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCache enables the read-through snapshot cache. A nil cache disables caching.
func WithCache(c SnapshotCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithFilterOptions overrides the outlier filter thresholds.
func WithFilterOptions(opts ...filter.Option) Option {
	return func(s *Service) {
		s.filterOpts = append(s.filterOpts, opts...)
	}
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New constructs a Service. The record source is required.
func New(source RecordSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, errNilSource
	}
	s := &Service{
		source:      source,
		cacheTTL:    DefaultSnapshotTTL,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:      otel.Tracer("unistats/admissions"),
		maxPrograms: MaxChancePrograms,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
