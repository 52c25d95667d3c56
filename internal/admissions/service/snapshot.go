package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"unistats/internal/admissions/cache"
	"unistats/internal/admissions/canon"
	"unistats/internal/admissions/filter"
	"unistats/internal/admissions/models"
	dErrors "unistats/pkg/domain-errors"
	"unistats/pkg/platform/sentinel"
	"unistats/pkg/requestcontext"
)

// Snapshot returns the canonicalized record batch, serving it from the cache
// when possible. Cache failures are logged and never fail the call.
func (s *Service) Snapshot(ctx context.Context) ([]*models.Record, error) {
	ctx, span := s.tracer.Start(ctx, "admissions.Snapshot")
	defer span.End()

	if records, ok := s.cached(ctx); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true), attribute.Int("records", len(records)))
		return records, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	start := time.Now()
	raw, err := s.source.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source failed")
		s.logger.ErrorContext(ctx, "failed to fetch admissions",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "admissions data is temporarily unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch admissions data")
	}
	records := canon.ApplyNameMap(raw)
	s.metrics.ObserveSnapshotLoad(start, len(records))
	span.SetAttributes(attribute.Int("records", len(records)))

	s.store(ctx, records)
	return records, nil
}

func (s *Service) cached(ctx context.Context) ([]*models.Record, bool) {
	if s.cache == nil {
		return nil, false
	}
	records, err := s.cache.Get(ctx, cache.SnapshotKey)
	switch {
	case err == nil:
		s.metrics.IncrementCacheHit()
		return records, true
	case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, cache.ErrCircuitOpen):
		s.metrics.IncrementCacheMiss()
	default:
		s.metrics.IncrementCacheMiss()
		s.metrics.IncrementCacheError("get")
		s.logger.WarnContext(ctx, "snapshot cache read failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	return nil, false
}

func (s *Service) store(ctx context.Context, records []*models.Record) {
	if s.cache == nil {
		return
	}
	err := s.cache.Set(ctx, cache.SnapshotKey, records, s.cacheTTL)
	if err != nil && !errors.Is(err, cache.ErrCircuitOpen) {
		s.metrics.IncrementCacheError("set")
		s.logger.WarnContext(ctx, "snapshot cache write failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// filtered returns the snapshot with outliers and sparse schools removed.
func (s *Service) filtered(ctx context.Context) ([]*models.Record, error) {
	records, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	kept := filter.Outliers(records, s.filterOpts...)
	s.metrics.AddRecordsDropped(len(records) - len(kept))
	return kept, nil
}
