package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"unistats/internal/admissions/models"
	"unistats/pkg/platform/circuit"
	"unistats/pkg/platform/sentinel"
)

// ErrCircuitOpen is returned while the guarded cache is being skipped.
var ErrCircuitOpen = errors.New("snapshot cache circuit open")

// Backend is a snapshot cache that Guarded can wrap.
type Backend interface {
	Get(ctx context.Context, key string) ([]*models.Record, error)
	Set(ctx context.Context, key string, records []*models.Record, ttl time.Duration) error
}

// Guarded skips a failing backend until its breaker lets a trial call through.
// Misses count as successes.
type Guarded struct {
	backend Backend
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuarded(backend Backend, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Guarded{backend: backend, breaker: breaker, logger: logger}
}

func (g *Guarded) Get(ctx context.Context, key string) ([]*models.Record, error) {
	if !g.breaker.Allow() {
		return nil, ErrCircuitOpen
	}
	records, err := g.backend.Get(ctx, key)
	g.record(ctx, err)
	return records, err
}

func (g *Guarded) Set(ctx context.Context, key string, records []*models.Record, ttl time.Duration) error {
	if !g.breaker.Allow() {
		return ErrCircuitOpen
	}
	err := g.backend.Set(ctx, key, records, ttl)
	g.record(ctx, err)
	return err
}

func (g *Guarded) record(ctx context.Context, err error) {
	var change circuit.StateChange
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		_, change = g.breaker.RecordSuccess()
	} else {
		_, change = g.breaker.RecordFailure()
	}
	switch {
	case change.Opened:
		g.logger.WarnContext(ctx, "snapshot cache circuit opened", "breaker", g.breaker.Name(), "error", err)
	case change.Closed:
		g.logger.InfoContext(ctx, "snapshot cache circuit closed", "breaker", g.breaker.Name())
	}
}
