package store

import (
	"context"
	"sort"
	"sync"

	"unistats/internal/admissions/models"
	"unistats/pkg/platform/sentinel"
)

// InMemory is a map-backed record source used in tests and when no database is configured.
type InMemory struct {
	mu      sync.RWMutex
	records map[string]*models.Record
	err     error
}

// NewInMemory constructs an InMemory store seeded with records.
func NewInMemory(records ...*models.Record) *InMemory {
	s := &InMemory{records: make(map[string]*models.Record, len(records))}
	_ = s.Upsert(context.Background(), records)
	return s
}

// ListAll returns copies of every record ordered by id.
func (s *InMemory) ListAll(_ context.Context) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}

	out := make([]*models.Record, 0, len(s.records))
	for _, r := range s.records {
		c := *r
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Upsert stores copies of records keyed by id.
func (s *InMemory) Upsert(_ context.Context, records []*models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if r == nil || r.ID == "" {
			continue
		}
		c := *r
		s.records[r.ID] = &c
	}
	return nil
}

// SetUnavailable makes ListAll fail with sentinel.ErrUnavailable until cleared.
func (s *InMemory) SetUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if down {
		s.err = sentinel.ErrUnavailable
		return
	}
	s.err = nil
}
