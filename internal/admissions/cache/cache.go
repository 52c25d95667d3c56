// Package cache stores the canonicalized admissions snapshot between requests.
//
// Both implementations return sentinel.ErrNotFound on a miss or after expiry.
package cache

import (
	"context"
	"sync"
	"time"

	"unistats/internal/admissions/models"
	"unistats/pkg/platform/sentinel"
)

// SnapshotKey is the key the full canonicalized batch is stored under.
const SnapshotKey = "allAdmissions"

type entry struct {
	records   []*models.Record
	expiresAt time.Time
}

// InMemory is a process-local snapshot cache.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// InMemoryOption configures an InMemory cache.
type InMemoryOption func(*InMemory)

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) InMemoryOption {
	return func(c *InMemory) {
		if now != nil {
			c.now = now
		}
	}
}

// NewInMemory constructs an empty in-memory cache.
func NewInMemory(opts ...InMemoryOption) *InMemory {
	c := &InMemory{entries: make(map[string]entry), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the cached batch.
func (c *InMemory) Get(_ context.Context, key string) ([]*models.Record, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, sentinel.ErrNotFound
	}
	return cloneRecords(e.records), nil
}

// Set stores a copy of records until ttl elapses.
func (c *InMemory) Set(_ context.Context, key string, records []*models.Record, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{records: cloneRecords(records), expiresAt: c.now().Add(ttl)}
	return nil
}

// Delete drops key.
func (c *InMemory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func cloneRecords(records []*models.Record) []*models.Record {
	out := make([]*models.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		c := *r
		out = append(out, &c)
	}
	return out
}
