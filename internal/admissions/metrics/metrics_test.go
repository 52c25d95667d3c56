package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"unistats/internal/admissions/models"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCacheHit()
		m.IncrementCacheMiss()
		m.IncrementCacheError("get")
		m.ObserveSnapshotLoad(time.Now(), 3)
		m.AddRecordsDropped(2)
		m.ObserveChances([]models.ChanceResult{{Chance: models.ChanceHigh}})
	})
}

func TestCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementCacheMiss()
	m.AddRecordsDropped(4)
	m.AddRecordsDropped(-1)
	m.ObserveSnapshotLoad(time.Now(), 12)
	m.ObserveChances([]models.ChanceResult{{Chance: models.ChanceHigh}, {Chance: models.ChanceReach}, {Chance: models.ChanceHigh}})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMisses))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsDropped))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.SnapshotRecords))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChanceOutcomes.WithLabelValues(string(models.ChanceHigh))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChanceOutcomes.WithLabelValues(string(models.ChanceReach))))
}
