package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"unistats/internal/admissions/models"
)

// Metrics provides observability for the admissions pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	CacheErrors      *prometheus.CounterVec
	SnapshotDuration prometheus.Histogram
	SnapshotRecords  prometheus.Gauge
	RecordsDropped   prometheus.Counter
	ChanceOutcomes   *prometheus.CounterVec
}

// New registers the admissions metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the admissions metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "unistats_snapshot_cache_hits_total",
			Help: "Snapshot reads served from cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "unistats_snapshot_cache_misses_total",
			Help: "Snapshot reads that fell through to the record source",
		}),
		CacheErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "unistats_snapshot_cache_errors_total",
			Help: "Cache failures that were logged and ignored",
		}, []string{"op"}),
		SnapshotDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "unistats_snapshot_load_duration_seconds",
			Help:    "Duration of loading and canonicalizing the full record set from the source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SnapshotRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "unistats_snapshot_records",
			Help: "Records in the most recently loaded snapshot",
		}),
		RecordsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "unistats_records_filtered_total",
			Help: "Records removed by the outlier filter",
		}),
		ChanceOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "unistats_chance_outcomes_total",
			Help: "Chance classifications returned by evaluations",
		}, []string{"chance"}),
	}
}

func (m *Metrics) IncrementCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *Metrics) IncrementCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

// IncrementCacheError records an ignored cache failure; op is "get" or "set".
func (m *Metrics) IncrementCacheError(op string) {
	if m == nil {
		return
	}
	m.CacheErrors.WithLabelValues(op).Inc()
}

// ObserveSnapshotLoad records a source load that produced n records.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSnapshotLoad(start time.Time, n int) {
	if m == nil {
		return
	}
	m.SnapshotDuration.Observe(time.Since(start).Seconds())
	m.SnapshotRecords.Set(float64(n))
}

func (m *Metrics) AddRecordsDropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsDropped.Add(float64(n))
}

func (m *Metrics) ObserveChances(results []models.ChanceResult) {
	if m == nil {
		return
	}
	for _, r := range results {
		m.ChanceOutcomes.WithLabelValues(string(r.Chance)).Inc()
	}
}
