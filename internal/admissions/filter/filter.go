// Package filter drops implausible averages and schools with too little data.
package filter

import "unistats/internal/admissions/models"

const (
	DefaultMinAverage          = 60.0
	DefaultMinEntriesPerSchool = 2
)

// Options holds the thresholds applied by Outliers.
type Options struct {
	MinAverage          float64
	MinEntriesPerSchool int
}

type Option func(*Options)

// WithMinAverage overrides the lowest average kept.
func WithMinAverage(v float64) Option {
	return func(o *Options) {
		o.MinAverage = v
	}
}

// WithMinEntriesPerSchool overrides how many surviving records a school needs.
func WithMinEntriesPerSchool(n int) Option {
	return func(o *Options) {
		o.MinEntriesPerSchool = n
	}
}

// Outliers removes records without a usable average or with an average below
// the minimum, then removes records of schools left with fewer than the
// minimum number of entries. Relative order is preserved and the input slice
// is not modified.
func Outliers(records []*models.Record, opts ...Option) []*models.Record {
	o := Options{
		MinAverage:          DefaultMinAverage,
		MinEntriesPerSchool: DefaultMinEntriesPerSchool,
	}
	for _, opt := range opts {
		opt(&o)
	}

	valid := make([]*models.Record, 0, len(records))
	perSchool := make(map[string]int)
	for _, record := range records {
		avg, ok := record.AverageValue()
		if !ok || avg < o.MinAverage {
			continue
		}
		valid = append(valid, record)
		perSchool[record.School]++
	}

	out := make([]*models.Record, 0, len(valid))
	for _, record := range valid {
		if perSchool[record.School] >= o.MinEntriesPerSchool {
			out = append(out, record)
		}
	}
	return out
}
