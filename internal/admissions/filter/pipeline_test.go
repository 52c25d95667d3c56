package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unistats/internal/admissions/canon"
	"unistats/internal/admissions/filter"
	"unistats/internal/admissions/models"
)

func batch() []*models.Record {
	rec := func(id, school, program, code string, avg float64) *models.Record {
		return &models.Record{ID: id, School: school, Program: program, OUACCode: &code, Average: &avg}
	}
	return []*models.Record{
		rec("1", "Waterloo", "Computer Science", "WCS", 95),
		rec("2", "Waterloo", "computer  science", "wcs", 92),
		rec("3", "Waterloo", "COMPUTER SCIENCE ", "WCS", 90),
		rec("4", "Waterloo", "Mathematics", "WM", 85),
		rec("5", "Lakehead", "Nursing", "LN", 90),
	}
}

func TestFilterAndCanonicalizeInEitherOrder(t *testing.T) {
	orders := map[string]func([]*models.Record) []*models.Record{
		"filter then canonicalize": func(in []*models.Record) []*models.Record {
			return canon.ApplyNameMap(filter.Outliers(in))
		},
		"canonicalize then filter": func(in []*models.Record) []*models.Record {
			return filter.Outliers(canon.ApplyNameMap(in))
		},
	}

	for name, run := range orders {
		t.Run(name, func(t *testing.T) {
			out := run(batch())
			require.Len(t, out, 4)

			programs := make(map[string]int)
			for _, r := range out {
				assert.Equal(t, "Waterloo", r.School)
				programs[r.Program]++
			}
			assert.Equal(t, map[string]int{"Computer Science": 3, "Mathematics": 1}, programs)
		})
	}
}
