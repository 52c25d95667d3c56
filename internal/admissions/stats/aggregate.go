// Package stats aggregates admission records into per-program statistics and
// derives percentile and chance estimates from them.
package stats

import (
	"sort"

	"unistats/internal/admissions/models"
)

// MinGroupSize is the smallest group that comparison views treat as meaningful.
// Aggregate itself keeps every group; callers apply this threshold.
const MinGroupSize = 2

// Aggregate groups records by exact (school, program) and computes count, mean,
// min, max and the sorted averages of each group. Records without a usable
// average do not contribute.
func Aggregate(records []*models.Record) map[models.ProgramKey]*models.ProgramStats {
	groups := make(map[models.ProgramKey]*models.ProgramStats)
	totals := make(map[models.ProgramKey]float64)

	for _, record := range records {
		avg, ok := record.AverageValue()
		if !ok {
			continue
		}
		key := models.ProgramKey{School: record.School, Program: record.Program}
		g, exists := groups[key]
		if !exists {
			g = &models.ProgramStats{Key: key, Min: avg, Max: avg}
			groups[key] = g
		}
		g.Count++
		g.Averages = append(g.Averages, avg)
		totals[key] += avg
		if avg < g.Min {
			g.Min = avg
		}
		if avg > g.Max {
			g.Max = avg
		}
		if record.ScholarshipValue() > 0 {
			g.ScholarshipCount++
		}
		if record.RequiresSuppApp() {
			g.SuppAppCount++
		}
	}

	for key, g := range groups {
		g.Mean = totals[key] / float64(g.Count)
		sort.Float64s(g.Averages)
	}
	return groups
}

// Meaningful returns the groups with at least MinGroupSize data points, ordered
// by school then program so callers can apply stable sorts on top.
func Meaningful(groups map[models.ProgramKey]*models.ProgramStats) []*models.ProgramStats {
	out := make([]*models.ProgramStats, 0, len(groups))
	for _, g := range groups {
		if g.Count >= MinGroupSize {
			out = append(out, g)
		}
	}
	sortByKey(out)
	return out
}

func sortByKey(groups []*models.ProgramStats) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Key.School != groups[j].Key.School {
			return groups[i].Key.School < groups[j].Key.School
		}
		return groups[i].Key.Program < groups[j].Key.Program
	})
}
