package stats

import (
	"sort"
	"strings"

	"unistats/internal/admissions/models"
)

const (
	highMargin   = 3.0
	mediumMargin = 2.0
)

// Percentile returns the share of sorted averages strictly below v, as a
// percentage. There is no interpolation between order statistics.
func Percentile(sorted []float64, v float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	below := sort.SearchFloat64s(sorted, v)
	return float64(below) / float64(len(sorted)) * 100
}

// Classify places v in a band relative to the group's mean and minimum.
// Each band includes its lower bound:
//
//	high:   v >= mean+3
//	medium: mean-2 <= v < mean+3
//	low:    min <= v < mean-2
//	reach:  v < min
func Classify(mean, min, v float64) models.Chance {
	switch {
	case v >= mean+highMargin:
		return models.ChanceHigh
	case v >= mean-mediumMargin:
		return models.ChanceMedium
	case v >= min:
		return models.ChanceLow
	default:
		return models.ChanceReach
	}
}

// Recommendation returns the advice shown next to a chance label.
func Recommendation(c models.Chance) string {
	switch c {
	case models.ChanceHigh:
		return "You're well above the average admitted student. Strong candidate!"
	case models.ChanceMedium:
		return "You're competitive for this program. Focus on supplementary applications if required."
	case models.ChanceLow:
		return "This is a reach but possible. Consider this a stretch goal and have backup options."
	default:
		return "This will be challenging. Consider strengthening your application with extracurriculars."
	}
}

// Evaluate compares a candidate average against one group.
func Evaluate(g *models.ProgramStats, v float64) models.ChanceResult {
	chance := Classify(g.Mean, g.Min, v)
	return models.ChanceResult{
		Key:            g.Key,
		Mean:           g.Mean,
		Min:            g.Min,
		Max:            g.Max,
		DataPoints:     g.Count,
		Chance:         chance,
		Percentile:     Percentile(g.Averages, v),
		Recommendation: Recommendation(chance),
	}
}

// EvaluateAll evaluates v against each requested key. Keys without a group of
// at least MinGroupSize records are skipped. Results are ordered by percentile,
// highest first.
func EvaluateAll(groups map[models.ProgramKey]*models.ProgramStats, keys []models.ProgramKey, v float64) []models.ChanceResult {
	results := make([]models.ChanceResult, 0, len(keys))
	for _, key := range keys {
		g, ok := groups[key]
		if !ok || g.Count < MinGroupSize {
			continue
		}
		results = append(results, Evaluate(g, v))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentile > results[j].Percentile
	})
	return results
}

// Candidates lists the groups a student can pick from: meaningful groups,
// most data points first, optionally narrowed to those whose program or school
// contains search (case-insensitive), truncated to limit when limit > 0.
func Candidates(groups map[models.ProgramKey]*models.ProgramStats, search string, limit int) []*models.ProgramStats {
	list := Meaningful(groups)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Count > list[j].Count
	})

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		matched := make([]*models.ProgramStats, 0, len(list))
		for _, g := range list {
			if containsFold(g.Key.Program, search) || containsFold(g.Key.School, search) {
				matched = append(matched, g)
			}
		}
		list = matched
	}

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
