package stats

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"unistats/internal/admissions/models"
)

const (
	competitiveLimit = 15
	accessibleLimit  = 10
	scholarshipLimit = 20
	otherCategory    = "Other"
)

type category struct {
	name     string
	keywords []string
}

// categories are matched in order; the first category with a keyword contained
// in the lower-cased program wins.
var categories = []category{
	{"Computer Science", []string{"computer", "computing", "software", "data science", "ai", "machine learning"}},
	{"Engineering", []string{"engineering", "mechanical", "electrical", "civil", "chemical"}},
	{"Business", []string{"business", "commerce", "accounting", "finance", "marketing", "management"}},
	{"Health Sciences", []string{"health", "nursing", "kinesiology", "medical", "pharmacy", "life science"}},
	{"Arts & Humanities", []string{"arts", "english", "history", "philosophy", "music", "drama", "film"}},
	{"Science", []string{"science", "biology", "chemistry", "physics", "mathematics", "math"}},
	{"Social Sciences", []string{"psychology", "sociology", "economics", "political", "criminology"}},
}

// DistributionBuckets are the average ranges reported by Summarize, highest first.
var DistributionBuckets = []models.DistributionBucket{
	{Label: "95-100%", Min: 95, Max: 100},
	{Label: "90-94%", Min: 90, Max: 94.99},
	{Label: "85-89%", Min: 85, Max: 89.99},
	{Label: "80-84%", Min: 80, Max: 84.99},
	{Label: "75-79%", Min: 75, Max: 79.99},
	{Label: "<75%", Min: 0, Max: 74.99},
}

// SummaryFilter narrows the records Summarize looks at.
// University matches the school exactly; Program is a case-insensitive substring.
type SummaryFilter struct {
	University string
	Program    string
}

// Category returns the keyword category of a program name.
func Category(program string) string {
	lower := strings.ToLower(program)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return otherCategory
}

// Summarize builds the analytics view over records.
func Summarize(records []*models.Record, f SummaryFilter) models.Summary {
	filtered := applySummaryFilter(records, f)

	summary := models.Summary{
		TotalRecords: len(filtered),
		AllSchools:   distinctSchools(records),
	}

	positive := make([]float64, 0, len(filtered))
	for _, r := range filtered {
		if avg, ok := r.AverageValue(); ok && avg > 0 {
			positive = append(positive, avg)
		}
	}
	if len(positive) > 0 {
		sorted := append([]float64(nil), positive...)
		sort.Float64s(sorted)
		mean, std := stat.PopMeanStdDev(positive, nil)
		summary.Mean = &mean
		summary.StdDev = &std
		summary.Min = &sorted[0]
		summary.Max = &sorted[len(sorted)-1]
		summary.Median = &sorted[len(sorted)/2]
	}

	summary.Universities = universityBreakdown(filtered)
	summary.Categories = categoryBreakdown(filtered)
	summary.Distribution = distribution(filtered)

	meaningful := Meaningful(Aggregate(filtered))
	summary.Competitive = topByMean(meaningful, true, competitiveLimit)
	summary.Accessible = topByMean(meaningful, false, accessibleLimit)
	summary.Scholarships = topScholarships(filtered, scholarshipLimit)
	return summary
}

func applySummaryFilter(records []*models.Record, f SummaryFilter) []*models.Record {
	program := strings.ToLower(f.Program)
	out := make([]*models.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if f.University != "" && r.School != f.University {
			continue
		}
		if program != "" && !strings.Contains(strings.ToLower(r.Program), program) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func distinctSchools(records []*models.Record) []string {
	seen := make(map[string]struct{})
	schools := make([]string, 0)
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := seen[r.School]; ok {
			continue
		}
		seen[r.School] = struct{}{}
		schools = append(schools, r.School)
	}
	sort.Strings(schools)
	return schools
}

func universityBreakdown(records []*models.Record) []models.UniversityStats {
	bySchool := make(map[string]*models.UniversityStats)
	totals := make(map[string]float64)
	for _, r := range records {
		avg, ok := r.AverageValue()
		if !ok {
			continue
		}
		u, exists := bySchool[r.School]
		if !exists {
			u = &models.UniversityStats{School: r.School, Min: avg, Max: avg}
			bySchool[r.School] = u
		}
		u.Count++
		totals[r.School] += avg
		u.Min = math.Min(u.Min, avg)
		u.Max = math.Max(u.Max, avg)
	}

	out := make([]models.UniversityStats, 0, len(bySchool))
	for school, u := range bySchool {
		u.Mean = totals[school] / float64(u.Count)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].School < out[j].School
	})
	return out
}

func categoryBreakdown(records []*models.Record) []models.CategoryStats {
	byName := make(map[string]*models.CategoryStats)
	totals := make(map[string]float64)
	for _, r := range records {
		avg, ok := r.AverageValue()
		if !ok {
			continue
		}
		name := Category(r.Program)
		c, exists := byName[name]
		if !exists {
			c = &models.CategoryStats{Name: name}
			byName[name] = c
		}
		c.Count++
		totals[name] += avg
	}

	out := make([]models.CategoryStats, 0, len(byName))
	for name, c := range byName {
		c.Mean = totals[name] / float64(c.Count)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func distribution(records []*models.Record) []models.DistributionBucket {
	out := make([]models.DistributionBucket, len(DistributionBuckets))
	copy(out, DistributionBuckets)
	for _, r := range records {
		avg, ok := r.AverageValue()
		if !ok {
			continue
		}
		for i := range out {
			if avg >= out[i].Min && avg <= out[i].Max {
				out[i].Count++
			}
		}
	}
	return out
}

func topByMean(groups []*models.ProgramStats, highest bool, limit int) []models.ProgramStats {
	sorted := append([]*models.ProgramStats(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if highest {
			return sorted[i].Mean > sorted[j].Mean
		}
		return sorted[i].Mean < sorted[j].Mean
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]models.ProgramStats, len(sorted))
	for i, g := range sorted {
		out[i] = *g
	}
	return out
}

func topScholarships(records []*models.Record, limit int) []models.ScholarshipEntry {
	out := make([]models.ScholarshipEntry, 0)
	for _, r := range records {
		amount := r.ScholarshipValue()
		if amount <= 0 {
			continue
		}
		avg, _ := r.AverageValue()
		out = append(out, models.ScholarshipEntry{
			Key:         models.ProgramKey{School: r.School, Program: r.Program},
			Average:     avg,
			Scholarship: amount,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Scholarship > out[j].Scholarship
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
