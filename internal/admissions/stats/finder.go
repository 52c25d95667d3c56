package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"unistats/internal/admissions/models"
)

// SortField names a program finder ordering.
type SortField string

const (
	SortByProgram    SortField = "program"
	SortBySchool     SortField = "school"
	SortByAverage    SortField = "avg_average"
	SortByCount      SortField = "count"
	SortByMinAverage SortField = "min_average"
)

// DefaultFinderLimit caps the listings returned when the query sets no limit.
const DefaultFinderLimit = 50

// ValidSortField reports whether f is a known ordering.
func ValidSortField(f SortField) bool {
	switch f {
	case SortByProgram, SortBySchool, SortByAverage, SortByCount, SortByMinAverage:
		return true
	}
	return false
}

// ProgramQuery filters and orders program finder listings.
type ProgramQuery struct {
	Search           string
	MinMean          *float64
	MaxMean          *float64
	Schools          []string
	ScholarshipsOnly bool
	SortField        SortField
	Ascending        bool
	Limit            int
}

// FindPrograms lists (school, program) groups matching q. TotalMatches and
// SchoolCount describe the full match set before the limit is applied.
func FindPrograms(records []*models.Record, q ProgramQuery) models.ProgramSearch {
	groups := Aggregate(records)
	all := make([]*models.ProgramStats, 0, len(groups))
	for _, g := range groups {
		all = append(all, g)
	}
	sortByKey(all)

	search := strings.ToLower(strings.TrimSpace(q.Search))
	schools := make(map[string]struct{}, len(q.Schools))
	for _, s := range q.Schools {
		schools[s] = struct{}{}
	}

	matched := make([]models.ProgramListing, 0, len(all))
	for _, g := range all {
		if search != "" && !containsFold(g.Key.Program, search) && !containsFold(g.Key.School, search) {
			continue
		}
		if q.MinMean != nil && g.Mean < *q.MinMean {
			continue
		}
		if q.MaxMean != nil && g.Mean > *q.MaxMean {
			continue
		}
		if len(schools) > 0 {
			if _, ok := schools[g.Key.School]; !ok {
				continue
			}
		}
		if q.ScholarshipsOnly && g.ScholarshipCount == 0 {
			continue
		}
		matched = append(matched, models.ProgramListing{
			Key:             g.Key,
			Mean:            g.Mean,
			Min:             g.Min,
			Max:             g.Max,
			Count:           g.Count,
			HasScholarships: g.ScholarshipCount > 0,
			HasSuppApp:      g.SuppAppCount > 0,
		})
	}

	sortListings(matched, q.SortField, q.Ascending)

	distinct := make(map[string]struct{})
	for _, l := range matched {
		distinct[l.Key.School] = struct{}{}
	}

	result := models.ProgramSearch{
		TotalMatches: len(matched),
		SchoolCount:  len(distinct),
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultFinderLimit
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	result.Programs = matched
	return result
}

func sortListings(listings []models.ProgramListing, field SortField, ascending bool) {
	if field == "" {
		field = SortByCount
	}
	col := collate.New(language.English)

	compare := func(a, b models.ProgramListing) int {
		switch field {
		case SortByProgram:
			return col.CompareString(a.Key.Program, b.Key.Program)
		case SortBySchool:
			return col.CompareString(a.Key.School, b.Key.School)
		case SortByAverage:
			return compareFloat(a.Mean, b.Mean)
		case SortByMinAverage:
			return compareFloat(a.Min, b.Min)
		default:
			return a.Count - b.Count
		}
	}

	sort.SliceStable(listings, func(i, j int) bool {
		c := compare(listings[i], listings[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
