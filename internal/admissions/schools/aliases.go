// Package schools maps short university keys to the spellings people use for them.
package schools

import (
	"sort"
	"strings"
)

// AllKey selects every school.
const AllKey = "all"

// University is a selectable school with its display name.
type University struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

var aliases = map[string][]string{
	AllKey:         {""},
	"UofT":         {"university of toronto", "uoft", "uft", "u of t"},
	"Waterloo":     {"waterloo", "uw", "loo", "uwaterloo"},
	"McMaster":     {"mcmaster", "mac", "mcm"},
	"Queens":       {"queen", "queen's", "queens"},
	"UOttawa":      {"ottawa", "uottawa", "u of o"},
	"Carleton":     {"carleton", "cu"},
	"TMU":          {"ryerson", "tmu", "toronto metropolitan"},
	"Laurier":      {"laurier", "wlu", "wilfrid"},
	"York":         {"york", "yu"},
	"Western":      {"western", "uwo", "western ontario"},
	"Guelph":       {"guelph", "uog"},
	"Windsor":      {"windsor", "uwindsor"},
	"Brock":        {"brock"},
	"Ontario_Tech": {"ontario tech", "uoit", "oit"},
	"Lakehead":     {"lakehead"},
	"Laurentian":   {"laurentian"},
	"Nipissing":    {"nipissing"},
	"Trent":        {"trent"},
	"OCAD":         {"ocad", "ocadu"},
	"UBC":          {"ubc", "british columbia", "ubcv", "ubco"},
	"McGill":       {"mcgill"},
	"Alberta":      {"alberta", "uofa"},
	"Calgary":      {"calgary", "ucalgary"},
	"Dalhousie":    {"dalhousie", "dal"},
	"Concordia":    {"concordia"},
	"Acadia":       {"acadia"},
	"MountAllison": {"mount allison"},
}

var displayNames = map[string]string{
	AllKey:         "All",
	"UofT":         "University of Toronto",
	"Waterloo":     "University of Waterloo",
	"McMaster":     "McMaster University",
	"Queens":       "Queen's University",
	"UOttawa":      "University of Ottawa",
	"Carleton":     "Carleton University",
	"TMU":          "Toronto Metropolitan University",
	"Laurier":      "Wilfrid Laurier University",
	"York":         "York University",
	"Western":      "Western University",
	"Guelph":       "University of Guelph",
	"Windsor":      "University of Windsor",
	"Brock":        "Brock University",
	"Ontario_Tech": "Ontario Tech University",
	"Lakehead":     "Lakehead University",
	"Laurentian":   "Laurentian University",
	"Nipissing":    "Nipissing University",
	"Trent":        "Trent University",
	"OCAD":         "OCAD University",
	"UBC":          "University of British Columbia",
	"McGill":       "McGill University",
	"Alberta":      "University of Alberta",
	"Calgary":      "University of Calgary",
	"Dalhousie":    "Dalhousie University",
	"Concordia":    "Concordia University",
	"Acadia":       "Acadia University",
	"MountAllison": "Mount Allison University",
}

// Known reports whether key is a university key.
func Known(key string) bool {
	_, ok := aliases[key]
	return ok
}

// Matches reports whether school is one of the spellings listed under key.
// Matching is a case-insensitive substring test; unknown keys match nothing.
func Matches(school, key string) bool {
	criteria, ok := aliases[key]
	if !ok {
		return false
	}
	lower := strings.ToLower(school)
	for _, c := range criteria {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// List returns every university with "all" first and the rest by display name.
func List() []University {
	out := make([]University, 0, len(displayNames))
	for key, name := range displayNames {
		if key == AllKey {
			continue
		}
		out = append(out, University{Key: key, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return append([]University{{Key: AllKey, Name: displayNames[AllKey]}}, out...)
}
