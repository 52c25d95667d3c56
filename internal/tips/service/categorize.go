package service

import (
	"strings"

	"unistats/internal/tips/models"
)

type categoryRule struct {
	category models.Category
	keywords []string
}

// categoryRules are checked in order; a tip joins every category it matches.
var categoryRules = []categoryRule{
	{models.CategoryApplications, []string{"application", "apply", "ouac", "supplement", "supp app", "personal statement"}},
	{models.CategoryAcademics, []string{"grade", "average", "gpa", "course", "mark", "prerequisite", "top 6"}},
	{models.CategoryAdmissions, []string{"admission", "accepted", "offer", "rejected", "waitlist", "defer"}},
	{models.CategoryAdvice, []string{"advice", "tip", "recommend", "suggest", "help", "guide"}},
}

// Categories lists the selectable categories, "all" first.
func Categories() []models.Category {
	out := []models.Category{models.CategoryAll}
	for _, r := range categoryRules {
		out = append(out, r.category)
	}
	return out
}

// ValidCategory reports whether c is a known category or "all".
func ValidCategory(c models.Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Categorize returns the categories whose keywords appear in the tip's title
// or content. A tip matching nothing counts as general advice.
func Categorize(tip *models.Tip) []models.Category {
	text := strings.ToLower(tip.Title + " " + tip.Content)
	var out []models.Category
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				out = append(out, r.category)
				break
			}
		}
	}
	if len(out) == 0 {
		return []models.Category{models.CategoryAdvice}
	}
	return out
}
