// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim trims each value and drops empties and duplicates. Two values
// are duplicates when they match case-insensitively; the first spelling wins.
//
//	DedupeAndTrim([]string{"  Queens ", "queens", "", "Waterloo"})
//	// []string{"Queens", "Waterloo"}
func DedupeAndTrim(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// SplitList expands repeated and comma-separated query values into one
// deduplicated list, e.g. ?school=a,b&school=c.
func SplitList(values []string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return DedupeAndTrim(parts)
}
