// Package normalize canonicalizes the free-text identifiers found on admission records.
package normalize

import "strings"

// placeholderCodes are values people type when they do not know their OUAC code.
var placeholderCodes = map[string]struct{}{
	"":     {},
	"N/A":  {},
	"NA":   {},
	"NONE": {},
	"NULL": {},
	"IDK":  {},
	`N\A`:  {},
}

// OUACCode trims and upper-cases an OUAC program code.
// It reports false for blank input and for known placeholder values.
func OUACCode(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if _, placeholder := placeholderCodes[normalized]; placeholder {
		return "", false
	}
	return normalized, true
}
