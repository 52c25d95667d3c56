package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The stages below run in order: prefixes, parentheticals, qualifier tokens,
// hyphenated co-op, whitespace. Qualifiers can sit inside parentheticals, so
// reordering changes the resulting keys.
var (
	degreePrefix     = regexp.MustCompile(`(?i)^(bsc|ba|beng|honours?|hon\.?)\s+`)
	universityPrefix = regexp.MustCompile(`(?i)^university of \w+\s+`)
	parenthetical    = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	qualifierTokens  = regexp.MustCompile(`(?i)\s*(co-?op|coop|honours?|hon\.?|with co-?op|only)\s*`)
	hyphenCoop       = regexp.MustCompile(`(?i)\s*-\s*(co-?op|coop)\s*`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ProgramName reduces a free-text program name to a loose grouping key, e.g.
// "Computer Science (Co-op)" and "Honours Computer Science Coop" both become
// "computer science". The key is never meant for display.
func ProgramName(program string) string {
	normalized := strings.ToLower(strings.TrimSpace(program))
	if folded, _, err := transform.String(foldAccents, normalized); err == nil {
		normalized = folded
	}

	normalized = degreePrefix.ReplaceAllString(normalized, "")
	normalized = universityPrefix.ReplaceAllString(normalized, "")

	normalized = parenthetical.ReplaceAllString(normalized, " ")
	normalized = qualifierTokens.ReplaceAllString(normalized, " ")
	normalized = hyphenCoop.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(normalized, " "))
}

// CollapseSpaces trims s and replaces every whitespace run with a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
