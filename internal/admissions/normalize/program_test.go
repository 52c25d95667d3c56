package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"parenthetical co-op", "Computer Science (Co-op)", "computer science"},
		{"honours prefix and coop suffix", "Honours Computer Science Coop", "computer science"},
		{"honours prefix and hyphenated co-op", "Honours Computer Science Co-op", "computer science"},
		{"degree prefix", "BSc Biology", "biology"},
		{"university prefix", "University of Waterloo Computer Science", "computer science"},
		{"with co-op qualifier", "Engineering with Co-op", "engineering"},
		{"only qualifier and spacing", "  Mathematics   Only ", "mathematics"},
		{"accents folded", "Génie Logiciel", "genie logiciel"},
		{"plain name untouched apart from case", "Kinesiology", "kinesiology"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgramName(tt.input))
		})
	}
}

func TestProgramNameGroupsVariants(t *testing.T) {
	variants := []string{
		"Computer Science (Co-op)",
		"Computer Science Honours Coop",
		"Honours Computer Science Co-op",
	}
	for _, v := range variants {
		assert.Equal(t, "computer science", ProgramName(v), v)
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Computer Science", CollapseSpaces("  Computer \t  Science\n"))
	assert.Equal(t, "", CollapseSpaces(" \t "))
}
