package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "trims and drops empties", input: []string{" a ", "", "   ", "b"}, want: []string{"a", "b"}},
		{name: "first spelling wins", input: []string{"Queens", "queens", "QUEENS"}, want: []string{"Queens"}},
		{name: "order preserved", input: []string{"c", "a", "b", "a"}, want: []string{"c", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList([]string{"University of Waterloo, Queen's University", "university of waterloo", "McMaster University"})
	assert.Equal(t, []string{"University of Waterloo", "Queen's University", "McMaster University"}, got)
	assert.Empty(t, SplitList(nil))
}
