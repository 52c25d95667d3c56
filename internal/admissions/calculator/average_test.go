package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverages(t *testing.T) {
	t.Run("top six of more courses", func(t *testing.T) {
		res := Averages([]Course{
			{Name: "ENG4U", Grade: "90"},
			{Name: "MHF4U", Grade: "95"},
			{Name: "MCV4U", Grade: "97"},
			{Name: "SPH4U", Grade: "88"},
			{Name: "SCH4U", Grade: "92"},
			{Name: "SBI4U", Grade: "85"},
			{Name: "MDM4U", Grade: "60"},
		})
		assert.Equal(t, 7, res.ValidCourses)
		assert.InDelta(t, (90+95+97+88+92+85)/6.0, res.Top6Average, 1e-9)
		assert.InDelta(t, (90+95+97+88+92+85+60)/7.0, res.AllCoursesAverage, 1e-9)
	})

	t.Run("unparsable grades are ignored", func(t *testing.T) {
		res := Averages([]Course{
			{Name: "ENG4U", Grade: " 80 "},
			{Name: "MHF4U", Grade: ""},
			{Name: "ICS4U", Grade: "A+"},
			{Name: "CIA4U", Grade: "NaN"},
		})
		assert.Equal(t, 1, res.ValidCourses)
		assert.Equal(t, 80.0, res.Top6Average)
		assert.Equal(t, 80.0, res.AllCoursesAverage)
	})

	t.Run("grades with a suffix use their leading number", func(t *testing.T) {
		res := Averages([]Course{
			{Name: "ENG4U", Grade: "95%"},
			{Name: "MHF4U", Grade: "88 (final)"},
			{Name: "SPH4U", Grade: "%90"},
		})
		assert.Equal(t, 2, res.ValidCourses)
		assert.Equal(t, 91.5, res.AllCoursesAverage)
	})

	t.Run("fewer than six courses", func(t *testing.T) {
		res := Averages([]Course{{Grade: "70"}, {Grade: "90"}})
		assert.Equal(t, 80.0, res.Top6Average)
	})

	t.Run("no courses", func(t *testing.T) {
		assert.Equal(t, Result{}, Averages(nil))
	})
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"91", 91, true},
		{" 87.5 ", 87.5, true},
		{"95%", 95, true},
		{"8.5.3", 8.5, true},
		{".5", 0.5, true},
		{"1e2", 100, true},
		{"-3", -3, true},
		{"A+", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseGrade(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
