// Package calculator computes the course averages used on university applications.
package calculator

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TopCourses is how many of the highest grades make up an application average.
const TopCourses = 6

// Course is a high school course with the grade as typed by the student.
type Course struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// Result holds the computed averages. Averages are 0 when no grade parses.
type Result struct {
	AllCoursesAverage float64 `json:"all_courses_average"`
	Top6Average       float64 `json:"top6_average"`
	ValidCourses      int     `json:"valid_courses"`
}

// leadingNumber matches the decimal literal a typed grade starts with, so
// "95%" and "88 (final)" read as 95 and 88.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseGrade reads the number at the start of a typed grade.
func ParseGrade(raw string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	g, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}
	return g, true
}

// Averages ignores courses whose grade does not start with a number and
// averages the rest, both overall and over the six highest grades.
func Averages(courses []Course) Result {
	grades := make([]float64, 0, len(courses))
	for _, c := range courses {
		if g, ok := ParseGrade(c.Grade); ok {
			grades = append(grades, g)
		}
	}
	if len(grades) == 0 {
		return Result{}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(grades)))
	top := grades
	if len(top) > TopCourses {
		top = top[:TopCourses]
	}
	return Result{
		AllCoursesAverage: mean(grades),
		Top6Average:       mean(top),
		ValidCourses:      len(grades),
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
