package handler

import (
	"net/url"
	"strconv"
	"strings"

	"unistats/internal/admissions/calculator"
	"unistats/internal/admissions/models"
	"unistats/internal/admissions/service"
	"unistats/internal/admissions/stats"
	dErrors "unistats/pkg/domain-errors"
	pstrings "unistats/pkg/platform/strings"
	"unistats/pkg/platform/validation"
)

// SearchParams are the query parameters of GET /admissions.
type SearchParams struct {
	Query      string `json:"q" validate:"max=200"`
	University string `json:"university" validate:"max=64"`
}

func parseSearchParams(v url.Values) (*SearchParams, error) {
	p := &SearchParams{
		Query:      strings.TrimSpace(v.Get("q")),
		University: strings.TrimSpace(v.Get("university")),
	}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SearchParams) toQuery() service.SearchQuery {
	return service.SearchQuery{Query: p.Query, University: p.University}
}

// AnalyticsParams are the query parameters of GET /admissions/analytics.
type AnalyticsParams struct {
	University string `json:"university" validate:"max=200"`
	Program    string `json:"program" validate:"max=200"`
}

func parseAnalyticsParams(v url.Values) (*AnalyticsParams, error) {
	p := &AnalyticsParams{
		University: strings.TrimSpace(v.Get("university")),
		Program:    strings.TrimSpace(v.Get("program")),
	}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AnalyticsParams) toFilter() stats.SummaryFilter {
	return stats.SummaryFilter{University: p.University, Program: p.Program}
}

// ProgramsParams are the query parameters of GET /admissions/programs.
// School may be repeated or comma separated.
type ProgramsParams struct {
	Search           string   `json:"search" validate:"max=200"`
	MinAverage       *float64 `json:"min_average" validate:"omitempty,gte=0,lte=100"`
	MaxAverage       *float64 `json:"max_average" validate:"omitempty,gte=0,lte=100"`
	Schools          []string `json:"school" validate:"max=50,dive,max=200"`
	ScholarshipsOnly bool     `json:"scholarships_only"`
	Sort             string   `json:"sort" validate:"omitempty,oneof=program school avg_average count min_average"`
	Order            string   `json:"order" validate:"omitempty,oneof=asc desc"`
	Limit            int      `json:"limit" validate:"gte=0,lte=500"`
}

func parseProgramsParams(v url.Values) (*ProgramsParams, error) {
	p := &ProgramsParams{
		Search:  strings.TrimSpace(v.Get("search")),
		Schools: pstrings.SplitList(v["school"]),
		Sort:    strings.TrimSpace(v.Get("sort")),
		Order:   strings.ToLower(strings.TrimSpace(v.Get("order"))),
	}

	var err error
	if p.MinAverage, err = optionalFloat(v, "min_average"); err != nil {
		return nil, err
	}
	if p.MaxAverage, err = optionalFloat(v, "max_average"); err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(v.Get("scholarships_only")); raw != "" {
		if p.ScholarshipsOnly, err = strconv.ParseBool(raw); err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "scholarships_only must be a boolean")
		}
	}
	if raw := strings.TrimSpace(v.Get("limit")); raw != "" {
		if p.Limit, err = strconv.Atoi(raw); err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
		}
	}

	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func optionalFloat(v url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, key+" must be a number")
	}
	return &f, nil
}

func (p *ProgramsParams) toQuery() stats.ProgramQuery {
	return stats.ProgramQuery{
		Search:           p.Search,
		MinMean:          p.MinAverage,
		MaxMean:          p.MaxAverage,
		Schools:          p.Schools,
		ScholarshipsOnly: p.ScholarshipsOnly,
		SortField:        stats.SortField(p.Sort),
		Ascending:        p.Order == "asc",
		Limit:            p.Limit,
	}
}

// ProgramKeyRequest names one (school, program) group.
type ProgramKeyRequest struct {
	School  string `json:"school" validate:"notblank,max=200"`
	Program string `json:"program" validate:"notblank,max=300"`
}

// ChanceRequest is the body of POST /admissions/chance.
type ChanceRequest struct {
	Average  *float64            `json:"average" validate:"required,gte=0,lte=100"`
	Programs []ProgramKeyRequest `json:"programs" validate:"required,min=1,max=10,dive"`
}

func (r *ChanceRequest) Normalize() {
	for i := range r.Programs {
		r.Programs[i].School = strings.TrimSpace(r.Programs[i].School)
		r.Programs[i].Program = strings.TrimSpace(r.Programs[i].Program)
	}
}

// Validate implements httputil.Validatable.
func (r *ChanceRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ChanceRequest) toQuery() service.ChanceQuery {
	keys := make([]models.ProgramKey, 0, len(r.Programs))
	for _, p := range r.Programs {
		keys = append(keys, models.ProgramKey{School: p.School, Program: p.Program})
	}
	return service.ChanceQuery{Average: *r.Average, Programs: keys}
}

// CourseRequest is one row of the calculator.
type CourseRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Grade string `json:"grade" validate:"max=16"`
}

// CalculatorRequest is the body of POST /calculator/average.
type CalculatorRequest struct {
	Courses []CourseRequest `json:"courses" validate:"max=40,dive"`
}

func (r *CalculatorRequest) Normalize() {
	for i := range r.Courses {
		r.Courses[i].Name = strings.TrimSpace(r.Courses[i].Name)
		r.Courses[i].Grade = strings.TrimSpace(r.Courses[i].Grade)
	}
}

func (r *CalculatorRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CalculatorRequest) toCourses() []calculator.Course {
	out := make([]calculator.Course, 0, len(r.Courses))
	for _, c := range r.Courses {
		out = append(out, calculator.Course{Name: c.Name, Grade: c.Grade})
	}
	return out
}
