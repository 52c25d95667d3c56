package handler

import (
	"math"

	"unistats/internal/admissions/calculator"
	"unistats/internal/admissions/models"
	"unistats/internal/admissions/schools"
	"unistats/internal/admissions/service"
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round1Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round1(*v)
	return &r
}

// AdmissionsResponse is the body of GET /admissions.
type AdmissionsResponse struct {
	Admissions   []*models.Record `json:"admissions"`
	Count        int              `json:"count"`
	TotalAverage float64          `json:"total_average"`
}

func toAdmissionsResponse(res *service.SearchResult) AdmissionsResponse {
	return AdmissionsResponse{
		Admissions:   res.Records,
		Count:        len(res.Records),
		TotalAverage: res.TotalAverage,
	}
}

type UniversityResponse struct {
	School     string  `json:"school"`
	Count      int     `json:"count"`
	AvgAverage float64 `json:"avg_average"`
	MinAverage float64 `json:"min_average"`
	MaxAverage float64 `json:"max_average"`
	Range      float64 `json:"range"`
}

type CategoryResponse struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	AvgAverage float64 `json:"avg_average"`
}

type BucketResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ScholarshipResponse struct {
	School      string  `json:"school"`
	Program     string  `json:"program"`
	Average     float64 `json:"average"`
	Scholarship float64 `json:"scholarship"`
}

// AnalyticsResponse is the body of GET /admissions/analytics.
type AnalyticsResponse struct {
	TotalRecords int                   `json:"total_records"`
	Average      *float64              `json:"overall_average"`
	Min          *float64              `json:"min_average"`
	Max          *float64              `json:"max_average"`
	Median       *float64              `json:"median_average"`
	StdDev       *float64              `json:"std_dev"`
	Universities []UniversityResponse  `json:"universities"`
	Categories   []CategoryResponse    `json:"categories"`
	Distribution []BucketResponse      `json:"distribution"`
	Competitive  []ProgramResponse     `json:"most_competitive"`
	Accessible   []ProgramResponse     `json:"most_accessible"`
	Scholarships []ScholarshipResponse `json:"top_scholarships"`
	AllSchools   []string              `json:"all_schools"`
}

func toAnalyticsResponse(s *models.Summary) AnalyticsResponse {
	resp := AnalyticsResponse{
		TotalRecords: s.TotalRecords,
		Average:      round1Ptr(s.Mean),
		Min:          s.Min,
		Max:          s.Max,
		Median:       s.Median,
		StdDev:       round1Ptr(s.StdDev),
		Universities: make([]UniversityResponse, 0, len(s.Universities)),
		Categories:   make([]CategoryResponse, 0, len(s.Categories)),
		Distribution: make([]BucketResponse, 0, len(s.Distribution)),
		Competitive:  make([]ProgramResponse, 0, len(s.Competitive)),
		Accessible:   make([]ProgramResponse, 0, len(s.Accessible)),
		Scholarships: make([]ScholarshipResponse, 0, len(s.Scholarships)),
		AllSchools:   s.AllSchools,
	}
	for _, u := range s.Universities {
		resp.Universities = append(resp.Universities, UniversityResponse{
			School:     u.School,
			Count:      u.Count,
			AvgAverage: round1(u.Mean),
			MinAverage: u.Min,
			MaxAverage: u.Max,
			Range:      round1(u.Max - u.Min),
		})
	}
	for _, c := range s.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{Name: c.Name, Count: c.Count, AvgAverage: round1(c.Mean)})
	}
	for _, b := range s.Distribution {
		resp.Distribution = append(resp.Distribution, BucketResponse{Label: b.Label, Count: b.Count})
	}
	for _, g := range s.Competitive {
		resp.Competitive = append(resp.Competitive, fromStats(g))
	}
	for _, g := range s.Accessible {
		resp.Accessible = append(resp.Accessible, fromStats(g))
	}
	for _, e := range s.Scholarships {
		resp.Scholarships = append(resp.Scholarships, ScholarshipResponse{
			School:      e.Key.School,
			Program:     e.Key.Program,
			Average:     e.Average,
			Scholarship: e.Scholarship,
		})
	}
	return resp
}

// ProgramResponse is one (school, program) group.
type ProgramResponse struct {
	School          string  `json:"school"`
	Program         string  `json:"program"`
	AvgAverage      float64 `json:"avg_average"`
	MinAverage      float64 `json:"min_average"`
	MaxAverage      float64 `json:"max_average"`
	Count           int     `json:"count"`
	HasScholarships bool    `json:"has_scholarships"`
	HasSuppApp      bool    `json:"has_supp_app"`
}

func fromStats(g models.ProgramStats) ProgramResponse {
	return ProgramResponse{
		School:          g.Key.School,
		Program:         g.Key.Program,
		AvgAverage:      round1(g.Mean),
		MinAverage:      g.Min,
		MaxAverage:      g.Max,
		Count:           g.Count,
		HasScholarships: g.ScholarshipCount > 0,
		HasSuppApp:      g.SuppAppCount > 0,
	}
}

// ProgramsResponse is the body of GET /admissions/programs.
type ProgramsResponse struct {
	Programs     []ProgramResponse `json:"programs"`
	TotalMatches int               `json:"total_matches"`
	SchoolCount  int               `json:"school_count"`
}

func toProgramsResponse(res *models.ProgramSearch) ProgramsResponse {
	out := ProgramsResponse{
		Programs:     make([]ProgramResponse, 0, len(res.Programs)),
		TotalMatches: res.TotalMatches,
		SchoolCount:  res.SchoolCount,
	}
	for _, l := range res.Programs {
		out.Programs = append(out.Programs, ProgramResponse{
			School:          l.Key.School,
			Program:         l.Key.Program,
			AvgAverage:      round1(l.Mean),
			MinAverage:      l.Min,
			MaxAverage:      l.Max,
			Count:           l.Count,
			HasScholarships: l.HasScholarships,
			HasSuppApp:      l.HasSuppApp,
		})
	}
	return out
}

// CandidatesResponse is the body of GET /admissions/chance/programs.
type CandidatesResponse struct {
	Programs []ProgramResponse `json:"programs"`
}

func toCandidatesResponse(groups []*models.ProgramStats) CandidatesResponse {
	out := CandidatesResponse{Programs: make([]ProgramResponse, 0, len(groups))}
	for _, g := range groups {
		out.Programs = append(out.Programs, fromStats(*g))
	}
	return out
}

type ChanceResultResponse struct {
	School         string  `json:"school"`
	Program        string  `json:"program"`
	AvgAverage     float64 `json:"avg_admitted_average"`
	MinAverage     float64 `json:"min_average"`
	MaxAverage     float64 `json:"max_average"`
	DataPoints     int     `json:"data_points"`
	Chance         string  `json:"chance"`
	Percentile     float64 `json:"percentile"`
	Recommendation string  `json:"recommendation"`
}

// ChanceResponse is the body of POST /admissions/chance.
type ChanceResponse struct {
	Average float64                `json:"average"`
	Results []ChanceResultResponse `json:"results"`
}

func toChanceResponse(average float64, results []models.ChanceResult) ChanceResponse {
	out := ChanceResponse{Average: average, Results: make([]ChanceResultResponse, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, ChanceResultResponse{
			School:         r.Key.School,
			Program:        r.Key.Program,
			AvgAverage:     round1(r.Mean),
			MinAverage:     r.Min,
			MaxAverage:     r.Max,
			DataPoints:     r.DataPoints,
			Chance:         string(r.Chance),
			Percentile:     round1(r.Percentile),
			Recommendation: r.Recommendation,
		})
	}
	return out
}

// CalculatorResponse is the body of POST /calculator/average.
type CalculatorResponse struct {
	AllCoursesAverage float64 `json:"all_courses_average"`
	Top6Average       float64 `json:"top6_average"`
	ValidCourses      int     `json:"valid_courses"`
}

func toCalculatorResponse(r calculator.Result) CalculatorResponse {
	return CalculatorResponse{
		AllCoursesAverage: round1(r.AllCoursesAverage),
		Top6Average:       round1(r.Top6Average),
		ValidCourses:      r.ValidCourses,
	}
}

// UniversitiesResponse is the body of GET /universities.
type UniversitiesResponse struct {
	Universities []schools.University `json:"universities"`
}
