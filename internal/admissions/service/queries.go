package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"unistats/internal/admissions/calculator"
	"unistats/internal/admissions/models"
	"unistats/internal/admissions/schools"
	"unistats/internal/admissions/stats"
	dErrors "unistats/pkg/domain-errors"
)

const (
	// MaxChancePrograms caps how many programs one chance evaluation may name.
	MaxChancePrograms = 10
	// CandidateLimit caps the chance-me program picker.
	CandidateLimit = 20
)

// SearchQuery narrows the admissions listing. Empty or "all" values mean no filter.
type SearchQuery struct {
	Query      string
	University string
}

// SearchResult is the matching records and the mean of their averages.
type SearchResult struct {
	Records      []*models.Record
	TotalAverage float64
}

// Search filters the canonicalized snapshot by program text and university alias.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	university := strings.TrimSpace(q.University)
	if university != "" && university != schools.AllKey && !schools.Known(university) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown university %q", university))
	}
	records, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(strings.TrimSpace(q.Query))
	if text == schools.AllKey {
		text = ""
	}

	matched := make([]*models.Record, 0, len(records))
	var sum float64
	var n int
	for _, r := range records {
		if text != "" && !strings.Contains(strings.ToLower(r.Program), text) {
			continue
		}
		if university != "" && university != schools.AllKey && !schools.Matches(r.School, university) {
			continue
		}
		matched = append(matched, r)
		if avg, ok := r.AverageValue(); ok {
			sum += avg
			n++
		}
	}

	result := &SearchResult{Records: matched}
	if n > 0 {
		result.TotalAverage = math.Round(sum/float64(n)*100) / 100
	}
	return result, nil
}

// Analytics summarizes the filtered snapshot.
func (s *Service) Analytics(ctx context.Context, f stats.SummaryFilter) (*models.Summary, error) {
	records, err := s.filtered(ctx)
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(records, f)
	return &summary, nil
}

// Programs runs the program finder over the filtered snapshot.
func (s *Service) Programs(ctx context.Context, q stats.ProgramQuery) (*models.ProgramSearch, error) {
	if q.SortField != "" && !stats.ValidSortField(q.SortField) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown sort field %q", q.SortField))
	}
	if q.MinMean != nil && q.MaxMean != nil && *q.MinMean > *q.MaxMean {
		return nil, dErrors.New(dErrors.CodeValidation, "min_average must not exceed max_average")
	}
	records, err := s.filtered(ctx)
	if err != nil {
		return nil, err
	}
	result := stats.FindPrograms(records, q)
	return &result, nil
}

// ChanceCandidates lists the programs with enough data to evaluate, most data first.
func (s *Service) ChanceCandidates(ctx context.Context, search string) ([]*models.ProgramStats, error) {
	records, err := s.filtered(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Candidates(stats.Aggregate(records), search, CandidateLimit), nil
}

// ChanceQuery is a candidate average and the programs to compare it against.
type ChanceQuery struct {
	Average  float64
	Programs []models.ProgramKey
}

// Chances evaluates a candidate average against each requested program.
// Programs without enough data are left out of the result.
func (s *Service) Chances(ctx context.Context, q ChanceQuery) ([]models.ChanceResult, error) {
	if math.IsNaN(q.Average) || q.Average < 0 || q.Average > 100 {
		return nil, dErrors.New(dErrors.CodeValidation, "average must be between 0 and 100")
	}
	if len(q.Programs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one program is required")
	}
	if len(q.Programs) > s.maxPrograms {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d programs can be compared", s.maxPrograms))
	}

	ctx, span := s.tracer.Start(ctx, "admissions.Chances")
	defer span.End()
	span.SetAttributes(attribute.Int("programs.requested", len(q.Programs)))

	records, err := s.filtered(ctx)
	if err != nil {
		return nil, err
	}
	results := stats.EvaluateAll(stats.Aggregate(records), q.Programs, q.Average)
	span.SetAttributes(attribute.Int("programs.evaluated", len(results)))
	s.metrics.ObserveChances(results)
	return results, nil
}

// Calculate computes the all-course and top-6 averages. It does not touch the snapshot.
func (s *Service) Calculate(_ context.Context, courses []calculator.Course) calculator.Result {
	return calculator.Averages(courses)
}

// Universities lists the university directory.
func (s *Service) Universities(_ context.Context) []schools.University {
	return schools.List()
}
