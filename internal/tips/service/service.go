// Package service browses community tips: keyword categories, text search,
// category filter, ordering and per-category counts.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"unistats/internal/tips/models"
	dErrors "unistats/pkg/domain-errors"
	"unistats/pkg/platform/sentinel"
	"unistats/pkg/requestcontext"
)

// TipSource returns every stored tip.
type TipSource interface {
	ListAll(ctx context.Context) ([]*models.Tip, error)
}

// SortOrder names a listing order.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// Query narrows and orders the listing. Zero values mean all categories, no
// search and newest first.
type Query struct {
	Search   string
	Category models.Category
	Sort     SortOrder
}

type Service struct {
	source TipSource
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(source TipSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, errors.New("tips service: tip source is required")
	}
	s := &Service{
		source: source,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List categorizes every tip, counts categories over the whole set, then
// applies the search and category filter and sorts what is left.
func (s *Service) List(ctx context.Context, q Query) (*models.Listing, error) {
	if q.Category == "" {
		q.Category = models.CategoryAll
	}
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	if !ValidCategory(q.Category) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown category %q", q.Category))
	}
	switch q.Sort {
	case SortNewest, SortOldest, SortTitle:
	default:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown sort %q", q.Sort))
	}

	tips, err := s.source.ListAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch tips",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "tips are temporarily unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch tips")
	}

	counts := make(map[models.Category]int, len(categoryRules)+1)
	for _, c := range Categories() {
		counts[c] = 0
	}
	counts[models.CategoryAll] = len(tips)

	search := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]models.CategorizedTip, 0, len(tips))
	for _, tip := range tips {
		categories := Categorize(tip)
		for _, c := range categories {
			counts[c]++
		}
		if search != "" && !strings.Contains(strings.ToLower(tip.Title), search) &&
			!strings.Contains(strings.ToLower(tip.Content), search) {
			continue
		}
		if q.Category != models.CategoryAll && !slices.Contains(categories, q.Category) {
			continue
		}
		matched = append(matched, models.CategorizedTip{Tip: tip, Categories: categories})
	}

	sortTips(matched, q.Sort)
	return &models.Listing{Tips: matched, Counts: counts}, nil
}

func sortTips(tips []models.CategorizedTip, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(tips, func(i, j int) bool { return tips[i].CreatedAt.Before(tips[j].CreatedAt) })
	case SortTitle:
		col := collate.New(language.English)
		sort.SliceStable(tips, func(i, j int) bool { return col.CompareString(tips[i].Title, tips[j].Title) < 0 })
	default:
		sort.SliceStable(tips, func(i, j int) bool { return tips[i].CreatedAt.After(tips[j].CreatedAt) })
	}
}
