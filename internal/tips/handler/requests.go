package handler

import (
	"net/url"
	"strings"

	"unistats/internal/tips/models"
	"unistats/internal/tips/service"
	"unistats/pkg/platform/validation"
)

// ListParams are the query parameters of GET /tips.
type ListParams struct {
	Query    string `json:"q" validate:"max=200"`
	Category string `json:"category" validate:"omitempty,oneof=all applications academics admissions advice"`
	Sort     string `json:"sort" validate:"omitempty,oneof=newest oldest title"`
}

func parseListParams(v url.Values) (*ListParams, error) {
	p := &ListParams{
		Query:    strings.TrimSpace(v.Get("q")),
		Category: strings.ToLower(strings.TrimSpace(v.Get("category"))),
		Sort:     strings.ToLower(strings.TrimSpace(v.Get("sort"))),
	}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ListParams) toQuery() service.Query {
	return service.Query{
		Search:   p.Query,
		Category: models.Category(p.Category),
		Sort:     service.SortOrder(p.Sort),
	}
}
