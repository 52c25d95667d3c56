// Package tips serves the read-only community tips listing.
package tips

import (
	"log/slog"

	"unistats/internal/tips/handler"
	"unistats/internal/tips/service"
)

type Service = service.Service

type Handler = handler.Handler

// NewService constructs the tips service over a tip source.
func NewService(source service.TipSource, opts ...service.Option) (*Service, error) {
	return service.New(source, opts...)
}

func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
