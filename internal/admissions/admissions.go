// Package admissions ties the admissions record source, snapshot cache and
// HTTP surface together.
package admissions

import (
	"log/slog"

	"unistats/internal/admissions/handler"
	"unistats/internal/admissions/service"
)

// Service exposes the admissions queries.
type Service = service.Service

// Handler wires HTTP endpoints to the admissions service.
type Handler = handler.Handler

// NewService constructs the admissions service over a record source.
func NewService(source service.RecordSource, opts ...service.Option) (*Service, error) {
	return service.New(source, opts...)
}

// NewHandler constructs the HTTP handler for the public admissions routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
