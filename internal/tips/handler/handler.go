package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"unistats/internal/tips/models"
	"unistats/internal/tips/service"
	"unistats/pkg/platform/httputil"
	"unistats/pkg/requestcontext"
)

// Service is the read-only tips surface.
type Service interface {
	List(ctx context.Context, q service.Query) (*models.Listing, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the tips endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/tips", h.HandleList)
}

// HandleList handles GET /tips.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	params, err := parseListParams(r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid tips query",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	listing, err := h.service.List(ctx, params.toQuery())
	if err != nil {
		h.logger.ErrorContext(ctx, "tips listing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toListResponse(listing))
}
