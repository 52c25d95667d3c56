package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"unistats/internal/admissions/calculator"
	"unistats/internal/admissions/models"
	"unistats/internal/admissions/schools"
	"unistats/internal/admissions/service"
	"unistats/internal/admissions/stats"
	"unistats/pkg/platform/httputil"
	"unistats/pkg/requestcontext"
)

// Service is the admissions query surface the handler depends on.
type Service interface {
	Search(ctx context.Context, q service.SearchQuery) (*service.SearchResult, error)
	Analytics(ctx context.Context, f stats.SummaryFilter) (*models.Summary, error)
	Programs(ctx context.Context, q stats.ProgramQuery) (*models.ProgramSearch, error)
	ChanceCandidates(ctx context.Context, search string) ([]*models.ProgramStats, error)
	Chances(ctx context.Context, q service.ChanceQuery) ([]models.ChanceResult, error)
	Calculate(ctx context.Context, courses []calculator.Course) calculator.Result
	Universities(ctx context.Context) []schools.University
}

// Handler wires the admissions endpoints to the service.
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

// Register mounts the admissions endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/universities", h.HandleUniversities)
	r.Route("/admissions", func(r chi.Router) {
		r.Get("/", h.HandleSearch)
		r.Get("/analytics", h.HandleAnalytics)
		r.Get("/programs", h.HandlePrograms)
		r.Get("/chance/programs", h.HandleChanceCandidates)
		r.Post("/chance", h.HandleChance)
	})
	r.Post("/calculator/average", h.HandleCalculate)
}

// HandleUniversities handles GET /universities.
func (h *Handler) HandleUniversities(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, UniversitiesResponse{Universities: h.service.Universities(r.Context())})
}

// HandleSearch handles GET /admissions.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		h.rejected(ctx, requestID, err)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Search(ctx, params.toQuery())
	if err != nil {
		h.failed(ctx, "admissions search failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "admissions searched",
		"request_id", requestID,
		"query", params.Query,
		"university", params.University,
		"matches", len(result.Records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toAdmissionsResponse(result))
}

// HandleAnalytics handles GET /admissions/analytics.
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	params, err := parseAnalyticsParams(r.URL.Query())
	if err != nil {
		h.rejected(ctx, requestID, err)
		httputil.WriteError(w, err)
		return
	}

	summary, err := h.service.Analytics(ctx, params.toFilter())
	if err != nil {
		h.failed(ctx, "admissions analytics failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAnalyticsResponse(summary))
}

// HandlePrograms handles GET /admissions/programs.
func (h *Handler) HandlePrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	params, err := parseProgramsParams(r.URL.Query())
	if err != nil {
		h.rejected(ctx, requestID, err)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Programs(ctx, params.toQuery())
	if err != nil {
		h.failed(ctx, "program finder failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toProgramsResponse(result))
}

// HandleChanceCandidates handles GET /admissions/chance/programs.
func (h *Handler) HandleChanceCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		h.rejected(ctx, requestID, err)
		httputil.WriteError(w, err)
		return
	}

	groups, err := h.service.ChanceCandidates(ctx, params.Query)
	if err != nil {
		h.failed(ctx, "chance candidates failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCandidatesResponse(groups))
}

// HandleChance handles POST /admissions/chance.
func (h *Handler) HandleChance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ChanceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	query := req.toQuery()
	results, err := h.service.Chances(ctx, query)
	if err != nil {
		h.failed(ctx, "chance evaluation failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "chances evaluated",
		"request_id", requestID,
		"requested", len(query.Programs),
		"evaluated", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toChanceResponse(query.Average, results))
}

// HandleCalculate handles POST /calculator/average.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CalculatorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCalculatorResponse(h.service.Calculate(ctx, req.toCourses())))
}

func (h *Handler) rejected(ctx context.Context, requestID string, err error) {
	h.logger.WarnContext(ctx, "invalid query parameters",
		"request_id", requestID,
		"error", err,
	)
}

func (h *Handler) failed(ctx context.Context, msg, requestID string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestID,
		"error", err,
	)
}
