package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udaan/internal/unified/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/httputil"
	"udaan/pkg/requestcontext"
)

const defaultListLimit = 100

// Service defines the unified record queries the handler needs.
type Service interface {
	List(ctx context.Context, limit int) ([]models.UnifiedRecord, error)
	Get(ctx context.Context, id string) (*models.UnifiedRecord, error)
}

// Handler serves stored unified records.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a unified record handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the unified record endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/unified", h.HandleList)
	r.Get("/api/unified/{id}", h.HandleGet)
}

// HandleList handles GET /api/unified.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := httputil.QueryInt(r, "limit", defaultListLimit)
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	recs, err := h.service.List(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list unified records",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if recs == nil {
		recs = []models.UnifiedRecord{}
	}
	httputil.WriteJSON(w, http.StatusOK, recs)
}

// HandleGet handles GET /api/unified/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rec, err := h.service.Get(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to fetch unified record",
				"request_id", requestcontext.RequestID(ctx),
				"id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}
