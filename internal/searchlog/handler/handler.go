package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udaan/internal/searchlog/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/httputil"
	"udaan/pkg/requestcontext"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

// Reader lists recorded searches.
type Reader interface {
	Recent(ctx context.Context, limit int) ([]models.Entry, error)
}

// Handler serves the recent searches list.
type Handler struct {
	reader Reader
	logger *slog.Logger
}

func New(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{reader: reader, logger: logger}
}

// Register mounts the search log endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/searches", h.HandleRecent)
}

// HandleRecent handles GET /api/searches?limit=.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := httputil.QueryInt(r, "limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	entries, err := h.reader.Recent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch recent searches",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch recent searches"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entries)
}
