package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udaan/internal/registry/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/httputil"
	"udaan/pkg/requestcontext"
)

// Service defines the registry operations the handler exposes.
type Service interface {
	Search(ctx context.Context, term string, cats []models.Category) ([]models.ResultCard, error)

	SearchEntities(ctx context.Context, f models.EntityFilter, logQuery string) ([]models.ResultCard, error)
	SearchProperties(ctx context.Context, f models.PropertyFilter, logQuery string) ([]models.ResultCard, error)
	SearchTransactions(ctx context.Context, f models.TransactionFilter, logQuery string) ([]models.ResultCard, error)
	SearchDocuments(ctx context.Context, f models.DocumentFilter, logQuery string) ([]models.ResultCard, error)

	ListEntities(ctx context.Context) ([]models.Entity, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)

	GetEntity(ctx context.Context, id int64) (*models.Entity, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	GetDocument(ctx context.Context, id int64) (*models.Document, error)
}

// Handler wires registry endpoints to the registry service.
type Handler struct {
	service  Service
	logger   *slog.Logger
	searchMW []func(http.Handler) http.Handler
}

// New constructs a registry handler. searchMW wraps every search endpoint.
func New(service Service, logger *slog.Logger, searchMW ...func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, logger: logger, searchMW: searchMW}
}

// Register mounts the registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	search := r.With(h.searchMW...)
	search.Get("/api/search", h.HandleSearch)

	r.Route("/api/entities", func(r chi.Router) {
		r.Get("/", h.HandleListEntities)
		r.With(h.searchMW...).Get("/search", h.HandleSearchEntities)
		r.Get("/{id}", h.HandleGetEntity)
	})
	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/", h.HandleListProperties)
		r.With(h.searchMW...).Get("/search", h.HandleSearchProperties)
		r.Get("/{id}", h.HandleGetProperty)
	})
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", h.HandleListTransactions)
		r.With(h.searchMW...).Get("/search", h.HandleSearchTransactions)
		r.Get("/{id}", h.HandleGetTransaction)
	})
	r.Route("/api/documents", func(r chi.Router) {
		r.Get("/", h.HandleListDocuments)
		r.With(h.searchMW...).Get("/search", h.HandleSearchDocuments)
		r.Get("/{id}", h.HandleGetDocument)
	})
}

// HandleSearch handles GET /api/search?q=&type=.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cats, err := parseCategories(q.Get("type"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.respond(w, r, "general search failed", func(ctx context.Context) (any, error) {
		return h.service.Search(ctx, q.Get("q"), cats)
	})
}

func (h *Handler) HandleSearchEntities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := parseEntityFilter(q)
	h.respond(w, r, "entity search failed", func(ctx context.Context) (any, error) {
		return h.service.SearchEntities(ctx, f, models.QueryLog(q))
	})
}

func (h *Handler) HandleSearchProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := parsePropertyFilter(q)
	h.respond(w, r, "property search failed", func(ctx context.Context) (any, error) {
		return h.service.SearchProperties(ctx, f, models.QueryLog(q))
	})
}

func (h *Handler) HandleSearchTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseTransactionFilter(q)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.respond(w, r, "transaction search failed", func(ctx context.Context) (any, error) {
		return h.service.SearchTransactions(ctx, f, models.QueryLog(q))
	})
}

func (h *Handler) HandleSearchDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseDocumentFilter(q)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.respond(w, r, "document search failed", func(ctx context.Context) (any, error) {
		return h.service.SearchDocuments(ctx, f, models.QueryLog(q))
	})
}

func (h *Handler) HandleListEntities(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "failed to list entities", func(ctx context.Context) (any, error) {
		return h.service.ListEntities(ctx)
	})
}

func (h *Handler) HandleListProperties(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "failed to list properties", func(ctx context.Context) (any, error) {
		return h.service.ListProperties(ctx)
	})
}

func (h *Handler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "failed to list transactions", func(ctx context.Context) (any, error) {
		return h.service.ListTransactions(ctx)
	})
}

func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "failed to list documents", func(ctx context.Context) (any, error) {
		return h.service.ListDocuments(ctx)
	})
}

func (h *Handler) HandleGetEntity(w http.ResponseWriter, r *http.Request) {
	h.respondByID(w, r, "failed to fetch entity", func(ctx context.Context, id int64) (any, error) {
		return h.service.GetEntity(ctx, id)
	})
}

func (h *Handler) HandleGetProperty(w http.ResponseWriter, r *http.Request) {
	h.respondByID(w, r, "failed to fetch property", func(ctx context.Context, id int64) (any, error) {
		return h.service.GetProperty(ctx, id)
	})
}

func (h *Handler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	h.respondByID(w, r, "failed to fetch transaction", func(ctx context.Context, id int64) (any, error) {
		return h.service.GetTransaction(ctx, id)
	})
}

func (h *Handler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	h.respondByID(w, r, "failed to fetch document", func(ctx context.Context, id int64) (any, error) {
		return h.service.GetDocument(ctx, id)
	})
}

func (h *Handler) respondByID(w http.ResponseWriter, r *http.Request, failure string, fn func(context.Context, int64) (any, error)) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.respond(w, r, failure, func(ctx context.Context) (any, error) {
		return fn(ctx, id)
	})
}

// respond runs fn and writes its result as JSON. Unexpected failures are
// logged; client errors are only reported back.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, failure string, fn func(context.Context) (any, error)) {
	ctx := r.Context()
	result, err := fn(ctx)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, failure,
				"request_id", requestcontext.RequestID(ctx),
				"path", r.URL.Path,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
