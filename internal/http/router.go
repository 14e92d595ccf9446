// Package httpapi assembles the portal's chi router: shared middleware,
// operational endpoints and the module handlers.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"udaan/internal/platform/metrics"
	"udaan/pkg/platform/httputil"
	"udaan/pkg/platform/middleware/cors"
	"udaan/pkg/platform/middleware/metadata"
	"udaan/pkg/platform/middleware/requestid"
	"udaan/pkg/platform/middleware/requestlog"
	"udaan/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type Config struct {
	Logger        *slog.Logger
	AllowedOrigin string
	Metrics       *metrics.Metrics
	HealthChecks  map[string]HealthCheck
	// ClientIP resolves client addresses behind trusted proxies. Nil uses
	// the socket peer only.
	ClientIP      *metadata.Resolver
}

const healthTimeout = 2 * time.Second

// NewRouter wires the middleware chain and mounts the handlers.
func NewRouter(cfg Config, handlers ...Registrar) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	if cfg.ClientIP != nil {
		r.Use(cfg.ClientIP.Middleware)
	} else {
		r.Use(metadata.ClientMetadata)
	}
	r.Use(requestlog.Middleware(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.AllowOrigin(cfg.AllowedOrigin))
	r.Use(cfg.Metrics.Middleware)

	r.Get("/health", healthHandler(cfg.HealthChecks))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
