package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"udaan/internal/ratelimit/metrics"
	"udaan/internal/ratelimit/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/httputil"
	"udaan/pkg/requestcontext"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

type Middleware struct {
	limiter Limiter
	limit   int
	window  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Middleware)

func WithWindow(window time.Duration) Option {
	return func(m *Middleware) {
		if window > 0 {
			m.window = window
		}
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

// New builds the per-IP search limiter. A limit of zero or less disables it.
func New(limiter Limiter, limit int, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		limit:   limit,
		window:  time.Minute,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.disabled() {
		m.logger.Info("search rate limiting disabled")
	}
	return m
}

func (m *Middleware) disabled() bool {
	return m.limiter == nil || m.limit <= 0
}

// Search throttles search requests by the client IP stored by the metadata
// middleware. Limiter errors fail open.
func (m *Middleware) Search(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled() {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.limiter.Allow(ctx, models.SearchKey(ip), m.limit, m.window)
		if err != nil {
			m.metrics.IncrementCheckFailures()
			m.logger.ErrorContext(ctx, "failed to check search rate limit", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			m.metrics.IncrementRejected()
			m.logger.WarnContext(ctx, "search rate limit exceeded", "client_ip", ip)
			writeRateLimitExceeded(w, result)
			return
		}

		m.metrics.IncrementAllowed()
		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:            string(dErrors.CodeRateLimited),
		ErrorDescription: "Too many searches from this address. Please try again later.",
		RetryAfter:       result.RetryAfter,
	})
}
