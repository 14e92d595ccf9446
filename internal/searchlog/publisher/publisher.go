// Package publisher hands search log entries to the background worker
// without blocking the request that ran the search.
package publisher

import (
	"context"
	"log/slog"

	"udaan/internal/searchlog/metrics"
	"udaan/internal/searchlog/models"
	"udaan/pkg/requestcontext"
)

// Publisher enqueues entries onto a buffered channel. When the buffer is
// full the entry is dropped and counted.
type Publisher struct {
	ch      chan models.Entry
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// New creates a publisher with the given buffer size.
func New(buffer int, opts ...Option) *Publisher {
	if buffer < 1 {
		buffer = 1
	}
	p := &Publisher{ch: make(chan models.Entry, buffer), logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit records that a search ran. It never blocks.
func (p *Publisher) Emit(ctx context.Context, query, searchType string) {
	entry := models.Entry{Query: query, Type: searchType, CreatedAt: requestcontext.Now(ctx)}
	select {
	case p.ch <- entry:
	default:
		p.metrics.IncDropped()
		p.logger.WarnContext(ctx, "search log buffer full, dropping entry",
			"type", searchType,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

// Entries is the channel the worker drains.
func (p *Publisher) Entries() <-chan models.Entry {
	return p.ch
}
