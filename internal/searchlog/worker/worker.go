package worker

import (
	"context"
	"log/slog"
	"time"

	"udaan/internal/searchlog/metrics"
	"udaan/internal/searchlog/models"
)

// drainTimeout bounds the flush of buffered entries after shutdown begins.
const drainTimeout = 2 * time.Second

// Store is where the worker writes entries.
type Store interface {
	Append(ctx context.Context, e models.Entry) error
}

// Worker consumes search log entries from a channel and persists them. A
// failed write is logged and the entry discarded; it never stops the worker.
type Worker struct {
	store   Store
	inbox   <-chan models.Entry
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(store Store, inbox <-chan models.Entry, logger *slog.Logger, m *metrics.Metrics) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger, metrics: m}
}

// Run persists entries until ctx is cancelled or the inbox is closed. On
// cancellation, entries already buffered are flushed before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case e, ok := <-w.inbox:
			if !ok {
				return nil
			}
			w.persist(ctx, e)
		}
	}
}

func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case e, ok := <-w.inbox:
			if !ok {
				return
			}
			w.persist(ctx, e)
		default:
			return
		}
	}
}

func (w *Worker) persist(ctx context.Context, e models.Entry) {
	if err := w.store.Append(ctx, e); err != nil {
		w.metrics.IncPersistFailures()
		w.logger.ErrorContext(ctx, "failed to log search", "type", e.Type, "error", err)
		return
	}
	w.metrics.IncRecorded()
}
