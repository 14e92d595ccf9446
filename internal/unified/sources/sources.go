// Package sources fetches raw rows for each registry the unified pipeline reads.
package sources

import (
	"context"

	"udaan/internal/unified/models"
)

// Fetcher returns every row of one source kind.
type Fetcher[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

func (f FetchFunc[T]) Fetch(ctx context.Context) ([]T, error) { return f(ctx) }

// Set groups the fetchers of all four sources. A nil fetcher yields no rows.
type Set struct {
	CERSAI Fetcher[models.TransactionRow]
	MCA21  Fetcher[models.EntityRow]
	Rural  Fetcher[models.RuralPropertyRow]
	Urban  Fetcher[models.UrbanPropertyRow]
}

// Static serves a fixed slice of rows. It backs tests and feeds that have
// no upstream yet.
type Static[T any] struct {
	rows []T
}

// NewStatic returns a fetcher that always yields a copy of rows.
func NewStatic[T any](rows ...T) *Static[T] {
	return &Static[T]{rows: rows}
}

func (s *Static[T]) Fetch(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]T, len(s.rows))
	copy(out, s.rows)
	return out, nil
}
