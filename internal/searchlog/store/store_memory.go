package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"udaan/internal/searchlog/models"
)

// InMemoryStore keeps search log entries in append order.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, e models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = int64(len(s.entries) + 1)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.entries = append(s.entries, e)
	return nil
}

// Recent returns up to limit entries, newest first. Entries with equal
// timestamps are ordered by descending id.
func (s *InMemoryStore) Recent(_ context.Context, limit int) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.entries)
	sortNewestFirst(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
