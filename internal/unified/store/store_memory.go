package store

import (
	"context"
	"sync"
	"time"

	"udaan/internal/unified/models"
	"udaan/pkg/platform/sentinel"
	"udaan/pkg/requestcontext"
)

type storedRecord struct {
	record    models.UnifiedRecord
	createdAt time.Time
	seq       int
}

// InMemoryStore keeps unified records in a map keyed by id. It follows the
// same upsert semantics as PostgresStore: a replaced record keeps its
// original creation time.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]storedRecord
	seq     int
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]storedRecord)}
}

func (s *InMemoryStore) Upsert(ctx context.Context, rec models.UnifiedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(ctx, rec)
	return nil
}

func (s *InMemoryStore) UpsertBatch(ctx context.Context, recs []models.UnifiedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.upsertLocked(ctx, rec)
	}
	return nil
}

func (s *InMemoryStore) upsertLocked(ctx context.Context, rec models.UnifiedRecord) {
	rec.Raw = append([]byte(nil), rec.Raw...)
	if existing, ok := s.records[rec.ID]; ok {
		existing.record = rec
		s.records[rec.ID] = existing
		return
	}
	s.seq++
	s.records[rec.ID] = storedRecord{record: rec, createdAt: requestcontext.Now(ctx), seq: s.seq}
}

func (s *InMemoryStore) List(_ context.Context, limit int) ([]models.UnifiedRecord, error) {
	limit = clampLimit(limit)
	s.mu.RLock()
	all := make([]storedRecord, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}
	s.mu.RUnlock()

	sortNewestFirst(all)
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]models.UnifiedRecord, len(all))
	for i, r := range all {
		out[i] = r.record
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.UnifiedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec := r.record
	rec.Raw = append([]byte(nil), rec.Raw...)
	return &rec, nil
}

// Len reports how many distinct ids are stored.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
