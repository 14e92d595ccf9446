package store

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"udaan/internal/unified/models"
	"udaan/pkg/platform/sentinel"
	"udaan/pkg/requestcontext"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func record(id, title string, source models.Source) models.UnifiedRecord {
	return models.UnifiedRecord{
		ID:     id,
		Type:   "entity",
		Title:  title,
		Source: source,
		Raw:    json.RawMessage(`{"id":` + id + `}`),
	}
}

func (s *InMemoryStoreSuite) TestUpsertReplacesById() {
	s.Require().NoError(s.store.Upsert(s.ctx, record("1", "first", models.SourceCERSAI)))
	s.Require().NoError(s.store.Upsert(s.ctx, record("1", "second", models.SourceMCA21)))

	s.Equal(1, s.store.Len())
	got, err := s.store.FindByID(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("second", got.Title)
	s.Equal(models.SourceMCA21, got.Source)
}

func (s *InMemoryStoreSuite) TestRepeatedBatchConverges() {
	batch := []models.UnifiedRecord{
		record("1", "a", models.SourceCERSAI),
		record("2", "b", models.SourceCERSAI),
		record("3", "c", models.SourceMCA21),
	}
	s.Require().NoError(s.store.UpsertBatch(s.ctx, batch))
	first, err := s.store.List(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().NoError(s.store.UpsertBatch(s.ctx, batch))
	second, err := s.store.List(s.ctx, 10)
	s.Require().NoError(err)

	s.Equal(3, s.store.Len())
	s.Equal(first, second)
}

func (s *InMemoryStoreSuite) TestListNewestFirst() {
	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"1", "2", "3"} {
		ctx := requestcontext.WithTime(s.ctx, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.store.Upsert(ctx, record(id, id, models.SourceUrban)))
	}

	got, err := s.store.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("3", got[0].ID)
	s.Equal("2", got[1].ID)
}

func (s *InMemoryStoreSuite) TestListClampsLimit() {
	for i := 0; i < MaxListLimit+5; i++ {
		s.Require().NoError(s.store.Upsert(s.ctx, record(strconv.Itoa(i), "x", models.SourceRural)))
	}

	got, err := s.store.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(got, MaxListLimit)
}

func (s *InMemoryStoreSuite) TestFindByIDMissing() {
	_, err := s.store.FindByID(s.ctx, "404")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestStoredRawIsCopied() {
	rec := record("7", "x", models.SourceMCA21)
	s.Require().NoError(s.store.Upsert(s.ctx, rec))
	rec.Raw[1] = 'X'

	got, err := s.store.FindByID(s.ctx, "7")
	s.Require().NoError(err)
	s.JSONEq(`{"id":7}`, string(got.Raw))
}
