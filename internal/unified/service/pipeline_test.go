package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"udaan/internal/unified/models"
	"udaan/internal/unified/sources"
	"udaan/internal/unified/store"
	"udaan/pkg/testutil"
)

func ptr[T any](v T) *T { return &v }

type PipelineSuite struct {
	suite.Suite
	store *store.InMemoryStore
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (s *PipelineSuite) SetupTest() {
	s.store = store.NewInMemory()
}

func (s *PipelineSuite) TestRunPersistsEverySource() {
	set := sources.Set{
		CERSAI: sources.NewStatic(models.TransactionRow{ID: ptr(int64(101)), Type: ptr("Mortgage")}),
		MCA21:  sources.NewStatic(models.EntityRow{ID: ptr(int64(201)), Name: ptr("Acme")}, models.EntityRow{ID: ptr(int64(202))}),
		Rural:  sources.NewStatic(models.RuralPropertyRow{ID: ptr(int64(301))}),
		Urban:  sources.NewStatic[models.UrbanPropertyRow](),
	}
	p := NewPipeline(set, s.store, WithConcurrency(2))

	summary, err := p.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(4, summary.Total)
	s.Equal(4, summary.Persisted)
	s.Equal(2, summary.Fetched[models.SourceMCA21])
	s.Equal(0, summary.Fetched[models.SourceUrban])
	s.Equal(4, s.store.Len())

	rec, err := s.store.FindByID(context.Background(), "201")
	s.Require().NoError(err)
	s.Equal("Acme", rec.Title)
}

func (s *PipelineSuite) TestNilFetcherIsEmpty() {
	p := NewPipeline(sources.Set{MCA21: sources.NewStatic(models.EntityRow{ID: ptr(int64(1))})}, s.store)

	summary, err := p.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(1, summary.Total)
}

func (s *PipelineSuite) TestRepeatedRunsConverge() {
	set := sources.Set{
		CERSAI: sources.NewStatic(models.TransactionRow{ID: ptr(int64(1))}, models.TransactionRow{ID: ptr(int64(2))}),
	}
	p := NewPipeline(set, s.store)

	_, err := p.Run(context.Background())
	s.Require().NoError(err)
	_, err = p.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(2, s.store.Len())
}

func (s *PipelineSuite) TestCollidingIDsKeepLaterSource() {
	set := sources.Set{
		CERSAI: sources.NewStatic(models.TransactionRow{ID: ptr(int64(1))}),
		MCA21:  sources.NewStatic(models.EntityRow{ID: ptr(int64(1)), Name: ptr("Acme")}),
	}
	p := NewPipeline(set, s.store, WithConcurrency(4))

	summary, err := p.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(2, summary.Total)
	s.Equal(1, summary.Persisted)

	rec, err := s.store.FindByID(context.Background(), "1")
	s.Require().NoError(err)
	s.Equal(models.SourceMCA21, rec.Source)
}

func (s *PipelineSuite) TestFetchErrorAbortsRun() {
	boom := errors.New("connection refused")
	set := sources.Set{
		CERSAI: sources.NewStatic(models.TransactionRow{ID: ptr(int64(1))}),
		MCA21: sources.FetchFunc[models.EntityRow](func(context.Context) ([]models.EntityRow, error) {
			return nil, boom
		}),
	}
	p := NewPipeline(set, s.store)

	_, err := p.Run(context.Background())
	s.Require().Error(err)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "MCA21")
	s.Equal(0, s.store.Len())
}

func (s *PipelineSuite) TestWriteErrorSurfaces() {
	boom := errors.New("disk full")
	w := &failingWriter{failOn: "2", err: boom}
	set := sources.Set{
		CERSAI: sources.NewStatic(models.TransactionRow{ID: ptr(int64(1))}, models.TransactionRow{ID: ptr(int64(2))}),
	}

	_, err := NewPipeline(set, w, WithConcurrency(1)).Run(context.Background())
	s.ErrorIs(err, boom)
}

func (s *PipelineSuite) TestWriteErrorCountsCommittedRecords() {
	w := &failingWriter{failOn: "3", err: errors.New("disk full")}
	set := sources.Set{
		CERSAI: sources.NewStatic(
			models.TransactionRow{ID: ptr(int64(1))},
			models.TransactionRow{ID: ptr(int64(2))},
			models.TransactionRow{ID: ptr(int64(3))},
		),
	}

	summary, err := NewPipeline(set, w, WithConcurrency(1)).Run(context.Background())
	s.Require().Error(err)
	s.Equal(3, summary.Total)
	s.Equal(2, summary.Persisted)
}

type failingWriter struct {
	mu     sync.Mutex
	failOn string
	err    error
	seen   []string
}

func (w *failingWriter) Upsert(_ context.Context, rec models.UnifiedRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seen = append(w.seen, rec.ID)
	if rec.ID == w.failOn {
		return w.err
	}
	return nil
}

func TestLatestByID(t *testing.T) {
	in := []models.UnifiedRecord{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b"},
		{ID: "1", Title: "c"},
		{ID: "", Title: "d"},
		{ID: "", Title: "e"},
	}

	out := latestByID(in)

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].Title)
	assert.Equal(t, "b", out[1].Title)
	assert.Equal(t, "e", out[2].Title)
}

func TestPipelineRefreshScenario(t *testing.T) {
	testutil.Given(t, "a stored entity from an earlier run", func(t *testing.T) {
		st := store.NewInMemory()
		first := sources.Set{MCA21: sources.NewStatic(models.EntityRow{ID: ptr(int64(7)), Name: ptr("Acme"), CompanyStatus: ptr("Active")})}
		_, err := NewPipeline(first, st).Run(context.Background())
		require.NoError(t, err)

		testutil.When(t, "the registry renames the entity and the pipeline reruns", func(t *testing.T) {
			second := sources.Set{MCA21: sources.NewStatic(models.EntityRow{ID: ptr(int64(7)), Name: ptr("Acme Holdings"), CompanyStatus: ptr("Active")})}
			summary, err := NewPipeline(second, st).Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, summary.Persisted)

			testutil.Then(t, "the single stored record carries the new name", func(t *testing.T) {
				assert.Equal(t, 1, st.Len())
				rec, err := st.FindByID(context.Background(), "7")
				require.NoError(t, err)
				assert.Equal(t, "Acme Holdings", rec.Title)
			})
		})
	})
}
