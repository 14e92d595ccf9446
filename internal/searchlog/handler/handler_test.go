package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"udaan/internal/searchlog/models"
	"udaan/internal/searchlog/store"
	"udaan/pkg/testutil"
)

type failingReader struct{}

func (failingReader) Recent(context.Context, int) ([]models.Entry, error) {
	return nil, errors.New("db down")
}

type SearchLogHandlerSuite struct {
	suite.Suite
	store  *store.InMemoryStore
	router *chi.Mux
}

func TestSearchLogHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchLogHandlerSuite))
}

func (s *SearchLogHandlerSuite) SetupTest() {
	s.store = store.NewInMemory()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		s.Require().NoError(s.store.Append(context.Background(), models.Entry{
			Query:     fmt.Sprintf("q%d", i),
			Type:      "general",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	s.router = chi.NewRouter()
	New(s.store, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *SearchLogHandlerSuite) recent(path string) []models.Entry {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, path))
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	return testutil.UnmarshalResponse[[]models.Entry](s.T(), rr)
}

func (s *SearchLogHandlerSuite) TestDefaultLimit() {
	got := s.recent("/api/searches")
	s.Require().Len(got, 5)
	s.Equal("q59", got[0].Query)
}

func (s *SearchLogHandlerSuite) TestExplicitLimit() {
	s.Len(s.recent("/api/searches?limit=12"), 12)
}

func (s *SearchLogHandlerSuite) TestLimitBounds() {
	s.Len(s.recent("/api/searches?limit=500"), maxLimit)
	s.Len(s.recent("/api/searches?limit=-1"), defaultLimit)
	s.Len(s.recent("/api/searches?limit=abc"), defaultLimit)
}

func (s *SearchLogHandlerSuite) TestStoreFailure() {
	router := chi.NewRouter()
	New(failingReader{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(router)

	rr := testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/api/searches"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
}
