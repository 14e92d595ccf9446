package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"udaan/internal/registry/handler/mocks"
	"udaan/internal/registry/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type RegistryHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  *chi.Mux
}

func TestRegistryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistryHandlerSuite))
}

func (s *RegistryHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *RegistryHandlerSuite) get(path string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, path))
}

func (s *RegistryHandlerSuite) TestGeneralSearch() {
	s.Run("returns cards", func() {
		s.service.EXPECT().Search(gomock.Any(), "acme", []models.Category(nil)).
			Return([]models.ResultCard{{ID: 1, Type: models.CategoryEntity, Title: "Acme", Source: "MCA"}}, nil)

		rr := s.get("/api/search?q=acme")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		cards := testutil.UnmarshalResponse[[]models.ResultCard](s.T(), rr)
		s.Require().Len(cards, 1)
		s.Equal("Acme", cards[0].Title)
	})

	s.Run("type restricts categories", func() {
		s.service.EXPECT().Search(gomock.Any(), "pune",
			[]models.Category{models.CategoryProperty, models.CategoryDocument}).
			Return([]models.ResultCard{}, nil)

		rr := s.get("/api/search?q=pune&type=Property,document,property")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("unknown type rejected", func() {
		rr := s.get("/api/search?q=pune&type=vehicle")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("missing query", func() {
		s.service.EXPECT().Search(gomock.Any(), "", gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "Query parameter is required"))

		rr := s.get("/api/search")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("internal error hides detail", func() {
		s.service.EXPECT().Search(gomock.Any(), "x", gomock.Any()).
			Return(nil, dErrors.Wrap(errors.New("pq: connection refused"), dErrors.CodeInternal, "search failed"))

		rr := s.get("/api/search?q=x")

		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		s.NotContains(rr.Body.String(), "connection refused")
	})
}

func (s *RegistryHandlerSuite) TestEntitySearch() {
	s.Run("maps both individual and corporate fields", func() {
		s.service.EXPECT().SearchEntities(gomock.Any(),
			models.EntityFilter{IDType: "PAN", CompanyName: "Acme", CompanyStatus: "active"},
			gomock.Any(),
		).DoAndReturn(func(_ any, _ models.EntityFilter, logQuery string) ([]models.ResultCard, error) {
			s.JSONEq(`{"idType":"PAN","companyName":"Acme","companyStatus":"active"}`, logQuery)
			return []models.ResultCard{}, nil
		})

		rr := s.get("/api/entities/search?idType=PAN&companyName=Acme&companyStatus=active")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("no filters", func() {
		s.service.EXPECT().SearchEntities(gomock.Any(), models.EntityFilter{}, "{}").
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "At least one search parameter is required"))

		rr := s.get("/api/entities/search")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *RegistryHandlerSuite) TestPropertySearchSplitsTypes() {
	s.service.EXPECT().SearchProperties(gomock.Any(),
		models.PropertyFilter{City: "Pune", PropertyTypes: []string{"residential", "commercial"}},
		gomock.Any(),
	).Return([]models.ResultCard{}, nil)

	rr := s.get("/api/properties/search?city=Pune&property_type=Residential,%20commercial")

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
}

func (s *RegistryHandlerSuite) TestTransactionSearch() {
	s.Run("parses ranges", func() {
		minAmount, maxAmount := 1000.0, 5000.0
		s.service.EXPECT().SearchTransactions(gomock.Any(),
			models.TransactionFilter{
				Types:     []string{"mortgage"},
				DateFrom:  "2024-01-01",
				DateTo:    "2024-12-31",
				MinAmount: &minAmount,
				MaxAmount: &maxAmount,
			},
			gomock.Any(),
		).Return([]models.ResultCard{}, nil)

		rr := s.get("/api/transactions/search?type=Mortgage&date_from=2024-01-01&date_to=2024-12-31&min_amount=1000&max_amount=5000")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("bad amount", func() {
		rr := s.get("/api/transactions/search?min_amount=lots")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("bad date", func() {
		rr := s.get("/api/transactions/search?date_from=15-03-2024")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *RegistryHandlerSuite) TestDocumentSearch() {
	s.Run("parses numeric fields", func() {
		id, year := int64(4), 2023
		s.service.EXPECT().SearchDocuments(gomock.Any(),
			models.DocumentFilter{DocumentID: &id, YearFiled: &year, FiledBy: "Acme"},
			gomock.Any(),
		).Return([]models.ResultCard{}, nil)

		rr := s.get("/api/documents/search?documentId=4&yearFiled=2023&filedBy=Acme")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("bad document id", func() {
		rr := s.get("/api/documents/search?documentId=abc")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *RegistryHandlerSuite) TestList() {
	s.service.EXPECT().ListEntities(gomock.Any()).
		Return([]models.Entity{{ID: 1, Name: "Acme", CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}}, nil)

	rr := s.get("/api/entities")

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	got := testutil.UnmarshalResponse[[]map[string]any](s.T(), rr)
	s.Require().Len(got, 1)
	s.Equal("Acme", got[0]["name"])
}

func (s *RegistryHandlerSuite) TestGetByID() {
	s.Run("found", func() {
		s.service.EXPECT().GetProperty(gomock.Any(), int64(7)).Return(&models.Property{ID: 7}, nil)

		rr := s.get("/api/properties/7")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("not found", func() {
		s.service.EXPECT().GetTransaction(gomock.Any(), int64(8)).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "Transaction not found"))

		rr := s.get("/api/transactions/8")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("non numeric id", func() {
		rr := s.get("/api/documents/abc")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("search is not treated as an id", func() {
		s.service.EXPECT().SearchDocuments(gomock.Any(), models.DocumentFilter{DocumentType: "sale_deed"}, gomock.Any()).
			Return([]models.ResultCard{}, nil)

		rr := s.get("/api/documents/search?documentType=sale_deed")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})
}

func (s *RegistryHandlerSuite) TestSearchMiddlewareOnlyWrapsSearches() {
	var hits int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}
	router := chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), mw).Register(router)

	s.service.EXPECT().Search(gomock.Any(), "x", gomock.Any()).Return([]models.ResultCard{}, nil)
	s.service.EXPECT().SearchEntities(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.ResultCard{}, nil)
	s.service.EXPECT().ListEntities(gomock.Any()).Return([]models.Entity{}, nil)

	testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/api/search?q=x"))
	testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/api/entities/search?name=a"))
	testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/api/entities"))

	s.Equal(2, hits)
}
