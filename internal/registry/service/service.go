package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"udaan/internal/registry/metrics"
	"udaan/internal/registry/models"
	"udaan/internal/registry/store"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/sentinel"
)

const (
	// GeneralSearchLimit caps hits per registry for a general search.
	GeneralSearchLimit = 10
	// CategorySearchLimit caps hits for a single-registry search.
	CategorySearchLimit = 20

	generalSearchLog = "general"
)

// Store is the registry data the service reads.
type Store interface {
	ListEntities(ctx context.Context) ([]models.Entity, error)
	FindEntity(ctx context.Context, id int64) (*models.Entity, error)
	SearchEntities(ctx context.Context, f models.EntityFilter, limit int) ([]models.Entity, error)
	MatchEntities(ctx context.Context, term string, limit int) ([]models.Entity, error)

	ListProperties(ctx context.Context) ([]models.Property, error)
	FindProperty(ctx context.Context, id int64) (*models.Property, error)
	SearchProperties(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error)
	MatchProperties(ctx context.Context, term string, limit int) ([]models.Property, error)

	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	FindTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	SearchTransactions(ctx context.Context, f models.TransactionFilter, limit int) ([]models.Transaction, error)
	MatchTransactions(ctx context.Context, term string, limit int) ([]models.Transaction, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)
	FindDocument(ctx context.Context, id int64) (*models.Document, error)
	SearchDocuments(ctx context.Context, f models.DocumentFilter, limit int) ([]models.Document, error)
	MatchDocuments(ctx context.Context, term string, limit int) ([]models.Document, error)
}

// Cache holds record details keyed by "<category>:<id>".
type Cache interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, v any) error
}

// SearchLogger records every search that was run.
type SearchLogger interface {
	Emit(ctx context.Context, query, searchType string)
}

// Service answers registry searches and record lookups.
type Service struct {
	store     Store
	cache     Cache
	searchLog SearchLogger
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithSearchLogger(l SearchLogger) Option {
	return func(s *Service) {
		s.searchLog = l
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(st Store, opts ...Option) *Service {
	s := &Service{store: st, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search matches term against every registry in cats (all when empty) and
// returns cards grouped by registry in the order of models.Categories.
func (s *Service) Search(ctx context.Context, term string, cats []models.Category) ([]models.ResultCard, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Query parameter is required")
	}
	start := time.Now()
	wanted := make(map[models.Category]bool, len(cats))
	for _, c := range cats {
		wanted[c] = true
	}

	groups := make([][]models.ResultCard, len(models.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range models.Categories {
		if len(wanted) > 0 && !wanted[cat] {
			continue
		}
		i, cat := i, cat
		g.Go(func() error {
			cards, err := s.match(gctx, cat, term)
			groups[i] = cards
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "search failed")
	}

	results := []models.ResultCard{}
	for _, cards := range groups {
		results = append(results, cards...)
	}
	s.logSearch(ctx, term, generalSearchLog)
	s.metrics.ObserveSearch(generalSearchLog, start, len(results))
	return results, nil
}

func (s *Service) match(ctx context.Context, cat models.Category, term string) ([]models.ResultCard, error) {
	switch cat {
	case models.CategoryEntity:
		rows, err := s.store.MatchEntities(ctx, term, GeneralSearchLimit)
		return cards(rows, entityCard), err
	case models.CategoryProperty:
		rows, err := s.store.MatchProperties(ctx, term, GeneralSearchLimit)
		return cards(rows, propertyCard), err
	case models.CategoryTransaction:
		rows, err := s.store.MatchTransactions(ctx, term, GeneralSearchLimit)
		return cards(rows, transactionCard), err
	case models.CategoryDocument:
		rows, err := s.store.MatchDocuments(ctx, term, GeneralSearchLimit)
		return cards(rows, documentCard), err
	}
	return nil, nil
}

// SearchEntities runs an entity search. logQuery is what the search log records.
func (s *Service) SearchEntities(ctx context.Context, f models.EntityFilter, logQuery string) ([]models.ResultCard, error) {
	return categorySearch(ctx, s, models.CategoryEntity, logQuery, entityDetailCard,
		func(ctx context.Context) ([]models.Entity, error) {
			return s.store.SearchEntities(ctx, f, CategorySearchLimit)
		})
}

func (s *Service) SearchProperties(ctx context.Context, f models.PropertyFilter, logQuery string) ([]models.ResultCard, error) {
	return categorySearch(ctx, s, models.CategoryProperty, logQuery, propertyCard,
		func(ctx context.Context) ([]models.Property, error) {
			return s.store.SearchProperties(ctx, f, CategorySearchLimit)
		})
}

func (s *Service) SearchTransactions(ctx context.Context, f models.TransactionFilter, logQuery string) ([]models.ResultCard, error) {
	return categorySearch(ctx, s, models.CategoryTransaction, logQuery, transactionCard,
		func(ctx context.Context) ([]models.Transaction, error) {
			return s.store.SearchTransactions(ctx, f, CategorySearchLimit)
		})
}

func (s *Service) SearchDocuments(ctx context.Context, f models.DocumentFilter, logQuery string) ([]models.ResultCard, error) {
	return categorySearch(ctx, s, models.CategoryDocument, logQuery, documentCard,
		func(ctx context.Context) ([]models.Document, error) {
			return s.store.SearchDocuments(ctx, f, CategorySearchLimit)
		})
}

func categorySearch[T any](ctx context.Context, s *Service, cat models.Category, logQuery string,
	card func(T) models.ResultCard, run func(context.Context) ([]T, error),
) ([]models.ResultCard, error) {
	start := time.Now()
	rows, err := run(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoFilters) {
			return nil, dErrors.New(dErrors.CodeBadRequest, "At least one search parameter is required")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, cat.String()+" search failed")
	}
	results := cards(rows, card)
	s.logSearch(ctx, logQuery, cat.String())
	s.metrics.ObserveSearch(cat.String(), start, len(results))
	return results, nil
}

func (s *Service) ListEntities(ctx context.Context) ([]models.Entity, error) {
	return list(s.store.ListEntities(ctx))
}

func (s *Service) ListProperties(ctx context.Context) ([]models.Property, error) {
	return list(s.store.ListProperties(ctx))
}

func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return list(s.store.ListTransactions(ctx))
}

func (s *Service) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return list(s.store.ListDocuments(ctx))
}

func list[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list records")
	}
	return rows, nil
}

func (s *Service) GetEntity(ctx context.Context, id int64) (*models.Entity, error) {
	return get(ctx, s, models.CategoryEntity, id, "Entity not found", s.store.FindEntity)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	return get(ctx, s, models.CategoryProperty, id, "Property not found", s.store.FindProperty)
}

func (s *Service) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return get(ctx, s, models.CategoryTransaction, id, "Transaction not found", s.store.FindTransaction)
}

func (s *Service) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	return get(ctx, s, models.CategoryDocument, id, "Document not found", s.store.FindDocument)
}

// get reads through the cache. Cache failures are logged and fall back to the store.
func get[T any](ctx context.Context, s *Service, cat models.Category, id int64, notFound string,
	find func(context.Context, int64) (*T, error),
) (*T, error) {
	key := cat.String() + ":" + strconv.FormatInt(id, 10)
	if s.cache != nil {
		var cached T
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheHit(cat.String())
			return &cached, nil
		}
		s.metrics.RecordCacheMiss(cat.String())
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "record cache read failed", "key", key, "error", err)
		}
	}

	rec, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, notFound)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch "+cat.String())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec); err != nil {
			s.logger.WarnContext(ctx, "record cache write failed", "key", key, "error", err)
		}
	}
	return rec, nil
}

func (s *Service) logSearch(ctx context.Context, query, searchType string) {
	if s.searchLog == nil {
		return
	}
	s.searchLog.Emit(ctx, query, searchType)
}

func cards[T any](rows []T, card func(T) models.ResultCard) []models.ResultCard {
	out := make([]models.ResultCard, len(rows))
	for i, r := range rows {
		out[i] = card(r)
	}
	return out
}
