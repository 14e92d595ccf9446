package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"udaan/internal/unified/models"
	dErrors "udaan/pkg/domain-errors"
	"udaan/pkg/platform/sentinel"
)

// RecordReader is the query side of the unified record store.
type RecordReader interface {
	List(ctx context.Context, limit int) ([]models.UnifiedRecord, error)
	FindByID(ctx context.Context, id string) (*models.UnifiedRecord, error)
}

// Service serves stored unified records.
type Service struct {
	store  RecordReader
	logger *slog.Logger
}

// New constructs a Service.
func New(store RecordReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// List returns up to limit records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]models.UnifiedRecord, error) {
	recs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list unified records")
	}
	return recs, nil
}

// Get returns the record with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.UnifiedRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "record id is required")
	}
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Record not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch unified record")
	}
	return rec, nil
}
