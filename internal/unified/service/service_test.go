package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaan/internal/unified/models"
	"udaan/internal/unified/store"
	dErrors "udaan/pkg/domain-errors"
)

type brokenReader struct{}

func (brokenReader) List(context.Context, int) ([]models.UnifiedRecord, error) {
	return nil, errors.New("db down")
}

func (brokenReader) FindByID(context.Context, string) (*models.UnifiedRecord, error) {
	return nil, errors.New("db down")
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemory()
	require.NoError(t, st.Upsert(ctx, models.UnifiedRecord{ID: "5", Title: "Acme", Source: models.SourceMCA21}))
	svc := New(st, nil)

	t.Run("found", func(t *testing.T) {
		rec, err := svc.Get(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "Acme", rec.Title)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Get(ctx, "6")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := svc.Get(ctx, "  ")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := New(brokenReader{}, nil).Get(ctx, "5")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemory()
	require.NoError(t, st.UpsertBatch(ctx, []models.UnifiedRecord{{ID: "1"}, {ID: "2"}}))

	recs, err := New(st, nil).List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = New(brokenReader{}, nil).List(ctx, 100)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
