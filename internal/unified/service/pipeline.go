package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"udaan/internal/unified/mapper"
	"udaan/internal/unified/metrics"
	"udaan/internal/unified/models"
	"udaan/internal/unified/sources"
)

const defaultConcurrency = 8

// RecordWriter is the persistence side of the pipeline.
type RecordWriter interface {
	Upsert(ctx context.Context, rec models.UnifiedRecord) error
}

// RunSummary reports what a pipeline run fetched and stored.
type RunSummary struct {
	Fetched   map[models.Source]int
	Total     int
	Persisted int
	Duration  time.Duration
}

// Pipeline fetches every source, aggregates the rows and upserts the result.
type Pipeline struct {
	sources     sources.Set
	store       RecordWriter
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type PipelineOption func(*Pipeline)

func WithConcurrency(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

func WithPipelineMetrics(m *metrics.Metrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// NewPipeline constructs a Pipeline over the given sources and store.
func NewPipeline(set sources.Set, store RecordWriter, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		sources:     set,
		store:       store,
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one full aggregation. Any fetch or write failure aborts the
// run and is returned unchanged in meaning; nothing is retried.
func (p *Pipeline) Run(ctx context.Context) (summary RunSummary, err error) {
	start := time.Now()
	defer func() {
		summary.Duration = time.Since(start)
		p.metrics.ObserveRun(start, err)
	}()

	rows, err := p.fetchAll(ctx)
	if err != nil {
		return summary, err
	}
	summary.Fetched = map[models.Source]int{
		models.SourceCERSAI: len(rows.CERSAI),
		models.SourceMCA21:  len(rows.MCA21),
		models.SourceRural:  len(rows.Rural),
		models.SourceUrban:  len(rows.Urban),
	}
	for src, n := range summary.Fetched {
		p.metrics.AddFetched(src.String(), n)
	}

	records := mapper.Aggregate(rows)
	summary.Total = len(records)

	persisted, err := p.persist(ctx, latestByID(records))
	summary.Persisted = persisted
	p.metrics.AddPersisted(persisted)
	if err != nil {
		return summary, err
	}

	p.logger.InfoContext(ctx, "unified records aggregated",
		"total", summary.Total,
		"persisted", summary.Persisted,
		"cersai", len(rows.CERSAI),
		"mca21", len(rows.MCA21),
		"rural", len(rows.Rural),
		"urban", len(rows.Urban),
	)
	return summary, nil
}

func (p *Pipeline) fetchAll(ctx context.Context) (models.SourceRows, error) {
	var rows models.SourceRows
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows.CERSAI, err = fetch(gctx, models.SourceCERSAI, p.sources.CERSAI)
		return err
	})
	g.Go(func() (err error) {
		rows.MCA21, err = fetch(gctx, models.SourceMCA21, p.sources.MCA21)
		return err
	})
	g.Go(func() (err error) {
		rows.Rural, err = fetch(gctx, models.SourceRural, p.sources.Rural)
		return err
	})
	g.Go(func() (err error) {
		rows.Urban, err = fetch(gctx, models.SourceUrban, p.sources.Urban)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.SourceRows{}, err
	}
	return rows, nil
}

func fetch[T any](ctx context.Context, src models.Source, f sources.Fetcher[T]) ([]T, error) {
	if f == nil {
		return nil, nil
	}
	rows, err := f.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s rows: %w", src, err)
	}
	return rows, nil
}

// persist upserts records with bounded parallelism. The count covers every
// upsert that succeeded, including those before a failure.
func (p *Pipeline) persist(ctx context.Context, records []models.UnifiedRecord) (int, error) {
	var stored atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			if err := p.store.Upsert(gctx, rec); err != nil {
				return err
			}
			stored.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(stored.Load()), fmt.Errorf("persist unified records: %w", err)
	}
	return int(stored.Load()), nil
}

// latestByID keeps the last record for each id, in first-seen order. Upserting
// the result in any order leaves the store as a serial upsert of records would.
func latestByID(records []models.UnifiedRecord) []models.UnifiedRecord {
	idx := make(map[string]int, len(records))
	out := make([]models.UnifiedRecord, 0, len(records))
	for _, rec := range records {
		if i, ok := idx[rec.ID]; ok {
			out[i] = rec
			continue
		}
		idx[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}
