package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"udaan/internal/unified/models"
	"udaan/pkg/platform/sentinel"
	"udaan/pkg/platform/tx"
)

// MaxListLimit caps List results.
const MaxListLimit = 100

const upsertSQL = `
	INSERT INTO unified_records (id, type, title, description, address, city, state, owner, date, source, raw)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		type = EXCLUDED.type,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		owner = EXCLUDED.owner,
		date = EXCLUDED.date,
		source = EXCLUDED.source,
		raw = EXCLUDED.raw`

const selectColumns = `id, type, title, description, address, city, state, owner, date, source, raw`

// PostgresStore persists unified records in the unified_records table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed unified record store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Upsert inserts rec or replaces the row that shares its id.
func (s *PostgresStore) Upsert(ctx context.Context, rec models.UnifiedRecord) error {
	date, err := dateArg(rec.Date)
	if err != nil {
		return fmt.Errorf("upsert unified record %q: %w", rec.ID, err)
	}
	_, err = tx.Execer(ctx, s.db).ExecContext(ctx, upsertSQL,
		rec.ID, rec.Type, rec.Title, rec.Description, rec.Address,
		rec.City, rec.State, rec.Owner, date, string(rec.Source), rawArg(rec.Raw),
	)
	if err != nil {
		return fmt.Errorf("upsert unified record %q: %w", rec.ID, err)
	}
	return nil
}

// UpsertBatch writes recs in order inside a single transaction.
func (s *PostgresStore) UpsertBatch(ctx context.Context, recs []models.UnifiedRecord) error {
	if len(recs) == 0 {
		return nil
	}
	if _, ok := tx.From(ctx); ok {
		return s.upsertAll(ctx, recs)
	}
	return tx.RunInTx(ctx, s.db, func(ctx context.Context) error {
		return s.upsertAll(ctx, recs)
	})
}

func (s *PostgresStore) upsertAll(ctx context.Context, recs []models.UnifiedRecord) error {
	for _, rec := range recs {
		if err := s.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// List returns the most recently created records first.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]models.UnifiedRecord, error) {
	limit = clampLimit(limit)
	rows, err := tx.Execer(ctx, s.db).QueryContext(ctx,
		`SELECT `+selectColumns+` FROM unified_records ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unified records: %w", err)
	}
	defer rows.Close()

	out := make([]models.UnifiedRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unified record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list unified records: %w", err)
	}
	return out, nil
}

// FindByID returns the record with the given id or sentinel.ErrNotFound.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.UnifiedRecord, error) {
	row := tx.Execer(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM unified_records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find unified record %q: %w", id, err)
	}
	return &rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (models.UnifiedRecord, error) {
	var (
		rec    models.UnifiedRecord
		date   sql.NullTime
		source string
		raw    []byte
	)
	if err := sc.Scan(&rec.ID, &rec.Type, &rec.Title, &rec.Description, &rec.Address,
		&rec.City, &rec.State, &rec.Owner, &date, &source, &raw); err != nil {
		return models.UnifiedRecord{}, err
	}
	rec.Source = models.Source(source)
	if date.Valid {
		d := date.Time.UTC().Format(isoLayout)
		rec.Date = &d
	}
	if raw != nil {
		rec.Raw = append([]byte(nil), raw...)
	}
	return rec, nil
}

const isoLayout = "2006-01-02T15:04:05.000Z"

func dateArg(d *string) (any, error) {
	if d == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *d)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *d, err)
	}
	return t, nil
}

func rawArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
