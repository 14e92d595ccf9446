package store

import (
	"context"
	"database/sql"
	"fmt"

	"udaan/internal/searchlog/models"
)

// PostgresStore persists search log entries in the searches table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed search log store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts an entry. A zero CreatedAt defers to the column default.
func (s *PostgresStore) Append(ctx context.Context, e models.Entry) error {
	var createdAt any
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (query, type, created_at) VALUES ($1, $2, COALESCE($3, NOW()))`,
		e.Query, e.Type, createdAt)
	if err != nil {
		return fmt.Errorf("append search log: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, type, created_at FROM searches ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	defer rows.Close()

	out := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Query, &e.Type, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search log: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return out, nil
}
