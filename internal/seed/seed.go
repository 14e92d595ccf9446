// Package seed loads the sample registry and land records used for demos and
// local development.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"udaan/pkg/platform/tx"
)

// Summary counts the rows inserted per table.
type Summary struct {
	Entities        int
	Properties      int
	Documents       int
	Transactions    int
	RuralProperties int
	UrbanProperties int
}

type Seeder struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, logger: logger}
}

// Run inserts every sample row in a single transaction. Nothing is kept when
// any insert fails.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	err := tx.RunInTx(ctx, s.db, func(ctx context.Context) error {
		exec := tx.Execer(ctx, s.db)

		s.logger.InfoContext(ctx, "inserting sample entities")
		entityIDs, err := insertEntities(ctx, exec)
		if err != nil {
			return err
		}
		summary.Entities = len(entityIDs)

		s.logger.InfoContext(ctx, "inserting sample properties")
		propertyIDs, err := insertProperties(ctx, exec, entityIDs)
		if err != nil {
			return err
		}
		summary.Properties = len(propertyIDs)

		s.logger.InfoContext(ctx, "inserting sample documents")
		for _, d := range documents {
			_, err := exec.ExecContext(ctx,
				`INSERT INTO documents (property_id, entity_id, doc_type, doc_url, issued_at) VALUES ($1, $2, $3, $4, $5)`,
				propertyIDs[d.property], entityIDs[d.entity], d.docType, d.docURL, d.issuedAt)
			if err != nil {
				return fmt.Errorf("insert document %s: %w", d.docURL, err)
			}
			summary.Documents++
		}

		s.logger.InfoContext(ctx, "inserting sample transactions")
		for _, t := range transactions {
			_, err := exec.ExecContext(ctx,
				`INSERT INTO transactions (property_id, entity_id, type, amount, date) VALUES ($1, $2, $3, $4, $5)`,
				propertyIDs[t.property], entityIDs[t.entity], t.kind, t.amount, t.date)
			if err != nil {
				return fmt.Errorf("insert transaction %s %s: %w", t.kind, t.date, err)
			}
			summary.Transactions++
		}

		s.logger.InfoContext(ctx, "inserting sample land records")
		if summary.RuralProperties, err = insertLand(ctx, exec, "rural_properties", "village", ruralProperties); err != nil {
			return err
		}
		if summary.UrbanProperties, err = insertLand(ctx, exec, "urban_properties", "city", urbanProperties); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("seed sample data: %w", err)
	}
	s.logger.InfoContext(ctx, "sample data inserted",
		"entities", summary.Entities,
		"properties", summary.Properties,
		"documents", summary.Documents,
		"transactions", summary.Transactions,
		"rural_properties", summary.RuralProperties,
		"urban_properties", summary.UrbanProperties,
	)
	return summary, nil
}

func insertEntities(ctx context.Context, exec tx.Executor) ([]int64, error) {
	ids := make([]int64, 0, len(entities))
	for _, e := range entities {
		var id int64
		err := exec.QueryRowContext(ctx,
			`INSERT INTO entities (name, type, registration_number, pan, cin) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			e.name, e.kind, e.registrationNumber, e.pan, e.cin).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert entity %q: %w", e.name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func insertProperties(ctx context.Context, exec tx.Executor, entityIDs []int64) ([]int64, error) {
	ids := make([]int64, 0, len(properties))
	for _, p := range properties {
		var id int64
		err := exec.QueryRowContext(ctx,
			`INSERT INTO properties (address, city, state, pincode, property_type, owner_entity_id)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			p.address, p.city, p.state, p.pincode, p.propertyType, entityIDs[p.owner]).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert property %q: %w", p.address, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// insertLand writes rows into one of the land tables, whose locality column
// is named differently per table.
func insertLand(ctx context.Context, exec tx.Executor, table, locality string, rows []landRow) (int, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (type, title, description, address, %s, state, owner, date) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(locality))
	for i, r := range rows {
		if _, err := exec.ExecContext(ctx, query,
			r.kind, r.title, r.description, r.address, r.locality, r.state, r.owner, r.date); err != nil {
			return i, fmt.Errorf("insert %s row %q: %w", table, r.title, err)
		}
	}
	return len(rows), nil
}
