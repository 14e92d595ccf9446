package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS entities (
		id                    SERIAL PRIMARY KEY,
		name                  TEXT NOT NULL,
		type                  TEXT,
		registration_number   TEXT,
		pan                   TEXT,
		cin                   TEXT,
		address               TEXT,
		id_type               TEXT,
		identification_number TEXT,
		contact_info          TEXT,
		director_details      TEXT,
		company_status        TEXT,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id              SERIAL PRIMARY KEY,
		address         TEXT,
		city            TEXT,
		state           TEXT,
		pincode         TEXT,
		property_type   TEXT,
		owner_entity_id INTEGER REFERENCES entities(id),
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id          SERIAL PRIMARY KEY,
		property_id INTEGER REFERENCES properties(id),
		entity_id   INTEGER REFERENCES entities(id),
		type        TEXT,
		amount      NUMERIC(15, 2),
		date        DATE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id          SERIAL PRIMARY KEY,
		property_id INTEGER REFERENCES properties(id),
		entity_id   INTEGER REFERENCES entities(id),
		doc_type    TEXT,
		doc_url     TEXT,
		issued_at   DATE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rural_properties (
		id          SERIAL PRIMARY KEY,
		type        TEXT,
		title       TEXT,
		description TEXT,
		address     TEXT,
		village     TEXT,
		state       TEXT,
		owner       TEXT,
		date        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS urban_properties (
		id          SERIAL PRIMARY KEY,
		type        TEXT,
		title       TEXT,
		description TEXT,
		address     TEXT,
		city        TEXT,
		state       TEXT,
		owner       TEXT,
		date        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS searches (
		id         SERIAL PRIMARY KEY,
		query      TEXT NOT NULL,
		type       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS searches_created_at_idx ON searches (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS unified_records (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		address     TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT '',
		owner       TEXT NOT NULL DEFAULT '',
		date        TIMESTAMPTZ,
		source      TEXT NOT NULL,
		raw         JSONB,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the portal tables when they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
