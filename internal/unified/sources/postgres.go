package sources

import (
	"context"
	"database/sql"
	"fmt"

	"udaan/internal/unified/models"
)

// Postgres reads source rows from the registry tables. Dates and amounts are
// selected as text so the mapper sees them the way the database renders them.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres source reader.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Set returns fetchers for all four sources backed by p.
func (p *Postgres) Set() Set {
	return Set{
		CERSAI: FetchFunc[models.TransactionRow](p.Transactions),
		MCA21:  FetchFunc[models.EntityRow](p.Entities),
		Rural:  FetchFunc[models.RuralPropertyRow](p.RuralProperties),
		Urban:  FetchFunc[models.UrbanPropertyRow](p.UrbanProperties),
	}
}

// Transactions reads the CERSAI security-interest transactions.
func (p *Postgres) Transactions(ctx context.Context) ([]models.TransactionRow, error) {
	const q = `SELECT id, property_id, entity_id, type, amount::text, date::text, created_at::text
		FROM transactions ORDER BY id`
	return queryRows(ctx, p.db, "transactions", q, func(sc scanner) (models.TransactionRow, error) {
		var (
			id, propertyID, entityID     sql.NullInt64
			typ, amount, date, createdAt sql.NullString
		)
		if err := sc.Scan(&id, &propertyID, &entityID, &typ, &amount, &date, &createdAt); err != nil {
			return models.TransactionRow{}, err
		}
		return models.TransactionRow{
			ID:         int64Ptr(id),
			PropertyID: int64Ptr(propertyID),
			EntityID:   int64Ptr(entityID),
			Type:       strPtr(typ),
			Amount:     strPtr(amount),
			Date:       strPtr(date),
			CreatedAt:  strPtr(createdAt),
		}, nil
	})
}

// Entities reads the MCA21 corporate registry.
func (p *Postgres) Entities(ctx context.Context) ([]models.EntityRow, error) {
	const q = `SELECT id, name, type, registration_number, pan, cin, address, id_type,
		identification_number, contact_info, director_details, company_status, created_at::text
		FROM entities ORDER BY id`
	return queryRows(ctx, p.db, "entities", q, func(sc scanner) (models.EntityRow, error) {
		var (
			id                                                  sql.NullInt64
			name, typ, reg, pan, cin, address, idType, idNumber sql.NullString
			contact, directors, status, createdAt               sql.NullString
		)
		if err := sc.Scan(&id, &name, &typ, &reg, &pan, &cin, &address, &idType,
			&idNumber, &contact, &directors, &status, &createdAt); err != nil {
			return models.EntityRow{}, err
		}
		return models.EntityRow{
			ID:                   int64Ptr(id),
			Name:                 strPtr(name),
			Type:                 strPtr(typ),
			RegistrationNumber:   strPtr(reg),
			PAN:                  strPtr(pan),
			CIN:                  strPtr(cin),
			Address:              strPtr(address),
			IDType:               strPtr(idType),
			IdentificationNumber: strPtr(idNumber),
			ContactInfo:          strPtr(contact),
			DirectorDetails:      strPtr(directors),
			CompanyStatus:        strPtr(status),
			CreatedAt:            strPtr(createdAt),
		}, nil
	})
}

// RuralProperties reads the rural land records.
func (p *Postgres) RuralProperties(ctx context.Context) ([]models.RuralPropertyRow, error) {
	const q = `SELECT id, type, title, description, address, village, state, owner, date
		FROM rural_properties ORDER BY id`
	return queryRows(ctx, p.db, "rural_properties", q, func(sc scanner) (models.RuralPropertyRow, error) {
		var (
			id                                                     sql.NullInt64
			typ, title, desc, address, village, state, owner, date sql.NullString
		)
		if err := sc.Scan(&id, &typ, &title, &desc, &address, &village, &state, &owner, &date); err != nil {
			return models.RuralPropertyRow{}, err
		}
		return models.RuralPropertyRow{
			ID: int64Ptr(id), Type: strPtr(typ), Title: strPtr(title), Description: strPtr(desc),
			Address: strPtr(address), Village: strPtr(village), State: strPtr(state),
			Owner: strPtr(owner), Date: strPtr(date),
		}, nil
	})
}

// UrbanProperties reads the urban property records.
func (p *Postgres) UrbanProperties(ctx context.Context) ([]models.UrbanPropertyRow, error) {
	const q = `SELECT id, type, title, description, address, city, state, owner, date
		FROM urban_properties ORDER BY id`
	return queryRows(ctx, p.db, "urban_properties", q, func(sc scanner) (models.UrbanPropertyRow, error) {
		var (
			id                                                  sql.NullInt64
			typ, title, desc, address, city, state, owner, date sql.NullString
		)
		if err := sc.Scan(&id, &typ, &title, &desc, &address, &city, &state, &owner, &date); err != nil {
			return models.UrbanPropertyRow{}, err
		}
		return models.UrbanPropertyRow{
			ID: int64Ptr(id), Type: strPtr(typ), Title: strPtr(title), Description: strPtr(desc),
			Address: strPtr(address), City: strPtr(city), State: strPtr(state),
			Owner: strPtr(owner), Date: strPtr(date),
		}, nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func queryRows[T any](ctx context.Context, db *sql.DB, table, query string, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	return out, nil
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
