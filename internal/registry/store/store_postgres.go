package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"udaan/internal/registry/models"
	"udaan/pkg/platform/sentinel"
)

const (
	entityColumns = `id, name, type, registration_number, pan, cin, address, id_type,
		identification_number, contact_info, director_details, company_status, created_at`

	propertySelect = `SELECT p.id, p.address, p.city, p.state, p.pincode, p.property_type,
		p.owner_entity_id, e.name, p.created_at
		FROM properties p
		LEFT JOIN entities e ON p.owner_entity_id = e.id`

	transactionSelect = `SELECT t.id, t.property_id, t.entity_id, t.type, t.amount::text, t.date::text,
		t.created_at, p.address, p.city, p.state, e.name
		FROM transactions t
		LEFT JOIN properties p ON t.property_id = p.id
		LEFT JOIN entities e ON t.entity_id = e.id`

	documentSelect = `SELECT d.id, d.property_id, d.entity_id, d.doc_type, d.doc_url, d.issued_at::text,
		d.created_at, p.address, p.city, p.state, e.name, e.type
		FROM documents d
		LEFT JOIN properties p ON d.property_id = p.id
		LEFT JOIN entities e ON d.entity_id = e.id`
)

// PostgresStore reads the registry tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListEntities(ctx context.Context) ([]models.Entity, error) {
	return queryAll(ctx, s.db, "list entities", `SELECT `+entityColumns+` FROM entities ORDER BY name`, nil, scanEntity)
}

func (s *PostgresStore) FindEntity(ctx context.Context, id int64) (*models.Entity, error) {
	return queryOne(ctx, s.db, "find entity", `SELECT `+entityColumns+` FROM entities WHERE id = $1`, id, scanEntity)
}

// SearchEntities requires every given field to match.
func (s *PostgresStore) SearchEntities(ctx context.Context, f models.EntityFilter, limit int) ([]models.Entity, error) {
	p := entityPredicates(f)
	where, err := p.where("AND")
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + entityColumns + ` FROM entities ` + where + limitClause(p, limit)
	return queryAll(ctx, s.db, "search entities", q, p.args, scanEntity)
}

func (s *PostgresStore) MatchEntities(ctx context.Context, term string, limit int) ([]models.Entity, error) {
	p := generalPredicates(models.CategoryEntity, term)
	where, _ := p.where("OR")
	q := `SELECT ` + entityColumns + ` FROM entities ` + where + limitClause(p, limit)
	return queryAll(ctx, s.db, "match entities", q, p.args, scanEntity)
}

func (s *PostgresStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	return queryAll(ctx, s.db, "list properties", propertySelect+` ORDER BY p.created_at DESC`, nil, scanProperty)
}

func (s *PostgresStore) FindProperty(ctx context.Context, id int64) (*models.Property, error) {
	return queryOne(ctx, s.db, "find property", propertySelect+` WHERE p.id = $1`, id, scanProperty)
}

// SearchProperties matches a property when any given field matches.
func (s *PostgresStore) SearchProperties(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error) {
	p := propertyPredicates(f)
	where, err := p.where("OR")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, s.db, "search properties", propertySelect+" "+where+limitClause(p, limit), p.args, scanProperty)
}

func (s *PostgresStore) MatchProperties(ctx context.Context, term string, limit int) ([]models.Property, error) {
	p := generalPredicates(models.CategoryProperty, term)
	where, _ := p.where("OR")
	return queryAll(ctx, s.db, "match properties", propertySelect+" "+where+limitClause(p, limit), p.args, scanProperty)
}

func (s *PostgresStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return queryAll(ctx, s.db, "list transactions", transactionSelect+` ORDER BY t.date DESC NULLS LAST`, nil, scanTransaction)
}

func (s *PostgresStore) FindTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return queryOne(ctx, s.db, "find transaction", transactionSelect+` WHERE t.id = $1`, id, scanTransaction)
}

func (s *PostgresStore) SearchTransactions(ctx context.Context, f models.TransactionFilter, limit int) ([]models.Transaction, error) {
	p := transactionPredicates(f)
	where, err := p.where("AND")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, s.db, "search transactions", transactionSelect+" "+where+limitClause(p, limit), p.args, scanTransaction)
}

func (s *PostgresStore) MatchTransactions(ctx context.Context, term string, limit int) ([]models.Transaction, error) {
	p := generalPredicates(models.CategoryTransaction, term)
	where, _ := p.where("OR")
	return queryAll(ctx, s.db, "match transactions", transactionSelect+" "+where+limitClause(p, limit), p.args, scanTransaction)
}

func (s *PostgresStore) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return queryAll(ctx, s.db, "list documents", documentSelect+` ORDER BY d.issued_at DESC NULLS LAST`, nil, scanDocument)
}

func (s *PostgresStore) FindDocument(ctx context.Context, id int64) (*models.Document, error) {
	return queryOne(ctx, s.db, "find document", documentSelect+` WHERE d.id = $1`, id, scanDocument)
}

func (s *PostgresStore) SearchDocuments(ctx context.Context, f models.DocumentFilter, limit int) ([]models.Document, error) {
	p := documentPredicates(f)
	where, err := p.where("AND")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, s.db, "search documents", documentSelect+" "+where+limitClause(p, limit), p.args, scanDocument)
}

func (s *PostgresStore) MatchDocuments(ctx context.Context, term string, limit int) ([]models.Document, error) {
	p := generalPredicates(models.CategoryDocument, term)
	where, _ := p.where("OR")
	return queryAll(ctx, s.db, "match documents", documentSelect+" "+where+limitClause(p, limit), p.args, scanDocument)
}

func limitClause(p *predicates, limit int) string {
	return " LIMIT " + p.next(limit)
}

type scanner interface {
	Scan(dest ...any) error
}

func queryAll[T any](ctx context.Context, db *sql.DB, op, query string, args []any, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func queryOne[T any](ctx context.Context, db *sql.DB, op, query string, id int64, scan func(scanner) (T, error)) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("%s %d: %w", op, id, err)
	}
	return &v, nil
}

func scanEntity(sc scanner) (models.Entity, error) {
	var (
		e                                                           models.Entity
		typ, reg, pan, cin, addr, idType, idNum, contact, dir, stat sql.NullString
	)
	err := sc.Scan(&e.ID, &e.Name, &typ, &reg, &pan, &cin, &addr, &idType,
		&idNum, &contact, &dir, &stat, &e.CreatedAt)
	if err != nil {
		return models.Entity{}, err
	}
	e.Type, e.RegistrationNumber, e.PAN, e.CIN = str(typ), str(reg), str(pan), str(cin)
	e.Address, e.IDType, e.IdentificationNumber = str(addr), str(idType), str(idNum)
	e.ContactInfo, e.DirectorDetails, e.CompanyStatus = str(contact), str(dir), str(stat)
	return e, nil
}

func scanProperty(sc scanner) (models.Property, error) {
	var (
		p                                        models.Property
		addr, city, state, pin, ptype, ownerName sql.NullString
		ownerID                                  sql.NullInt64
	)
	if err := sc.Scan(&p.ID, &addr, &city, &state, &pin, &ptype, &ownerID, &ownerName, &p.CreatedAt); err != nil {
		return models.Property{}, err
	}
	p.Address, p.City, p.State, p.Pincode = str(addr), str(city), str(state), str(pin)
	p.PropertyType, p.OwnerEntityID, p.OwnerName = str(ptype), i64(ownerID), str(ownerName)
	return p, nil
}

func scanTransaction(sc scanner) (models.Transaction, error) {
	var (
		t                                         models.Transaction
		propID, entID                             sql.NullInt64
		typ, amount, date, addr, city, state, ent sql.NullString
	)
	if err := sc.Scan(&t.ID, &propID, &entID, &typ, &amount, &date, &t.CreatedAt, &addr, &city, &state, &ent); err != nil {
		return models.Transaction{}, err
	}
	t.PropertyID, t.EntityID = i64(propID), i64(entID)
	t.Type, t.Amount, t.Date = str(typ), str(amount), str(date)
	t.PropertyAddress, t.PropertyCity, t.PropertyState, t.EntityName = str(addr), str(city), str(state), str(ent)
	return t, nil
}

func scanDocument(sc scanner) (models.Document, error) {
	var (
		d                                                     models.Document
		propID, entID                                         sql.NullInt64
		docType, url, issued, addr, city, state, ent, entType sql.NullString
	)
	if err := sc.Scan(&d.ID, &propID, &entID, &docType, &url, &issued, &d.CreatedAt,
		&addr, &city, &state, &ent, &entType); err != nil {
		return models.Document{}, err
	}
	d.PropertyID, d.EntityID = i64(propID), i64(entID)
	d.DocType, d.DocURL, d.IssuedAt = str(docType), str(url), str(issued)
	d.PropertyAddress, d.PropertyCity, d.PropertyState = str(addr), str(city), str(state)
	d.EntityName, d.EntityType = str(ent), str(entType)
	return d, nil
}

func str(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func i64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
