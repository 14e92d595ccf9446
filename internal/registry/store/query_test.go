package store

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaan/internal/registry/models"
)

func ptr[T any](v T) *T { return &v }

func TestEntityPredicates(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		_, err := entityPredicates(models.EntityFilter{}).where("AND")
		assert.ErrorIs(t, err, ErrNoFilters)
	})

	t.Run("company status any is ignored", func(t *testing.T) {
		_, err := entityPredicates(models.EntityFilter{CompanyStatus: "Any"}).where("AND")
		assert.ErrorIs(t, err, ErrNoFilters)
	})

	t.Run("fields joined with AND in declaration order", func(t *testing.T) {
		p := entityPredicates(models.EntityFilter{Name: "acme", IDType: "PAN", CompanyStatus: "active", CIN: "L17"})
		where, err := p.where("AND")
		require.NoError(t, err)

		assert.Equal(t,
			"WHERE LOWER(name) LIKE LOWER($1) AND LOWER(id_type) = LOWER($2) AND LOWER(company_status) = LOWER($3) AND LOWER(cin) LIKE LOWER($4)",
			where)
		assert.Equal(t, []any{"%acme%", "PAN", "active", "%L17%"}, p.args)
	})

	t.Run("blank values are skipped", func(t *testing.T) {
		p := entityPredicates(models.EntityFilter{Name: "   ", PAN: "AAAPL"})
		where, err := p.where("AND")
		require.NoError(t, err)
		assert.Equal(t, "WHERE LOWER(pan) LIKE LOWER($1)", where)
	})
}

func TestPropertyPredicates(t *testing.T) {
	t.Run("joined with OR", func(t *testing.T) {
		p := propertyPredicates(models.PropertyFilter{City: "Pune", Pincode: "4110"})
		where, err := p.where("OR")
		require.NoError(t, err)
		assert.Equal(t, "WHERE LOWER(p.city) LIKE LOWER($1) OR LOWER(p.pincode) LIKE LOWER($2)", where)
	})

	t.Run("single type is plain equality", func(t *testing.T) {
		p := propertyPredicates(models.PropertyFilter{PropertyTypes: []string{" Residential "}})
		where, err := p.where("OR")
		require.NoError(t, err)
		assert.Equal(t, "WHERE LOWER(p.property_type) = LOWER($1)", where)
		assert.Equal(t, []any{"residential"}, p.args)
	})

	t.Run("several types use ANY", func(t *testing.T) {
		p := propertyPredicates(models.PropertyFilter{PropertyTypes: []string{"Residential", "commercial", ""}})
		where, err := p.where("OR")
		require.NoError(t, err)
		assert.Equal(t, "WHERE LOWER(p.property_type) = ANY($1)", where)
		require.Len(t, p.args, 1)
		assert.Equal(t, pq.Array([]string{"residential", "commercial"}), p.args[0])
	})
}

func TestTransactionPredicates(t *testing.T) {
	p := transactionPredicates(models.TransactionFilter{
		DateFrom:  "2024-01-01",
		DateTo:    "2024-12-31",
		MinAmount: ptr(1000.0),
		MaxAmount: ptr(5000.5),
	})
	where, err := p.where("AND")
	require.NoError(t, err)

	assert.Equal(t, "WHERE t.date >= $1 AND t.date <= $2 AND t.amount >= $3 AND t.amount <= $4", where)
	assert.Equal(t, []any{"2024-01-01", "2024-12-31", 1000.0, 5000.5}, p.args)

	_, err = transactionPredicates(models.TransactionFilter{}).where("AND")
	assert.ErrorIs(t, err, ErrNoFilters)
}

func TestDocumentPredicates(t *testing.T) {
	p := documentPredicates(models.DocumentFilter{
		DocumentID:         ptr(int64(3)),
		FiledBy:            "acme",
		YearFiled:          ptr(2023),
		RegistrationOffice: "Andheri",
	})
	where, err := p.where("AND")
	require.NoError(t, err)

	assert.Equal(t,
		"WHERE d.id = $1 AND LOWER(e.name) LIKE LOWER($2) AND EXTRACT(YEAR FROM d.issued_at) = $3 AND LOWER(p.address) LIKE LOWER($4)",
		where)
	assert.Equal(t, []any{int64(3), "%acme%", 2023, "%Andheri%"}, p.args)
}

func TestGeneralPredicatesShareOneArgument(t *testing.T) {
	p := generalPredicates(models.CategoryTransaction, "pune")
	where, err := p.where("OR")
	require.NoError(t, err)

	assert.Equal(t,
		"WHERE LOWER(p.address) LIKE LOWER($1) OR LOWER(p.city) LIKE LOWER($1) OR LOWER(e.name) LIKE LOWER($1) OR CAST(t.amount AS TEXT) LIKE $1",
		where)
	assert.Equal(t, []any{"%pune%"}, p.args)
	assert.Equal(t, " LIMIT $2", limitClause(p, 10))
}
