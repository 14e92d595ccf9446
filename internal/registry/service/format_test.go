package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"udaan/internal/registry/models"
)

func ptr[T any](v T) *T { return &v }

var created = time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)

func TestFormatRupees(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"12345":      "12,345",
		"123456":     "1,23,456",
		"2500000.00": "25,00,000",
		"1234567.50": "12,34,567.5",
		"100.25":     "100.25",
		"-45000":     "-45,000",
		"0042":       "42",
		"1e6":        "1e6",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, formatRupees(in))
		})
	}
}

func TestEntityCard(t *testing.T) {
	t.Run("CIN preferred", func(t *testing.T) {
		c := entityCard(models.Entity{ID: 1, Name: "Acme", Type: ptr("company"), CIN: ptr("L1"), PAN: ptr("P1"), CreatedAt: created})
		assert.Equal(t, "CIN: L1", c.Subtitle)
		assert.Equal(t, "Company record.", c.Description)
		assert.Equal(t, "MCA", c.Source)
		assert.Equal(t, "Updated on 15 Mar 2024", c.Date)
		assert.Nil(t, c.EntityDetails)
	})

	t.Run("PAN then registration", func(t *testing.T) {
		assert.Equal(t, "PAN: P1", entityCard(models.Entity{PAN: ptr("P1")}).Subtitle)
		assert.Equal(t, "Registration: R9", entityCard(models.Entity{RegistrationNumber: ptr("R9")}).Subtitle)
	})

	t.Run("missing type", func(t *testing.T) {
		assert.Equal(t, "Entity record.", entityCard(models.Entity{}).Description)
	})

	t.Run("detail card carries advanced fields", func(t *testing.T) {
		c := entityDetailCard(models.Entity{ID: 2, Name: "Jane", CompanyStatus: ptr("active")})
		if assert.NotNil(t, c.EntityDetails) {
			assert.Equal(t, "active", *c.CompanyStatus)
		}
	})
}

func TestPropertyCard(t *testing.T) {
	c := propertyCard(models.Property{
		ID:           7,
		Address:      ptr("12 MG Road"),
		City:         ptr("Pune"),
		State:        ptr("Maharashtra"),
		Pincode:      ptr("411001"),
		PropertyType: ptr("residential"),
		CreatedAt:    created,
	})

	assert.Equal(t, "Residential - Pune", c.Title)
	assert.Equal(t, "Registration #: PROP00007", c.Subtitle)
	assert.Equal(t, "12 MG Road, Pune, Maharashtra - 411001. Owner: Unknown", c.Description)
	assert.Equal(t, "DORIS", c.Source)
	assert.Equal(t, models.CategoryProperty, c.Type)
}

func TestTransactionCard(t *testing.T) {
	c := transactionCard(models.Transaction{
		ID:              12,
		Type:            ptr("mortgage"),
		Amount:          ptr("2500000.00"),
		PropertyAddress: ptr("12 MG Road"),
		EntityName:      ptr("Acme"),
		CreatedAt:       created,
	})

	assert.Equal(t, "Mortgage Record", c.Title)
	assert.Equal(t, "Transaction ID: TRANS00012", c.Subtitle)
	assert.Equal(t, "mortgage transaction of ₹25,00,000 on property at 12 MG Road, involving Acme.", c.Description)
	assert.Equal(t, "CERSAI", c.Source)

	assert.Equal(t, "Transaction Record", transactionCard(models.Transaction{}).Title)
}

func TestDocumentCard(t *testing.T) {
	c := documentCard(models.Document{
		ID:              3,
		DocType:         ptr("sale_deed"),
		PropertyAddress: ptr("12 MG Road"),
		PropertyCity:    ptr("Pune"),
		EntityName:      ptr("Acme"),
		CreatedAt:       created,
	})

	assert.Equal(t, "Sale Deed", c.Title)
	assert.Equal(t, "Document #: DOC00003", c.Subtitle)
	assert.Equal(t, "Document related to property at 12 MG Road, Pune. Filed by Acme.", c.Description)
	assert.Equal(t, "Document", documentCard(models.Document{}).Title)
}

func TestUpdatedOnUsesIndianTime(t *testing.T) {
	late := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "Updated on 16 Mar 2024", updatedOn(late))
}
