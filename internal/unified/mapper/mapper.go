// Package mapper normalizes rows from the four registry sources into
// UnifiedRecord values. Every function here is pure.
package mapper

import (
	"encoding/json"
	"strconv"

	"udaan/internal/unified/models"
)

// MapCERSAI maps a security-interest transaction.
func MapCERSAI(row models.TransactionRow) models.UnifiedRecord {
	rec := models.UnifiedRecord{
		ID:     idString(row.ID),
		Type:   or(row.Type, "transaction"),
		Title:  "Transaction",
		Source: models.SourceCERSAI,
		Raw:    rawOf(row),
	}
	if present(row.Type) {
		rec.Title = *row.Type + " Transaction"
	}
	if present(row.Amount) {
		rec.Description = "Amount: " + *row.Amount
	}
	if row.EntityID != nil && *row.EntityID != 0 {
		rec.Owner = "Entity ID: " + strconv.FormatInt(*row.EntityID, 10)
	}
	// created_at only stands in when the transaction carries no date at all.
	if present(row.Date) {
		rec.Date = NormalizeDate(row.Date)
	} else {
		rec.Date = NormalizeDate(row.CreatedAt)
	}
	return rec
}

// MapMCA21 maps a corporate registry entity.
func MapMCA21(row models.EntityRow) models.UnifiedRecord {
	rec := models.UnifiedRecord{
		ID:      idString(row.ID),
		Type:    or(row.Type, "entity"),
		Title:   or(row.Name, "Entity"),
		Address: or(row.Address, ""),
		Date:    NormalizeDate(row.CreatedAt),
		Source:  models.SourceMCA21,
		Raw:     rawOf(row),
	}
	if present(row.RegistrationNumber) {
		rec.Description = "Reg#: " + *row.RegistrationNumber
	}
	return rec
}

// MapRural maps a rural land record. The village stands in for the city.
func MapRural(row models.RuralPropertyRow) models.UnifiedRecord {
	return models.UnifiedRecord{
		ID:          idString(row.ID),
		Type:        or(row.Type, "property"),
		Title:       or(row.Title, "Rural Property"),
		Description: or(row.Description, ""),
		Address:     or(row.Address, ""),
		City:        or(row.Village, ""),
		State:       or(row.State, ""),
		Owner:       or(row.Owner, ""),
		Date:        NormalizeDate(row.Date),
		Source:      models.SourceRural,
		Raw:         rawOf(row),
	}
}

// MapUrban maps an urban property record.
func MapUrban(row models.UrbanPropertyRow) models.UnifiedRecord {
	return models.UnifiedRecord{
		ID:          idString(row.ID),
		Type:        or(row.Type, "property"),
		Title:       or(row.Title, "Urban Property"),
		Description: or(row.Description, ""),
		Address:     or(row.Address, ""),
		City:        or(row.City, ""),
		State:       or(row.State, ""),
		Owner:       or(row.Owner, ""),
		Date:        NormalizeDate(row.Date),
		Source:      models.SourceUrban,
		Raw:         rawOf(row),
	}
}

// Map dispatches row to the mapper for kind. It reports false when kind is
// unknown or row is not the row type that kind expects.
func Map(kind models.Source, row any) (models.UnifiedRecord, bool) {
	switch kind {
	case models.SourceCERSAI:
		if r, ok := row.(models.TransactionRow); ok {
			return MapCERSAI(r), true
		}
	case models.SourceMCA21:
		if r, ok := row.(models.EntityRow); ok {
			return MapMCA21(r), true
		}
	case models.SourceRural:
		if r, ok := row.(models.RuralPropertyRow); ok {
			return MapRural(r), true
		}
	case models.SourceUrban:
		if r, ok := row.(models.UrbanPropertyRow); ok {
			return MapUrban(r), true
		}
	}
	return models.UnifiedRecord{}, false
}

func idString(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func or(s *string, fallback string) string {
	if present(s) {
		return *s
	}
	return fallback
}

// rawOf encodes the row as it arrived. Row types hold only pointers to
// strings and integers, so encoding cannot fail.
func rawOf(row any) json.RawMessage {
	b, err := json.Marshal(row)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}
