package models

import "encoding/json"

// Source tags the mapper that produced a UnifiedRecord.
type Source string

const (
	SourceCERSAI Source = "CERSAI"
	SourceMCA21  Source = "MCA21"
	SourceRural  Source = "RURAL"
	SourceUrban  Source = "URBAN"
)

// Sources lists every source kind in aggregation order.
var Sources = []Source{SourceCERSAI, SourceMCA21, SourceRural, SourceUrban}

// IsValid reports whether s is one of the four fixed tags.
func (s Source) IsValid() bool {
	switch s {
	case SourceCERSAI, SourceMCA21, SourceRural, SourceUrban:
		return true
	}
	return false
}

func (s Source) String() string { return string(s) }

// UnifiedRecord is the normalized shape every source row is mapped into.
//
// Invariants:
//   - ID is the stringified source id, or "" when the row has none
//   - Source is one of the four fixed tags
//   - Date, when non-nil, is an ISO-8601 UTC instant with millisecond precision
//   - Raw is the JSON encoding of the source row as it was before mapping
type UnifiedRecord struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Owner       string          `json:"owner"`
	Date        *string         `json:"date,omitempty"`
	Source      Source          `json:"source"`
	Raw         json.RawMessage `json:"raw"`
}
