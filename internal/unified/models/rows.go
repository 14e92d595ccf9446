package models

// TransactionRow is a security-interest (CERSAI) transaction as stored in
// the transactions table. Amount keeps the decimal text Postgres returns for
// NUMERIC columns; dates are kept as the text the source produced.
type TransactionRow struct {
	ID         *int64  `json:"id"`
	PropertyID *int64  `json:"property_id"`
	EntityID   *int64  `json:"entity_id"`
	Type       *string `json:"type"`
	Amount     *string `json:"amount"`
	Date       *string `json:"date"`
	CreatedAt  *string `json:"created_at"`
}

// EntityRow is a corporate registry (MCA21) entity.
type EntityRow struct {
	ID                   *int64  `json:"id"`
	Name                 *string `json:"name"`
	Type                 *string `json:"type"`
	RegistrationNumber   *string `json:"registration_number"`
	PAN                  *string `json:"pan"`
	CIN                  *string `json:"cin"`
	Address              *string `json:"address"`
	IDType               *string `json:"id_type"`
	IdentificationNumber *string `json:"identification_number"`
	ContactInfo          *string `json:"contact_info"`
	DirectorDetails      *string `json:"director_details"`
	CompanyStatus        *string `json:"company_status"`
	CreatedAt            *string `json:"created_at"`
}

// RuralPropertyRow is a land record from the rural property registry.
type RuralPropertyRow struct {
	ID          *int64  `json:"id"`
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Village     *string `json:"village"`
	State       *string `json:"state"`
	Owner       *string `json:"owner"`
	Date        *string `json:"date"`
}

// UrbanPropertyRow is a record from the urban property registry.
type UrbanPropertyRow struct {
	ID          *int64  `json:"id"`
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Owner       *string `json:"owner"`
	Date        *string `json:"date"`
}

// SourceRows is one fetch of every source. Nil slices are treated as empty.
type SourceRows struct {
	CERSAI []TransactionRow
	MCA21  []EntityRow
	Rural  []RuralPropertyRow
	Urban  []UrbanPropertyRow
}

// Len is the total number of rows across all sources.
func (r SourceRows) Len() int {
	return len(r.CERSAI) + len(r.MCA21) + len(r.Rural) + len(r.Urban)
}
