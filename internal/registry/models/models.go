package models

import "time"

// Category names one of the searchable registries.
type Category string

const (
	CategoryEntity      Category = "entity"
	CategoryProperty    Category = "property"
	CategoryTransaction Category = "transaction"
	CategoryDocument    Category = "document"
)

// Categories lists every category in the order general search reports them.
var Categories = []Category{CategoryEntity, CategoryProperty, CategoryTransaction, CategoryDocument}

func (c Category) IsValid() bool {
	switch c {
	case CategoryEntity, CategoryProperty, CategoryTransaction, CategoryDocument:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// Entity is a row of the corporate and individual registry.
type Entity struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Type                 *string   `json:"type"`
	RegistrationNumber   *string   `json:"registration_number"`
	PAN                  *string   `json:"pan"`
	CIN                  *string   `json:"cin"`
	Address              *string   `json:"address"`
	IDType               *string   `json:"id_type"`
	IdentificationNumber *string   `json:"identification_number"`
	ContactInfo          *string   `json:"contact_info"`
	DirectorDetails      *string   `json:"director_details"`
	CompanyStatus        *string   `json:"company_status"`
	CreatedAt            time.Time `json:"created_at"`
}

// Property is a row of the property registry joined with its owner's name.
type Property struct {
	ID            int64     `json:"id"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Pincode       *string   `json:"pincode"`
	PropertyType  *string   `json:"property_type"`
	OwnerEntityID *int64    `json:"owner_entity_id"`
	OwnerName     *string   `json:"owner_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// Transaction is a security-interest transaction joined with the property it
// encumbers and the entity involved. Amount is the decimal text of the column.
type Transaction struct {
	ID              int64     `json:"id"`
	PropertyID      *int64    `json:"property_id"`
	EntityID        *int64    `json:"entity_id"`
	Type            *string   `json:"type"`
	Amount          *string   `json:"amount"`
	Date            *string   `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyAddress *string   `json:"property_address"`
	PropertyCity    *string   `json:"property_city"`
	PropertyState   *string   `json:"property_state"`
	EntityName      *string   `json:"entity_name"`
}

// Document is a registered document joined with its property and filer.
type Document struct {
	ID              int64     `json:"id"`
	PropertyID      *int64    `json:"property_id"`
	EntityID        *int64    `json:"entity_id"`
	DocType         *string   `json:"doc_type"`
	DocURL          *string   `json:"doc_url"`
	IssuedAt        *string   `json:"issued_at"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyAddress *string   `json:"property_address"`
	PropertyCity    *string   `json:"property_city"`
	PropertyState   *string   `json:"property_state"`
	EntityName      *string   `json:"entity_name"`
	EntityType      *string   `json:"entity_type"`
}
