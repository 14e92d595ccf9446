package models

// ResultCard is the summary shown for one search hit.
type ResultCard struct {
	ID          int64    `json:"id"`
	Type        Category `json:"type"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Date        string   `json:"date"`

	*EntityDetails
}

// EntityDetails carries the advanced entity fields that entity search cards
// expose to the details view. They are flattened into the card's JSON.
type EntityDetails struct {
	IDType               *string `json:"id_type"`
	IdentificationNumber *string `json:"identification_number"`
	ContactInfo          *string `json:"contact_info"`
	DirectorDetails      *string `json:"director_details"`
	CompanyStatus        *string `json:"company_status"`
}
