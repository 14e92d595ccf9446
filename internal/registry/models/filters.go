package models

import (
	"encoding/json"
	"net/url"
)

// EntityFilter holds the entity search fields. Individual and corporate forms
// share it; CompanyName and CINNumber are the corporate spellings of Name and CIN.
type EntityFilter struct {
	Name                 string
	RegistrationNumber   string
	PAN                  string
	CIN                  string
	IDType               string
	IdentificationNumber string
	ContactInfo          string
	CompanyName          string
	CINNumber            string
	DirectorDetails      string
	CompanyStatus        string
}

// PropertyFilter holds the property search fields. PropertyTypes may list
// several types; a property matches any of them.
type PropertyFilter struct {
	Address       string
	City          string
	State         string
	Pincode       string
	PropertyTypes []string
}

// TransactionFilter holds the transaction search fields. Dates are
// YYYY-MM-DD and bounds are inclusive.
type TransactionFilter struct {
	Types     []string
	DateFrom  string
	DateTo    string
	MinAmount *float64
	MaxAmount *float64
}

// DocumentFilter holds the document search fields. RegistrationOffice is
// matched against the property address.
type DocumentFilter struct {
	DocumentID         *int64
	DocumentType       string
	RegistrationOffice string
	FiledBy            string
	YearFiled          *int
}

// QueryLog renders request query parameters the way the search log stores
// category searches: a JSON object of the first value of each parameter.
func QueryLog(values url.Values) string {
	flat := make(map[string]string, len(values))
	for k := range values {
		flat[k] = values.Get(k)
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return "{}"
	}
	return string(b)
}
