package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"udaan/internal/registry/models"
	dErrors "udaan/pkg/domain-errors"
	pkgstrings "udaan/pkg/platform/strings"
)

func splitList(raw string) []string {
	return pkgstrings.SplitLower(raw, ",")
}

func parseCategories(raw string) ([]models.Category, error) {
	var cats []models.Category
	for _, v := range splitList(raw) {
		c := models.Category(v)
		if !c.IsValid() {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown search type: "+v)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func parseEntityFilter(q url.Values) models.EntityFilter {
	return models.EntityFilter{
		Name:                 q.Get("name"),
		RegistrationNumber:   q.Get("registration_number"),
		PAN:                  q.Get("pan"),
		CIN:                  q.Get("cin"),
		IDType:               q.Get("idType"),
		IdentificationNumber: q.Get("identificationNumber"),
		ContactInfo:          q.Get("contactInfo"),
		CompanyName:          q.Get("companyName"),
		CINNumber:            q.Get("cinNumber"),
		DirectorDetails:      q.Get("directorDetails"),
		CompanyStatus:        q.Get("companyStatus"),
	}
}

func parsePropertyFilter(q url.Values) models.PropertyFilter {
	return models.PropertyFilter{
		Address:       q.Get("address"),
		City:          q.Get("city"),
		State:         q.Get("state"),
		Pincode:       q.Get("pincode"),
		PropertyTypes: splitList(q.Get("property_type")),
	}
}

func parseTransactionFilter(q url.Values) (models.TransactionFilter, error) {
	f := models.TransactionFilter{Types: splitList(q.Get("type"))}
	var err error
	if f.DateFrom, err = dateParam(q, "date_from"); err != nil {
		return f, err
	}
	if f.DateTo, err = dateParam(q, "date_to"); err != nil {
		return f, err
	}
	if f.MinAmount, err = floatParam(q, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = floatParam(q, "max_amount"); err != nil {
		return f, err
	}
	return f, nil
}

func parseDocumentFilter(q url.Values) (models.DocumentFilter, error) {
	f := models.DocumentFilter{
		DocumentType:       q.Get("documentType"),
		RegistrationOffice: q.Get("registrationOffice"),
		FiledBy:            q.Get("filedBy"),
	}
	if raw := strings.TrimSpace(q.Get("documentId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, dErrors.New(dErrors.CodeValidation, "documentId must be an integer")
		}
		f.DocumentID = &id
	}
	if raw := strings.TrimSpace(q.Get("yearFiled")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, dErrors.New(dErrors.CodeValidation, "yearFiled must be a year")
		}
		f.YearFiled = &year
	}
	return f, nil
}

func dateParam(q url.Values, name string) (string, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", dErrors.New(dErrors.CodeValidation, name+" must be a YYYY-MM-DD date")
	}
	return raw, nil
}

func floatParam(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, name+" must be a number")
	}
	return &v, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "invalid record id")
	}
	return id, nil
}
