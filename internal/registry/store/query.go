package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"udaan/internal/registry/models"
)

// ErrNoFilters is returned when a category search carries no usable field.
var ErrNoFilters = errors.New("at least one search parameter is required")

// predicates accumulates parameterised WHERE conditions. Placeholders are
// numbered in the order conditions are added.
type predicates struct {
	conds []string
	args  []any
}

func (p *predicates) next(arg any) string {
	p.args = append(p.args, arg)
	return "$" + strconv.Itoa(len(p.args))
}

// contains adds a case-insensitive substring match on col. Blank values are skipped.
func (p *predicates) contains(col, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	p.conds = append(p.conds, "LOWER("+col+") LIKE LOWER("+p.next("%"+v+"%")+")")
}

// equalFold adds a case-insensitive equality match on col.
func (p *predicates) equalFold(col, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	p.conds = append(p.conds, "LOWER("+col+") = LOWER("+p.next(v)+")")
}

// anyFold matches col case-insensitively against any of values.
func (p *predicates) anyFold(col string, values []string) {
	lowered := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			lowered = append(lowered, v)
		}
	}
	switch len(lowered) {
	case 0:
		return
	case 1:
		p.equalFold(col, lowered[0])
	default:
		p.conds = append(p.conds, "LOWER("+col+") = ANY("+p.next(pq.Array(lowered))+")")
	}
}

// compare adds "expr op $n".
func (p *predicates) compare(expr, op string, v any) {
	p.conds = append(p.conds, expr+" "+op+" "+p.next(v))
}

func (p *predicates) where(join string) (string, error) {
	if len(p.conds) == 0 {
		return "", ErrNoFilters
	}
	return "WHERE " + strings.Join(p.conds, " "+join+" "), nil
}

func entityPredicates(f models.EntityFilter) *predicates {
	p := &predicates{}
	p.contains("name", f.Name)
	p.equalFold("id_type", f.IDType)
	p.contains("identification_number", f.IdentificationNumber)
	p.contains("contact_info", f.ContactInfo)
	p.contains("name", f.CompanyName)
	p.contains("cin", f.CINNumber)
	p.contains("director_details", f.DirectorDetails)
	if !strings.EqualFold(strings.TrimSpace(f.CompanyStatus), "any") {
		p.equalFold("company_status", f.CompanyStatus)
	}
	p.contains("registration_number", f.RegistrationNumber)
	p.contains("pan", f.PAN)
	p.contains("cin", f.CIN)
	return p
}

func propertyPredicates(f models.PropertyFilter) *predicates {
	p := &predicates{}
	p.contains("p.address", f.Address)
	p.contains("p.city", f.City)
	p.contains("p.state", f.State)
	p.contains("p.pincode", f.Pincode)
	p.anyFold("p.property_type", f.PropertyTypes)
	return p
}

func transactionPredicates(f models.TransactionFilter) *predicates {
	p := &predicates{}
	p.anyFold("t.type", f.Types)
	if v := strings.TrimSpace(f.DateFrom); v != "" {
		p.compare("t.date", ">=", v)
	}
	if v := strings.TrimSpace(f.DateTo); v != "" {
		p.compare("t.date", "<=", v)
	}
	if f.MinAmount != nil {
		p.compare("t.amount", ">=", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		p.compare("t.amount", "<=", *f.MaxAmount)
	}
	return p
}

func documentPredicates(f models.DocumentFilter) *predicates {
	p := &predicates{}
	if f.DocumentID != nil {
		p.compare("d.id", "=", *f.DocumentID)
	}
	p.equalFold("d.doc_type", f.DocumentType)
	p.contains("e.name", f.FiledBy)
	if f.YearFiled != nil {
		p.compare("EXTRACT(YEAR FROM d.issued_at)", "=", *f.YearFiled)
	}
	p.contains("p.address", f.RegistrationOffice)
	return p
}

// generalPredicates matches term against every searchable column of a category.
func generalPredicates(cat models.Category, term string) *predicates {
	p := &predicates{}
	arg := p.next("%" + term + "%")
	var cols []string
	switch cat {
	case models.CategoryEntity:
		cols = []string{"name", "registration_number", "pan", "cin"}
	case models.CategoryProperty:
		cols = []string{"p.address", "p.city", "p.state", "p.pincode"}
	case models.CategoryTransaction:
		cols = []string{"p.address", "p.city", "e.name"}
	case models.CategoryDocument:
		cols = []string{"d.doc_type", "p.address", "e.name"}
	}
	for _, c := range cols {
		p.conds = append(p.conds, "LOWER("+c+") LIKE LOWER("+arg+")")
	}
	if cat == models.CategoryTransaction {
		p.conds = append(p.conds, "CAST(t.amount AS TEXT) LIKE "+arg)
	}
	return p
}
