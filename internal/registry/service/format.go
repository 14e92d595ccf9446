package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"udaan/internal/registry/models"
)

// Sources reported on result cards.
const (
	sourceMCA    = "MCA"
	sourceDORIS  = "DORIS"
	sourceCERSAI = "CERSAI"
)

// ist is the zone card dates are rendered in.
var ist = time.FixedZone("IST", 5*60*60+30*60)

func entityCard(e models.Entity) models.ResultCard {
	var subtitle string
	switch {
	case present(e.CIN):
		subtitle = "CIN: " + *e.CIN
	case present(e.PAN):
		subtitle = "PAN: " + *e.PAN
	default:
		subtitle = "Registration: " + or(e.RegistrationNumber, "N/A")
	}
	return models.ResultCard{
		ID:          e.ID,
		Type:        models.CategoryEntity,
		Title:       e.Name,
		Subtitle:    subtitle,
		Description: capitalize(or(e.Type, ""), "Entity") + " record.",
		Source:      sourceMCA,
		Date:        updatedOn(e.CreatedAt),
	}
}

// entityDetailCard is the card entity search returns: the summary plus the
// advanced fields shown on the details view.
func entityDetailCard(e models.Entity) models.ResultCard {
	c := entityCard(e)
	c.EntityDetails = &models.EntityDetails{
		IDType:               e.IDType,
		IdentificationNumber: e.IdentificationNumber,
		ContactInfo:          e.ContactInfo,
		DirectorDetails:      e.DirectorDetails,
		CompanyStatus:        e.CompanyStatus,
	}
	return c
}

func propertyCard(p models.Property) models.ResultCard {
	city := or(p.City, "")
	return models.ResultCard{
		ID:       p.ID,
		Type:     models.CategoryProperty,
		Title:    capitalize(or(p.PropertyType, ""), "Property") + " - " + city,
		Subtitle: fmt.Sprintf("Registration #: PROP%05d", p.ID),
		Description: fmt.Sprintf("%s, %s, %s - %s. Owner: %s",
			or(p.Address, ""), city, or(p.State, ""), or(p.Pincode, ""), or(p.OwnerName, "Unknown")),
		Source: sourceDORIS,
		Date:   updatedOn(p.CreatedAt),
	}
}

func transactionCard(t models.Transaction) models.ResultCard {
	typ := or(t.Type, "")
	return models.ResultCard{
		ID:       t.ID,
		Type:     models.CategoryTransaction,
		Title:    capitalize(typ, "Transaction") + " Record",
		Subtitle: fmt.Sprintf("Transaction ID: TRANS%05d", t.ID),
		Description: fmt.Sprintf("%s transaction of ₹%s on property at %s, involving %s.",
			or(t.Type, "Unspecified"), formatRupees(or(t.Amount, "0")),
			or(t.PropertyAddress, "unknown address"), or(t.EntityName, "Unknown")),
		Source: sourceCERSAI,
		Date:   updatedOn(t.CreatedAt),
	}
}

func documentCard(d models.Document) models.ResultCard {
	title := "Document"
	if present(d.DocType) {
		words := strings.Split(*d.DocType, "_")
		for i, w := range words {
			words[i] = capitalize(w, "")
		}
		title = strings.Join(words, " ")
	}
	return models.ResultCard{
		ID:       d.ID,
		Type:     models.CategoryDocument,
		Title:    title,
		Subtitle: fmt.Sprintf("Document #: DOC%05d", d.ID),
		Description: fmt.Sprintf("Document related to property at %s, %s. Filed by %s.",
			or(d.PropertyAddress, "unknown address"), or(d.PropertyCity, ""), or(d.EntityName, "Unknown")),
		Source: sourceDORIS,
		Date:   updatedOn(d.CreatedAt),
	}
}

func updatedOn(t time.Time) string {
	return "Updated on " + t.In(ist).Format("02 Jan 2006")
}

// capitalize upper-cases the first rune of s, or returns fallback when s is empty.
func capitalize(s, fallback string) string {
	if s == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// formatRupees groups a decimal amount the Indian way (12,34,567.5). Trailing
// zeros of the fraction are dropped. Text that is not a plain decimal is
// returned unchanged.
func formatRupees(amount string) string {
	amount = strings.TrimSpace(amount)
	sign := ""
	if strings.HasPrefix(amount, "-") {
		sign, amount = "-", amount[1:]
	}
	whole, frac, _ := strings.Cut(amount, ".")
	if whole == "" || !allDigits(whole) || !allDigits(frac) {
		return sign + amount
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	b.WriteString(sign)
	if len(whole) <= 3 {
		b.WriteString(whole)
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		lead := len(head) % 2
		if lead > 0 {
			b.WriteString(head[:lead])
		}
		for i := lead; i < len(head); i += 2 {
			if b.Len() > len(sign) {
				b.WriteByte(',')
			}
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(tail)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
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
