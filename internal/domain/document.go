package domain

import "strings"

// Record is the business document a filename is built for. It is owned by the
// host; this module only reads it.
type Record struct {
	DocType   string
	Code      string
	Number    string
	Serie     string
	Date      string
	CompanyID int
	Party     *Counterparty
}

// Subject returns the counterparty the document is addressed to, if any.
func (r Record) Subject() (Counterparty, bool) {
	if r.Party == nil {
		return Counterparty{}, false
	}

	return *r.Party, true
}

type CounterpartyKind int

const (
	KindNone CounterpartyKind = iota
	KindCustomer
	KindSupplier
)

func (k CounterpartyKind) String() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindSupplier:
		return "supplier"
	default:
		return "none"
	}
}

// ParseCounterpartyKind accepts both the english names and the host's model
// names (Cliente, Proveedor). Anything else is KindNone.
func ParseCounterpartyKind(s string) CounterpartyKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer", "cliente":
		return KindCustomer
	case "supplier", "proveedor":
		return KindSupplier
	default:
		return KindNone
	}
}

type Counterparty struct {
	Kind      CounterpartyKind
	ShortName string
	LegalName string
	TaxID     string
}

// DisplayName prefers the legal name over the short name.
func (c Counterparty) DisplayName() string {
	if c.LegalName != "" {
		return c.LegalName
	}

	return c.ShortName
}

type Company struct {
	ID        int    `yaml:"id" db:"id"`
	ShortName string `yaml:"shortName" db:"short_name"`
	Name      string `yaml:"name" db:"name"`
	TaxID     string `yaml:"taxId" db:"tax_id"`
}
