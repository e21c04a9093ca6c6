package tokens

import (
	"context"
	"strings"
	"time"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/logger"
)

const (
	Code        = "code"
	Number      = "number"
	Serie       = "serie"
	Date        = "date"
	Year        = "year"
	Month       = "month"
	Day         = "day"
	Company     = "company"
	CompanyName = "company_name"
	CompanyCIF  = "company_cif"
	Customer    = "customer"
	CustomerCIF = "customer_cif"
	Supplier    = "supplier"
	SupplierCIF = "supplier_cif"
	DocType     = "doctype"
)

// Vocabulary lists every token the extractor produces, in output order.
var Vocabulary = []string{
	Code, Number, Serie, Date,
	Year, Month, Day,
	Company, CompanyName, CompanyCIF,
	Customer, CustomerCIF,
	Supplier, SupplierCIF,
	DocType,
}

// the host stores dates as dd-mm-yyyy, the rest are accepted from imports
var dateLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02.01.2006",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type Extractor struct {
	companies domain.CompanyLookup
	log       logger.Logger
}

func NewExtractor(companies domain.CompanyLookup, log logger.Logger) *Extractor {
	if log == nil {
		log = logger.Nop()
	}

	return &Extractor{
		companies: companies,
		log:       log,
	}
}

// Extract builds the token map for a record with a silent logger.
func Extract(ctx context.Context, record domain.Record, companies domain.CompanyLookup) domain.TokenMap {
	return NewExtractor(companies, nil).Extract(ctx, record)
}

// Extract never fails: anything missing or malformed leaves its tokens empty.
func (e *Extractor) Extract(ctx context.Context, record domain.Record) domain.TokenMap {
	tokens := domain.TokenMap{}
	for _, name := range Vocabulary {
		tokens.Set(name, "")
	}

	tokens.Set(Code, record.Code)
	tokens.Set(Number, record.Number)
	tokens.Set(Serie, record.Serie)
	tokens.Set(Date, record.Date)
	tokens.Set(DocType, record.DocType)

	if date, ok := ParseDate(record.Date); ok {
		tokens.Set(Year, date.Format("2006"))
		tokens.Set(Month, date.Format("01"))
		tokens.Set(Day, date.Format("02"))
	}

	e.company(ctx, record, &tokens)
	e.subject(record, &tokens)

	return tokens
}

func (e *Extractor) company(ctx context.Context, record domain.Record, tokens *domain.TokenMap) {
	if record.CompanyID == 0 || e.companies == nil {
		return
	}

	company, err := e.companies.Company(ctx, record.CompanyID)
	if err != nil {
		e.log.Debug().Err(err).Int("company_id", record.CompanyID).Msg("company lookup failed, leaving company tokens empty")
		return
	}

	// a NULL short name arrives as "" from every lookup
	short := company.ShortName
	if short == "" {
		short = company.Name
	}

	tokens.Set(Company, short)
	tokens.Set(CompanyName, company.Name)
	tokens.Set(CompanyCIF, company.TaxID)
}

func (e *Extractor) subject(record domain.Record, tokens *domain.TokenMap) {
	subject, ok := record.Subject()
	if !ok {
		return
	}

	switch subject.Kind {
	case domain.KindCustomer:
		tokens.Set(Customer, subject.DisplayName())
		tokens.Set(CustomerCIF, subject.TaxID)
	case domain.KindSupplier:
		tokens.Set(Supplier, subject.DisplayName())
		tokens.Set(SupplierCIF, subject.TaxID)
	}
}

// ParseDate tries every known layout and reports whether one matched.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
