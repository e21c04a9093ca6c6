package tokens

import (
	"context"
	"testing"

	"pdfnamer/internal/domain"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanies struct {
	companies map[int]domain.Company
	err       error
	calls     int
}

func (f *fakeCompanies) Company(_ context.Context, id int) (domain.Company, error) {
	f.calls++
	if f.err != nil {
		return domain.Company{}, f.err
	}

	c, ok := f.companies[id]
	if !ok {
		return domain.Company{}, errors.Errorf("company %d not found", id)
	}

	return c, nil
}

func newFakeCompanies() *fakeCompanies {
	return &fakeCompanies{
		companies: map[int]domain.Company{
			1: {ID: 1, ShortName: "E-1336", Name: "Mi Empresa S.L.", TaxID: "B12345678"},
			2: {ID: 2, Name: "Sin Nombre Corto S.A.", TaxID: "A87654321"},
		},
	}
}

func TestExtract_FullRecord(t *testing.T) {
	record := domain.Record{
		DocType:   "FacturaCliente",
		Code:      "FAC2026A2",
		Number:    "2",
		Serie:     "A",
		Date:      "15-01-2026",
		CompanyID: 1,
		Party: &domain.Counterparty{
			Kind:      domain.KindCustomer,
			ShortName: "cliente1",
			LegalName: "Cliente Uno S.L.",
			TaxID:     "B99999999",
		},
	}

	tokens := Extract(context.Background(), record, newFakeCompanies())

	expected := map[string]string{
		Code:        "FAC2026A2",
		Number:      "2",
		Serie:       "A",
		Date:        "15-01-2026",
		Year:        "2026",
		Month:       "01",
		Day:         "15",
		Company:     "E-1336",
		CompanyName: "Mi Empresa S.L.",
		CompanyCIF:  "B12345678",
		Customer:    "Cliente Uno S.L.",
		CustomerCIF: "B99999999",
		Supplier:    "",
		SupplierCIF: "",
		DocType:     "FacturaCliente",
	}
	assert.Equal(t, expected, tokens.Map())
}

func TestExtract_VocabularyAlwaysPresent(t *testing.T) {
	tokens := Extract(context.Background(), domain.Record{}, nil)

	assert.Equal(t, Vocabulary, tokens.Names())
	for _, tok := range tokens.Tokens() {
		assert.Empty(t, tok.Value, "token %s", tok.Name)
	}
}

func TestExtract_Dates(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		year  string
		month string
		day   string
	}{
		{name: "host format", date: "15-01-2026", year: "2026", month: "01", day: "15"},
		{name: "iso", date: "2026-01-15", year: "2026", month: "01", day: "15"},
		{name: "dotted", date: "05.03.2025", year: "2025", month: "03", day: "05"},
		{name: "slashes", date: "2024/12/31", year: "2024", month: "12", day: "31"},
		{name: "with time", date: "2026-01-15 10:30:00", year: "2026", month: "01", day: "15"},
		{name: "rfc3339", date: "2026-07-04T08:00:00Z", year: "2026", month: "07", day: "04"},
		{name: "surrounding spaces", date: " 2026-01-15 ", year: "2026", month: "01", day: "15"},
		{name: "empty", date: ""},
		{name: "garbage", date: "not-a-date"},
		{name: "impossible day", date: "31-02-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Extract(context.Background(), domain.Record{Date: tt.date}, nil)

			assert.Equal(t, tt.date, tokens.Value(Date))
			assert.Equal(t, tt.year, tokens.Value(Year))
			assert.Equal(t, tt.month, tokens.Value(Month))
			assert.Equal(t, tt.day, tokens.Value(Day))
		})
	}
}

func TestExtract_Company(t *testing.T) {
	t.Run("short name falls back to legal name", func(t *testing.T) {
		tokens := Extract(context.Background(), domain.Record{CompanyID: 2}, newFakeCompanies())

		assert.Equal(t, "Sin Nombre Corto S.A.", tokens.Value(Company))
		assert.Equal(t, "Sin Nombre Corto S.A.", tokens.Value(CompanyName))
		assert.Equal(t, "A87654321", tokens.Value(CompanyCIF))
	})

	t.Run("not found leaves tokens empty", func(t *testing.T) {
		tokens := Extract(context.Background(), domain.Record{CompanyID: 99, Code: "X"}, newFakeCompanies())

		assert.Empty(t, tokens.Value(Company))
		assert.Empty(t, tokens.Value(CompanyName))
		assert.Empty(t, tokens.Value(CompanyCIF))
		assert.Equal(t, "X", tokens.Value(Code))
	})

	t.Run("lookup error leaves tokens empty", func(t *testing.T) {
		companies := newFakeCompanies()
		companies.err = errors.New("connection refused")

		tokens := Extract(context.Background(), domain.Record{CompanyID: 1}, companies)

		assert.Equal(t, 1, companies.calls)
		assert.Empty(t, tokens.Value(Company))
	})

	t.Run("zero id skips the lookup", func(t *testing.T) {
		companies := newFakeCompanies()

		tokens := Extract(context.Background(), domain.Record{}, companies)

		assert.Zero(t, companies.calls)
		assert.Empty(t, tokens.Value(Company))
	})

	t.Run("nil lookup", func(t *testing.T) {
		tokens := Extract(context.Background(), domain.Record{CompanyID: 1}, nil)

		assert.Empty(t, tokens.Value(Company))
	})
}

func TestExtract_Subject(t *testing.T) {
	tests := []struct {
		name        string
		party       *domain.Counterparty
		customer    string
		customerCIF string
		supplier    string
		supplierCIF string
	}{
		{
			name:        "customer with legal name",
			party:       &domain.Counterparty{Kind: domain.KindCustomer, ShortName: "acme", LegalName: "ACME S.A.", TaxID: "A1"},
			customer:    "ACME S.A.",
			customerCIF: "A1",
		},
		{
			name:        "customer without legal name",
			party:       &domain.Counterparty{Kind: domain.KindCustomer, ShortName: "cliente1", TaxID: "B2"},
			customer:    "cliente1",
			customerCIF: "B2",
		},
		{
			name:        "supplier",
			party:       &domain.Counterparty{Kind: domain.KindSupplier, ShortName: "prov", LegalName: "Proveedor S.L.", TaxID: "B3"},
			supplier:    "Proveedor S.L.",
			supplierCIF: "B3",
		},
		{
			name:  "unknown kind",
			party: &domain.Counterparty{Kind: domain.KindNone, LegalName: "Nobody", TaxID: "X"},
		},
		{
			name: "no subject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Extract(context.Background(), domain.Record{Party: tt.party}, nil)

			assert.Equal(t, tt.customer, tokens.Value(Customer))
			assert.Equal(t, tt.customerCIF, tokens.Value(CustomerCIF))
			assert.Equal(t, tt.supplier, tokens.Value(Supplier))
			assert.Equal(t, tt.supplierCIF, tokens.Value(SupplierCIF))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("01-03-2026")
	require.True(t, ok)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 3, int(d.Month()))
	assert.Equal(t, 1, d.Day())

	_, ok = ParseDate("2026-13-01")
	assert.False(t, ok)
}
