package files

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"pdfnamer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderer_Render(t *testing.T) {
	record := domain.Record{
		DocType: "FacturaCliente",
		Code:    "FAC2026A2",
		Date:    "01-03-2026",
	}
	toks := domain.NewTokenMap(
		domain.Token{Name: "company", Value: "E-1336"},
		domain.Token{Name: "company_name", Value: "Mi Empresa S.L."},
		domain.Token{Name: "customer", Value: "Peñalver Ibáñez"},
	)

	data, err := NewPDFRenderer().Render(record, toks)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestPDFRenderer_EmptyRecord(t *testing.T) {
	data, err := NewPDFRenderer().Render(domain.Record{}, domain.TokenMap{})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSummary(t *testing.T) {
	toks := domain.NewTokenMap(
		domain.Token{Name: "company", Value: "E-1336"},
		domain.Token{Name: "supplier", Value: "Proveedor S.L."},
	)

	lines := summary(domain.Record{Code: "FP1"}, toks)

	assert.Contains(t, lines, [2]string{"Code", "FP1"})
	assert.Contains(t, lines, [2]string{"Company", "E-1336"})
	assert.Contains(t, lines, [2]string{"Supplier", "Proveedor S.L."})
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "2026", "FAC001 ACME.pdf")

	require.NoError(t, WritePDF(path, []byte("%PDF-test")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-test", string(data))
}

func TestIsValidLocation(t *testing.T) {
	assert.NoError(t, IsValidLocation(t.TempDir()))
	assert.Error(t, IsValidLocation(filepath.Join(t.TempDir(), "missing")))
}
