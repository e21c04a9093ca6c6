package files

import (
	"bytes"
	"os"
	"path/filepath"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/tokens"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

func IsValidLocation(location string) error {
	if _, err := os.Stat(location); err != nil {
		return err
	}

	return nil
}

// PDFRenderer draws a one page summary of a business document.
type PDFRenderer struct {
	Author string
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{Author: "pdfnamer"}
}

// Render returns the PDF bytes for record. toks supplies the resolved company
// and counterparty names.
func (r *PDFRenderer) Render(record domain.Record, toks domain.TokenMap) ([]byte, error) {
	pdf := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, fpdf.PageSizeA4, "")

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := record.DocType
	if record.Code != "" {
		title += " " + record.Code
	}

	pdf.SetTitle(title, true)
	pdf.SetAuthor(r.Author, true)

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range summary(record, toks) {
		if line[1] == "" {
			continue
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(line[1]), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "could not render pdf")
	}

	return buf.Bytes(), nil
}

func summary(record domain.Record, toks domain.TokenMap) [][2]string {
	company := toks.Value(tokens.CompanyName)
	if company == "" {
		company = toks.Value(tokens.Company)
	}

	return [][2]string{
		{"Code", record.Code},
		{"Number", record.Number},
		{"Serie", record.Serie},
		{"Date", record.Date},
		{"Company", company},
		{"Tax ID", toks.Value(tokens.CompanyCIF)},
		{"Customer", toks.Value(tokens.Customer)},
		{"Customer tax ID", toks.Value(tokens.CustomerCIF)},
		{"Supplier", toks.Value(tokens.Supplier)},
		{"Supplier tax ID", toks.Value(tokens.SupplierCIF)},
	}
}

// WritePDF writes data to pdfPath, creating parent directories as needed.
func WritePDF(pdfPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(pdfPath), os.ModePerm); err != nil {
		return errors.Wrapf(err, "could not create directory for %s", pdfPath)
	}

	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write %s", pdfPath)
	}

	return nil
}
