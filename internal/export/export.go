// Package export emits rendered documents with a user-configured display name.
package export

import (
	"context"
	"net/http"
	"strings"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/filename"
	"pdfnamer/internal/sanitize"

	"github.com/pkg/errors"
)

// DefaultName is used when neither a pattern nor the record yields a name.
const DefaultName = "document"

var ErrNoDocument = errors.New("no document added")

// Renderer produces the document artifact.
type Renderer interface {
	Render(record domain.Record, toks domain.TokenMap) ([]byte, error)
}

// PDFExport is not safe for concurrent use; create one per response.
type PDFExport struct {
	builder  *filename.Builder
	renderer Renderer

	record         domain.Record
	doc            []byte
	customFileName string
}

var _ domain.DocumentExporter = (*PDFExport)(nil)

func NewPDF(builder *filename.Builder, renderer Renderer) *PDFExport {
	return &PDFExport{
		builder:  builder,
		renderer: renderer,
	}
}

// AddDocument renders the record and, when a pattern is configured for its
// document type, keeps the generated name as the display name.
func (e *PDFExport) AddDocument(ctx context.Context, record domain.Record) error {
	toks := e.builder.Tokens(ctx, record)

	if pattern := e.builder.Pattern(record.DocType); pattern != "" {
		if name := e.builder.Format(pattern, toks); name != "" {
			e.customFileName = name
		}
	}

	doc, err := e.renderer.Render(record, toks)
	if err != nil {
		return errors.Wrapf(err, "could not render %s %s", record.DocType, record.Code)
	}

	e.record = record
	e.doc = doc

	return nil
}

// SetFileName overrides the display name. The name is sanitized; one that
// sanitizes to nothing restores the default.
func (e *PDFExport) SetFileName(name string) {
	e.customFileName = e.builder.Sanitize(name)
}

// FileName returns the display name without extension.
func (e *PDFExport) FileName() string {
	if e.customFileName != "" {
		return e.customFileName
	}

	return DefaultFileName(e.record)
}

func (e *PDFExport) Document() []byte {
	return e.doc
}

// Show writes the document inline with its display name.
func (e *PDFExport) Show(w http.ResponseWriter) error {
	if len(e.doc) == 0 {
		return ErrNoDocument
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", ContentDisposition(e.FileName()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(e.doc); err != nil {
		return errors.Wrap(err, "could not write document")
	}

	return nil
}

func ContentDisposition(name string) string {
	return `inline; filename="` + name + `.pdf"`
}

// DefaultFileName is the host naming used when no pattern applies:
// <DocType>_<Code>, sanitized.
func DefaultFileName(record domain.Record) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{record.DocType, record.Code} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	name := sanitize.Filename(strings.Join(parts, "_"))
	if name == "" {
		return DefaultName
	}

	return name
}
