package domain

import (
	"context"
	"net/http"
)

// CompanyLookup resolves the company a document belongs to.
type CompanyLookup interface {
	Company(ctx context.Context, id int) (Company, error)
}

// Settings is the host's key-value configuration, keyed by plugin and key.
type Settings interface {
	Setting(plugin, key, fallback string) string
}

// DocumentExporter produces a document artifact and lets the caller override
// the display name before the response is emitted.
type DocumentExporter interface {
	AddDocument(ctx context.Context, record Record) error
	SetFileName(name string)
	FileName() string
	Show(w http.ResponseWriter) error
}
