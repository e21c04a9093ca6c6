// Package filename turns business documents into file names using the
// per-document-type patterns configured by the user.
package filename

import (
	"context"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/logger"
	"pdfnamer/internal/sanitize"
	"pdfnamer/internal/templater"
	"pdfnamer/internal/tokens"
)

// SettingsPlugin is the settings namespace patterns are stored under.
const SettingsPlugin = "pdffilenamer"

// SettingKey returns the setting holding the pattern for a document type.
func SettingKey(docType string) string {
	return "pattern_" + docType
}

type Builder struct {
	companies domain.CompanyLookup
	settings  domain.Settings
	sanitizer *sanitize.Sanitizer
	extractor *tokens.Extractor
	log       logger.Logger
}

type Option func(*Builder)

func WithMaxLength(maxLength int) Option {
	return func(b *Builder) {
		b.sanitizer = sanitize.New(maxLength)
	}
}

func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// New returns a Builder. Both collaborators may be nil: without companies the
// company tokens stay empty, without settings ForDocument always returns "".
func New(companies domain.CompanyLookup, settings domain.Settings, opts ...Option) *Builder {
	b := &Builder{
		companies: companies,
		settings:  settings,
		sanitizer: sanitize.New(sanitize.DefaultMaxLength),
		log:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.extractor = tokens.NewExtractor(b.companies, b.log)

	return b
}

// Build renders pattern for record and sanitizes the result. An empty pattern
// yields an empty name.
func (b *Builder) Build(ctx context.Context, record domain.Record, pattern string) string {
	if pattern == "" {
		return ""
	}

	return b.Format(pattern, b.Tokens(ctx, record))
}

// ForDocument builds the name from the pattern configured for the record's
// document type. An empty result means the host default naming applies.
func (b *Builder) ForDocument(ctx context.Context, record domain.Record) string {
	return b.Build(ctx, record, b.Pattern(record.DocType))
}

// Pattern returns the configured pattern for a document type, or "".
func (b *Builder) Pattern(docType string) string {
	if b.settings == nil || docType == "" {
		return ""
	}

	return b.settings.Setting(SettingsPlugin, SettingKey(docType), "")
}

func (b *Builder) Tokens(ctx context.Context, record domain.Record) domain.TokenMap {
	return b.extractor.Extract(ctx, record)
}

// Sanitize applies the builder's sanitizer to a name that did not come from a
// pattern.
func (b *Builder) Sanitize(name string) string {
	return b.sanitizer.Filename(name)
}

// Format renders pattern with already extracted tokens.
func (b *Builder) Format(pattern string, toks domain.TokenMap) string {
	if pattern == "" {
		return ""
	}

	name := b.sanitizer.Filename(templater.Render(pattern, toks))

	b.log.Trace().Str("pattern", pattern).Str("filename", name).Msg("built filename")

	return name
}
