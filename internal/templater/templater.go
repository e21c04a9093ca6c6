package templater

import (
	"regexp"

	"pdfnamer/internal/domain"
)

var templatePattern = regexp.MustCompile(`\{([^{}]+)\}`)

type Templater struct {
	Tokens domain.TokenMap
}

func New(tokens domain.TokenMap) *Templater {
	return &Templater{
		Tokens: tokens,
	}
}

// Render is a shorthand for New(tokens).ExecTemplate(template).
func Render(template string, tokens domain.TokenMap) string {
	return New(tokens).ExecTemplate(template)
}

// ExecTemplate replaces every {name} with its token value in a single pass over
// the template. Substituted values are never scanned again, and placeholders
// without a token are kept as written.
func (t *Templater) ExecTemplate(template string) string {
	if template == "" || t.Tokens.Len() == 0 {
		return template
	}

	return templatePattern.ReplaceAllStringFunc(template, func(match string) string {
		if value, ok := t.Tokens.Get(match[1 : len(match)-1]); ok {
			return value
		}

		return match
	})
}

// Placeholders returns the distinct placeholder names in order of appearance.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		if seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		names = append(names, match[1])
	}

	return names
}

// Unknown returns the placeholders of template that tokens cannot resolve.
func Unknown(template string, tokens domain.TokenMap) []string {
	unknown := make([]string, 0)
	for _, name := range Placeholders(template) {
		if _, ok := tokens.Get(name); !ok {
			unknown = append(unknown, name)
		}
	}

	return unknown
}
