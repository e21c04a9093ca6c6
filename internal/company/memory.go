// Package company resolves the company a document was issued by.
package company

import (
	"context"

	"pdfnamer/internal/domain"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("company not found")

// Memory serves companies from a fixed list, usually the one in config.yaml.
type Memory struct {
	companies map[int]domain.Company
}

func NewMemory(companies []domain.Company) *Memory {
	m := &Memory{
		companies: make(map[int]domain.Company, len(companies)),
	}

	for _, c := range companies {
		m.companies[c.ID] = c
	}

	return m
}

func (m *Memory) Company(_ context.Context, id int) (domain.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return domain.Company{}, errors.Wrapf(ErrNotFound, "id %d", id)
	}

	return c, nil
}
