// Package records loads business documents handed over by the host, either
// from a local file or from an http(s) URL.
package records

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/sharedhttp"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the wire form of a record. YAML and JSON share the same keys.
type Document struct {
	DocType   string   `yaml:"doctype" json:"doctype"`
	Code      string   `yaml:"code" json:"code"`
	Number    string   `yaml:"number" json:"number"`
	Serie     string   `yaml:"serie" json:"serie"`
	Date      string   `yaml:"date" json:"date"`
	CompanyID int      `yaml:"company_id" json:"company_id"`
	Subject   *Subject `yaml:"subject" json:"subject"`
}

type Subject struct {
	Kind      string `yaml:"kind" json:"kind"`
	ShortName string `yaml:"short_name" json:"short_name"`
	LegalName string `yaml:"legal_name" json:"legal_name"`
	TaxID     string `yaml:"tax_id" json:"tax_id"`
}

var ErrMissingDocType = errors.New("record is missing doctype")

// Record converts the wire form, resolving the counterparty kind once here.
func (d Document) Record() (domain.Record, error) {
	if strings.TrimSpace(d.DocType) == "" {
		return domain.Record{}, ErrMissingDocType
	}

	r := domain.Record{
		DocType:   d.DocType,
		Code:      d.Code,
		Number:    d.Number,
		Serie:     d.Serie,
		Date:      d.Date,
		CompanyID: d.CompanyID,
	}

	if d.Subject != nil {
		r.Party = &domain.Counterparty{
			Kind:      domain.ParseCounterpartyKind(d.Subject.Kind),
			ShortName: d.Subject.ShortName,
			LegalName: d.Subject.LegalName,
			TaxID:     d.Subject.TaxID,
		}
	}

	return r, nil
}

// Parse decodes a YAML (or JSON) document.
func Parse(data []byte) (domain.Record, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Record{}, errors.Wrap(err, "could not decode record")
	}

	return doc.Record()
}

// Load reads a record from a path or an http(s) URL.
func Load(ctx context.Context, location string) (domain.Record, error) {
	var (
		data []byte
		err  error
	)

	if isRemote(location) {
		data, err = fetch(ctx, location)
	} else {
		data, err = os.ReadFile(location)
		err = errors.Wrapf(err, "could not read record file %s", location)
	}
	if err != nil {
		return domain.Record{}, err
	}

	return Parse(data)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("User-Agent", "pdfnamer")
	req.Header.Set("Accept", "application/yaml, application/json")

	client := http.Client{
		Timeout:   30 * time.Second,
		Transport: sharedhttp.Transport,
	}

	var data []byte

	retryErr := retry.Do(func() error {
		resp, err := client.Do(req)
		if err != nil {
			return errors.Wrap(err, "failed to get record")
		}
		defer resp.Body.Close()

		if err := sharedhttp.CheckStatusCode(resp.StatusCode); err != nil {
			return err
		}

		data, err = io.ReadAll(bufio.NewReader(resp.Body))
		if err != nil {
			return errors.Wrap(err, "failed to read record")
		}

		return nil
	},
		retry.Context(ctx),
		retry.Delay(time.Second*3),
		retry.Attempts(3),
		retry.MaxJitter(time.Second*1),
	)

	return data, retryErr
}
