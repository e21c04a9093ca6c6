package cmd

import (
	"context"

	"pdfnamer/internal/buildinfo"
	"pdfnamer/internal/company"
	"pdfnamer/internal/config"
	"pdfnamer/internal/domain"
	"pdfnamer/internal/filename"
	"pdfnamer/internal/logger"

	"github.com/pkg/errors"
)

type app struct {
	cfg     *config.AppConfig
	log     logger.Logger
	builder *filename.Builder
	close   func()
}

// newApp wires config, logger, company lookup and the filename builder.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New(configPath, buildinfo.Version)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Config)

	a := &app{
		cfg:   cfg,
		log:   log,
		close: func() {},
	}

	var companies domain.CompanyLookup
	if cfg.Config.Database.DSN != "" {
		pool, err := company.Connect(ctx, cfg.Config.Database.DSN)
		if err != nil {
			return nil, errors.Wrap(err, "could not connect to company database")
		}
		a.close = pool.Close
		companies = company.NewPostgres(pool)
	} else {
		companies = company.NewMemory(cfg.Config.Companies)
	}

	a.builder = filename.New(companies, cfg,
		filename.WithMaxLength(cfg.Config.MaxLength),
		filename.WithLogger(log),
	)

	return a, nil
}
