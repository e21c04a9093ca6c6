package company

import (
	"context"
	"time"

	"pdfnamer/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const companyTable = "companies"

var companyColumns = []string{
	"id",
	"COALESCE(short_name, '') AS short_name",
	"COALESCE(name, '') AS name",
	"COALESCE(tax_id, '') AS tax_id",
}

// Connect opens a small read-only pool; lookups are single-row reads.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse DSN")
	}

	poolConfig.MaxConns = 4
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET application_name = 'pdfnamer'")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return pool, nil
}

// Postgres reads companies from the host database.
type Postgres struct {
	db pgxscan.Querier
}

func NewPostgres(db pgxscan.Querier) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Company(ctx context.Context, id int) (domain.Company, error) {
	var c domain.Company

	sql, args, err := companyQuery(id)
	if err != nil {
		return c, errors.Wrap(err, "build company query")
	}

	if err := pgxscan.Get(ctx, p.db, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return c, errors.Wrapf(ErrNotFound, "id %d", id)
		}
		return c, errors.Wrapf(err, "get company %d", id)
	}

	return c, nil
}

func companyQuery(id int) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select(companyColumns...).
		From(companyTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
}
