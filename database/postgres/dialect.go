// Package postgres implements the PostgreSQL dialect using pgx through its
// database/sql adapter.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
)

// DefaultPort is the standard PostgreSQL server port.
const DefaultPort = 5432

type Dialect struct{}

var _ dialect.Dialect = Dialect{}

func (Dialect) Engine() sqlbridge.Engine { return sqlbridge.EnginePostgres }

func (Dialect) DefaultPort() int { return DefaultPort }

// Placeholder returns $n; PostgreSQL numbers its parameters.
func (Dialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

// Paginate wraps query in a derived table; PostgreSQL before 16 requires the alias.
func (Dialect) Paginate(query string, limit, skip int) string {
	return fmt.Sprintf("SELECT * FROM (%s) AS paged LIMIT %d OFFSET %d", query, limit, skip)
}

// ConnString renders d as a postgres:// URL understood by pgx.
func ConnString(d dialect.Descriptor) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   d.Addr(),
		Path:   "/" + d.Path,
	}
	if d.Username != "" {
		u.User = url.UserPassword(d.Username, d.Password)
	}
	return u.String()
}

func (Dialect) Open(_ context.Context, d dialect.Descriptor) (*sql.DB, error) {
	if d.Host == "" {
		return nil, errors.New("open postgres: host is required")
	}
	cfg, err := pgx.ParseConfig(ConnString(d))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return stdlib.OpenDB(*cfg), nil
}

func (Dialect) TxOptions() *sql.TxOptions { return nil }

func (Dialect) TablesQuery() string {
	return `SELECT table_name AS name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`
}

func (Dialect) TableExistsQuery() string {
	return `SELECT table_name AS name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = $1`
}

// ErrorCode returns the SQLSTATE reported by the server.
func (Dialect) ErrorCode(err error) string {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
