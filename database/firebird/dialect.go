// Package firebird implements the Firebird dialect using
// github.com/nakagami/firebirdsql.
package firebird

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/nakagami/firebirdsql" // Firebird driver

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
)

const (
	// DriverName is the database/sql driver registered by firebirdsql.
	DriverName = "firebirdsql"
	// DefaultPort is the standard Firebird server port.
	DefaultPort = 3050
)

type Dialect struct{}

var _ dialect.Dialect = Dialect{}

func (Dialect) Engine() sqlbridge.Engine { return sqlbridge.EngineFirebird }

func (Dialect) DefaultPort() int { return DefaultPort }

func (Dialect) Placeholder(int) string { return "?" }

func (Dialect) Paginate(query string, limit, skip int) string {
	return fmt.Sprintf("SELECT FIRST %d SKIP %d * FROM (%s)", limit, skip, query)
}

// DSN renders the firebirdsql form user:password@host:port/path.
func DSN(d dialect.Descriptor) string {
	return url.UserPassword(d.Username, d.Password).String() + "@" + d.Addr() + "/" + d.Path
}

func (Dialect) Open(_ context.Context, d dialect.Descriptor) (*sql.DB, error) {
	if d.Host == "" || d.Path == "" {
		return nil, errors.New("open firebird: host and database path are required")
	}
	db, err := sql.Open(DriverName, DSN(d))
	if err != nil {
		return nil, fmt.Errorf("open firebird: %w", err)
	}
	return db, nil
}

// TxOptions requests snapshot isolation, which is what the Firebird
// transaction manager starts by default.
func (Dialect) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
}

func (Dialect) TablesQuery() string {
	return `SELECT TRIM(RDB$RELATION_NAME) AS name FROM RDB$RELATIONS
		WHERE COALESCE(RDB$SYSTEM_FLAG, 0) = 0 AND RDB$VIEW_BLR IS NULL
		ORDER BY 1`
}

// TableExistsQuery matches unquoted names, which Firebird stores upper-cased.
func (Dialect) TableExistsQuery() string {
	return `SELECT TRIM(RDB$RELATION_NAME) AS name FROM RDB$RELATIONS
		WHERE COALESCE(RDB$SYSTEM_FLAG, 0) = 0 AND TRIM(RDB$RELATION_NAME) = UPPER(?)`
}

// ErrorCode is empty: firebirdsql reports failures as plain message errors.
func (Dialect) ErrorCode(error) string { return "" }
