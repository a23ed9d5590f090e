// Package sqlite implements the embedded-file dialect using modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sqlitedriver "modernc.org/sqlite"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Dialect is the SQLite strategy.
type Dialect struct{}

var _ dialect.Dialect = Dialect{}

func (Dialect) Engine() sqlbridge.Engine { return sqlbridge.EngineSQLite }

func (Dialect) DefaultPort() int { return 0 }

func (Dialect) Placeholder(int) string { return "?" }

// Paginate uses the "LIMIT skip,limit" form. A negative limit means no upper
// bound to SQLite.
func (Dialect) Paginate(query string, limit, skip int) string {
	return fmt.Sprintf("SELECT * FROM (%s) LIMIT %d,%d", query, skip, limit)
}

// Open opens the database file at d.Path, creating it if absent.
func (Dialect) Open(_ context.Context, d dialect.Descriptor) (*sql.DB, error) {
	if d.Path == "" {
		return nil, errors.New("open sqlite: empty path")
	}
	db, err := sql.Open(DriverName, d.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func (Dialect) TxOptions() *sql.TxOptions { return nil }

func (Dialect) TablesQuery() string {
	return `SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
}

func (Dialect) TableExistsQuery() string {
	return `SELECT name FROM sqlite_master WHERE type='table' AND name=?`
}

// ErrorCode returns the SQLite extended result code.
func (Dialect) ErrorCode(err error) string {
	var se *sqlitedriver.Error
	if errors.As(err, &se) {
		return strconv.Itoa(se.Code())
	}
	return ""
}
