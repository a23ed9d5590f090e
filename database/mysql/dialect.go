// Package mysql implements the MySQL/MariaDB dialect using
// github.com/go-sql-driver/mysql.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
)

// DefaultPort is the standard MySQL server port.
const DefaultPort = 3306

type Dialect struct{}

var _ dialect.Dialect = Dialect{}

func (Dialect) Engine() sqlbridge.Engine { return sqlbridge.EngineMySQL }

func (Dialect) DefaultPort() int { return DefaultPort }

func (Dialect) Placeholder(int) string { return "?" }

// Paginate wraps query in a derived table; MySQL requires the alias.
func (Dialect) Paginate(query string, limit, skip int) string {
	return fmt.Sprintf("SELECT * FROM (%s) AS paged LIMIT %d,%d", query, skip, limit)
}

// Config builds the driver configuration for d.
func Config(d dialect.Descriptor) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = d.Username
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = d.Addr()
	cfg.DBName = d.Path
	cfg.ParseTime = true
	return cfg
}

func (Dialect) Open(_ context.Context, d dialect.Descriptor) (*sql.DB, error) {
	if d.Host == "" {
		return nil, errors.New("open mysql: host is required")
	}
	connector, err := mysql.NewConnector(Config(d))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return sql.OpenDB(connector), nil
}

func (Dialect) TxOptions() *sql.TxOptions { return nil }

func (Dialect) TablesQuery() string {
	return `SELECT table_name AS name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`
}

func (Dialect) TableExistsQuery() string {
	return `SELECT table_name AS name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`
}

// ErrorCode returns the MySQL server error number.
func (Dialect) ErrorCode(err error) string {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return strconv.Itoa(int(me.Number))
	}
	return ""
}
