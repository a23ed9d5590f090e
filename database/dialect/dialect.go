// Package dialect defines the per-engine strategy used by the database package
// to translate logical operations into engine-specific SQL.
package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/sagarc03/sqlbridge"
)

// Descriptor holds everything needed to open a session against one engine.
// Host and Port are empty for embedded engines.
type Descriptor struct {
	Engine   sqlbridge.Engine
	Host     string
	Port     int
	Path     string
	Username string
	Password string
}

// Addr returns host:port for network engines.
func (d Descriptor) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// String renders the descriptor without the password.
func (d Descriptor) String() string {
	if d.Engine.IsEmbedded() {
		return fmt.Sprintf("%s:%s", d.Engine, d.Path)
	}
	user := d.Username
	if d.Password != "" {
		user += ":***"
	}
	if user != "" {
		user += "@"
	}
	return fmt.Sprintf("%s:%s%s/%d:%s", d.Engine, user, d.Host, d.Port, d.Path)
}

// Dialect is the strategy selected once per connection. It centralizes every
// syntax decision that differs between engines.
type Dialect interface {
	// Engine returns the engine this dialect serves.
	Engine() sqlbridge.Engine

	// DefaultPort is used when a connection string omits the port.
	// Zero for embedded engines.
	DefaultPort() int

	// Placeholder returns the token for the n-th positional parameter (1-based).
	Placeholder(n int) string

	// Paginate wraps query in the engine's pagination envelope. limit and skip
	// are interpolated unvalidated; the engine rejects values it cannot use.
	Paginate(query string, limit, skip int) string

	// Open returns a handle for the descriptor. It does not have to contact
	// the server; callers ping the pinned connection afterwards.
	Open(ctx context.Context, d Descriptor) (*sql.DB, error)

	// TxOptions returns the options used to begin a transaction, or nil for
	// driver defaults.
	TxOptions() *sql.TxOptions

	// TablesQuery lists user tables as a single "name" column.
	TablesQuery() string

	// TableExistsQuery selects one row when the table named by the first
	// parameter exists.
	TableExistsQuery() string

	// ErrorCode extracts the driver-native error code from err, or "".
	ErrorCode(err error) string
}

// Placeholders returns n placeholders numbered from start, joined by ", ".
func Placeholders(d Dialect, start, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, d.Placeholder(start+i)...)
	}
	return string(buf)
}
