package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
)

// DefaultLimit is the page size used by callers that have no preference.
const DefaultLimit = 10

// querier is satisfied by both *sql.Conn and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// DB is a live connection to one engine. It owns exactly one driver session
// for its whole lifetime; there is no pooling and no reconnection.
//
// A DB is not safe for concurrent use. Callers must serialize access.
type DB struct {
	dialect dialect.Dialect
	desc    Descriptor
	handle  *sql.DB
	conn    *sql.Conn
	tx      *sql.Tx
	closed  bool
	session uuid.UUID
	logger  *slog.Logger
}

// Option configures a DB at open time.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the diagnostic sink. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open parses connStr, opens a session against the engine it names and
// verifies it with a ping. The embedded engine creates its file if absent.
//
// Parse failures are returned as *sqlbridge.ConfigError, open failures as
// *sqlbridge.ConnectionError. A failed attempt is not retried.
func Open(ctx context.Context, connStr, username, password string, opts ...Option) (*DB, error) {
	desc, err := ParseConnectionString(connStr, username, password)
	if err != nil {
		return nil, err
	}
	return OpenDescriptor(ctx, desc, opts...)
}

// OpenDescriptor opens a session for an already parsed descriptor.
func OpenDescriptor(ctx context.Context, desc Descriptor, opts ...Option) (*DB, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	dl, err := DialectFor(desc.Engine)
	if err != nil {
		return nil, &sqlbridge.ConfigError{Input: desc.String(), Reason: "unrecognized engine", Err: err}
	}

	if !desc.Engine.IsEmbedded() && desc.Port == 0 {
		desc.Port = dl.DefaultPort()
	}

	session := uuid.New()
	logger := o.logger.With("session", session.String(), "engine", desc.Engine.String())
	logger.Debug("opening database", "target", desc.String())

	handle, err := dl.Open(ctx, desc)
	if err != nil {
		logger.Error("open database failed", "target", desc.String(), "err", err)
		return nil, &sqlbridge.ConnectionError{Engine: desc.Engine, Err: err}
	}
	handle.SetMaxOpenConns(1)

	conn, err := handle.Conn(ctx)
	if err != nil {
		_ = handle.Close()
		logger.Error("open database failed", "target", desc.String(), "err", err)
		return nil, &sqlbridge.ConnectionError{Engine: desc.Engine, Err: fmt.Errorf("acquire connection: %w", err)}
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = handle.Close()
		logger.Error("open database failed", "target", desc.String(), "err", err)
		return nil, &sqlbridge.ConnectionError{Engine: desc.Engine, Err: fmt.Errorf("ping: %w", err)}
	}

	logger.Info("database opened", "target", desc.String())

	return &DB{
		dialect: dl,
		desc:    desc,
		handle:  handle,
		conn:    conn,
		session: session,
		logger:  logger,
	}, nil
}

// Engine returns the engine this connection talks to.
func (d *DB) Engine() sqlbridge.Engine { return d.desc.Engine }

// Dialect returns the strategy selected at open time.
func (d *DB) Dialect() dialect.Dialect { return d.dialect }

// Descriptor returns the parsed connection target.
func (d *DB) Descriptor() Descriptor { return d.desc }

// Session returns the id attached to every log line of this connection.
func (d *DB) Session() uuid.UUID { return d.session }

// InTransaction reports whether a transaction started by StartTransaction is open.
func (d *DB) InTransaction() bool { return d.tx != nil }

// Close rolls back any open transaction and releases the session.
// Closing twice returns sqlbridge.ErrConnectionClosed.
func (d *DB) Close() error {
	if d.closed {
		return sqlbridge.ErrConnectionClosed
	}
	d.closed = true

	var errs []error
	if d.tx != nil {
		if err := d.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, fmt.Errorf("rollback: %w", err))
		}
		d.tx = nil
	}
	if err := d.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		errs = append(errs, fmt.Errorf("close connection: %w", err))
	}
	if err := d.handle.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close handle: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		d.logger.Error("close database failed", "err", err)
		return err
	}
	d.logger.Info("database closed")
	return nil
}

func (d *DB) querier() querier {
	if d.tx != nil {
		return d.tx
	}
	return d.conn
}

func (d *DB) checkOpen(op string) error {
	if d.closed {
		return &sqlbridge.QueryError{Op: op, Err: sqlbridge.ErrConnectionClosed}
	}
	return nil
}

// fail wraps a driver error and logs it. The returned Result never has rows.
func (d *DB) fail(op, query string, err error) sqlbridge.Result {
	qe := &sqlbridge.QueryError{Op: op, SQL: query, Code: d.dialect.ErrorCode(err), Err: err}
	d.logger.Error(op+" failed", "sql", query, "code", qe.Code, "err", err)
	return sqlbridge.Failure(qe)
}
