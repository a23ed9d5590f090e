package sqlbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionClosed is returned by any operation attempted after Close.
	ErrConnectionClosed = errors.New("connection closed")
	// ErrTransactionActive is returned when a transaction is started while one is in progress
	ErrTransactionActive = errors.New("transaction already active")
	// ErrInvalidIdentifier is returned when a table or column name cannot be safely interpolated
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrDuplicateColumn is returned when a record names the same column twice
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrEmptyRecord is returned when a statement is built from no records or an empty record
	ErrEmptyRecord = errors.New("empty record")
	// ErrUnknownEngine is returned when an engine identifier is not recognized
	ErrUnknownEngine = errors.New("unknown engine")
)

// ConfigError reports an unrecognized engine identifier or a malformed
// connection string.
type ConfigError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %q: %v", e.Reason, e.Input, e.Err)
	}
	return fmt.Sprintf("config: %s: %q", e.Reason, e.Input)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ConnectionError reports a failure to open or authenticate a session.
// It is fatal to the connection attempt; nothing is retried.
type ConnectionError struct {
	Engine Engine
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Engine, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError is the error carried in Result.Err when a fetch, execute or
// transaction operation fails.
type QueryError struct {
	// Op names the failed operation, e.g. "fetch" or "execute batch".
	Op string
	// SQL is the statement text as sent to the driver, if any.
	SQL string
	// Code is the driver-native error code when the driver exposes one
	// (MySQL error number, PostgreSQL SQLSTATE, SQLite extended result code).
	Code string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
