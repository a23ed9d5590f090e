package sqlbridge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/sqlbridge"
)

func TestConfigError(t *testing.T) {
	err := &sqlbridge.ConfigError{Input: "oracle:db", Reason: "unrecognized engine", Err: sqlbridge.ErrUnknownEngine}

	assert.Equal(t, `config: unrecognized engine: "oracle:db": unknown engine`, err.Error())
	assert.ErrorIs(t, err, sqlbridge.ErrUnknownEngine)

	bare := &sqlbridge.ConfigError{Input: "sqlite", Reason: "expected <engine>:<path-or-address>"}
	assert.Equal(t, `config: expected <engine>:<path-or-address>: "sqlite"`, bare.Error())
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &sqlbridge.ConnectionError{Engine: sqlbridge.EngineMySQL, Err: cause}

	assert.Equal(t, "connect mysql: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestQueryError(t *testing.T) {
	err := &sqlbridge.QueryError{Op: "fetch", SQL: "SELECT 1", Err: sqlbridge.ErrConnectionClosed}

	assert.Equal(t, "fetch: connection closed", err.Error())
	assert.ErrorIs(t, err, sqlbridge.ErrConnectionClosed)

	var qe *sqlbridge.QueryError
	assert.ErrorAs(t, error(err), &qe)
	assert.Equal(t, "SELECT 1", qe.SQL)
}
