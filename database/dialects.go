package database

import (
	"fmt"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
	"github.com/sagarc03/sqlbridge/database/firebird"
	"github.com/sagarc03/sqlbridge/database/mysql"
	"github.com/sagarc03/sqlbridge/database/postgres"
	"github.com/sagarc03/sqlbridge/database/sqlite"
)

// Descriptor describes a parsed connection target.
type Descriptor = dialect.Descriptor

// DialectFor returns the strategy for engine.
func DialectFor(engine sqlbridge.Engine) (dialect.Dialect, error) {
	switch engine {
	case sqlbridge.EngineSQLite:
		return sqlite.Dialect{}, nil
	case sqlbridge.EngineFirebird:
		return firebird.Dialect{}, nil
	case sqlbridge.EngineMySQL:
		return mysql.Dialect{}, nil
	case sqlbridge.EnginePostgres:
		return postgres.Dialect{}, nil
	default:
		return nil, fmt.Errorf("dialect for %q: %w", engine, sqlbridge.ErrUnknownEngine)
	}
}
