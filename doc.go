// Package sqlbridge provides an engine-agnostic SQL access layer with one
// uniform API over embedded and client/server relational engines.
//
// Application code opens a connection from a connection string of the form
// "<engine>:<remainder>" and issues paginated fetches, parameterized
// statements, simple insert/delete generation and transaction control without
// knowing which engine is configured at runtime. The dialect layer rewrites the
// outer pagination envelope and placeholder tokens per engine; the caller's SQL
// text is otherwise trusted as-is.
//
// # Supported Engines
//
//   - EngineSQLite: embedded file-based engine (modernc.org/sqlite)
//   - EngineFirebird: Firebird over its native wire protocol
//   - EngineMySQL: MySQL / MariaDB
//   - EnginePostgres: PostgreSQL via pgx
//
// # Uniform Result
//
// Every query operation returns a Result instead of an error. Failures are
// reported through Result.Err, so callers use one success check regardless of
// engine:
//
//	res := db.Fetch(ctx, "SELECT id, name FROM users", nil, 10, 0)
//	if !res.OK() {
//	    log.Printf("fetch failed: %v", res.Err)
//	}
//	for _, row := range res.Rows {
//	    fmt.Println(row["id"], row["name"])
//	}
//
// See the database package for connection management, query execution and
// statement generation.
package sqlbridge
