package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sagarc03/sqlbridge"
)

// Fetch runs query wrapped in the engine's pagination envelope and returns at
// most limit rows after skipping skip rows. params are bound positionally.
//
// limit and skip are passed through unvalidated. Every failure, including a
// closed connection, is reported through Result.Err.
func (d *DB) Fetch(ctx context.Context, query string, params []any, limit, skip int) sqlbridge.Result {
	d.logger.Debug("fetch", "sql", query, "params", params, "limit", limit, "skip", skip)

	if err := d.checkOpen("fetch"); err != nil {
		return sqlbridge.Failure(err)
	}

	paged := d.dialect.Paginate(query, limit, skip)

	rows, err := d.querier().QueryContext(ctx, paged, params...)
	if err != nil {
		return d.fail("fetch", paged, err)
	}
	defer func() { _ = rows.Close() }()

	result, err := normalizeRows(rows)
	if err != nil {
		return d.fail("fetch", paged, err)
	}

	return result
}

// FetchDefault is Fetch with DefaultLimit rows and no skip.
func (d *DB) FetchDefault(ctx context.Context, query string, params ...any) sqlbridge.Result {
	return d.Fetch(ctx, query, params, DefaultLimit, 0)
}

// FetchOne is Fetch with a limit of one.
func (d *DB) FetchOne(ctx context.Context, query string, params []any, skip int) sqlbridge.Result {
	return d.Fetch(ctx, query, params, 1, skip)
}

// Execute runs a single statement once. On success the result has no rows and
// RowsAffected set when the driver reports it.
func (d *DB) Execute(ctx context.Context, query string, params ...any) sqlbridge.Result {
	d.logger.Debug("execute", "sql", query, "params", params)

	if err := d.checkOpen("execute"); err != nil {
		return sqlbridge.Failure(err)
	}

	res, err := d.querier().ExecContext(ctx, query, params...)
	if err != nil {
		return d.fail("execute", query, err)
	}

	out := sqlbridge.Success(nil, nil)
	out.RowsAffected = rowsAffected(res)
	return out
}

// ExecuteBatch prepares query once and executes it for every parameter set.
//
// The batch is not atomic on its own: sets executed before a failure stay
// applied unless the call is bracketed by StartTransaction and Rollback.
func (d *DB) ExecuteBatch(ctx context.Context, query string, paramSets [][]any) sqlbridge.Result {
	d.logger.Debug("execute batch", "sql", query, "sets", len(paramSets))

	if err := d.checkOpen("execute batch"); err != nil {
		return sqlbridge.Failure(err)
	}

	stmt, err := d.querier().PrepareContext(ctx, query)
	if err != nil {
		return d.fail("execute batch", query, err)
	}
	defer func() { _ = stmt.Close() }()

	var total int64
	for i, params := range paramSets {
		res, err := stmt.ExecContext(ctx, params...)
		if err != nil {
			return d.fail("execute batch", query, fmt.Errorf("parameter set %d: %w", i, err))
		}
		n := rowsAffected(res)
		if n < 0 || total < 0 {
			total = -1
			continue
		}
		total += n
	}

	out := sqlbridge.Success(nil, nil)
	out.RowsAffected = total
	return out
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}
