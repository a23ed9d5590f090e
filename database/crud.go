package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sagarc03/sqlbridge"
)

// Insert generates and executes an INSERT for one record.
func (d *DB) Insert(ctx context.Context, table string, record sqlbridge.Record) sqlbridge.Result {
	stmt, err := BuildInsert(d.dialect, table, record)
	if err != nil {
		return d.fail("insert", "", err)
	}
	return d.Run(ctx, stmt)
}

// InsertMany generates one INSERT and executes it as a single batch with one
// parameter set per record.
func (d *DB) InsertMany(ctx context.Context, table string, records []sqlbridge.Record) sqlbridge.Result {
	stmt, err := BuildInsertBatch(d.dialect, table, records)
	if err != nil {
		return d.fail("insert", "", err)
	}
	return d.Run(ctx, stmt)
}

// Delete executes one DELETE per criterion, in order. Criteria run
// independently: a failure stops the remaining ones but does not undo those
// already executed. RowsAffected is summed across statements.
func (d *DB) Delete(ctx context.Context, table string, criteria ...DeleteCriteria) sqlbridge.Result {
	if len(criteria) == 0 {
		return d.fail("delete", "", errors.New("no delete criteria"))
	}

	out := sqlbridge.Success(nil, nil)
	for _, c := range criteria {
		stmt, err := BuildDelete(d.dialect, table, c)
		if err != nil {
			return d.fail("delete", "", err)
		}
		res := d.Run(ctx, stmt)
		if !res.OK() {
			return res
		}
		if res.RowsAffected < 0 || out.RowsAffected < 0 {
			out.RowsAffected = -1
			continue
		}
		out.RowsAffected += res.RowsAffected
	}
	return out
}

// Run executes a generated statement, routing batches to ExecuteBatch.
func (d *DB) Run(ctx context.Context, stmt Statement) sqlbridge.Result {
	if stmt.IsBatch() {
		return d.ExecuteBatch(ctx, stmt.SQL, stmt.Batch)
	}
	return d.Execute(ctx, stmt.SQL, stmt.Args...)
}

// Tables lists user tables as rows with a single "name" column.
func (d *DB) Tables(ctx context.Context) sqlbridge.Result {
	d.logger.Debug("tables")

	if err := d.checkOpen("tables"); err != nil {
		return sqlbridge.Failure(err)
	}

	query := d.dialect.TablesQuery()
	rows, err := d.querier().QueryContext(ctx, query)
	if err != nil {
		return d.fail("tables", query, err)
	}
	defer func() { _ = rows.Close() }()

	result, err := normalizeRows(rows)
	if err != nil {
		return d.fail("tables", query, err)
	}
	return result
}

// TableExists reports whether a user table with the given name exists.
func (d *DB) TableExists(ctx context.Context, table string) (bool, error) {
	if err := d.checkOpen("table exists"); err != nil {
		return false, err
	}

	query := d.dialect.TableExistsQuery()
	rows, err := d.querier().QueryContext(ctx, query, table)
	if err != nil {
		return false, fmt.Errorf("table exists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("table exists: %w", err)
	}
	return exists, nil
}
