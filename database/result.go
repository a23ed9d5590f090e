package database

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sagarc03/sqlbridge"
)

// normalizeRows drains rows into a uniform result. Column names are
// lower-cased; when two columns collide after lower-casing the later wins.
func normalizeRows(rows *sql.Rows) (sqlbridge.Result, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return sqlbridge.Result{}, fmt.Errorf("column types: %w", err)
	}

	columns := make([]sqlbridge.Column, len(types))
	for i, ct := range types {
		columns[i] = describeColumn(ct)
	}

	out := []sqlbridge.Row{}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return sqlbridge.Result{}, fmt.Errorf("scan: %w", err)
		}
		row := make(sqlbridge.Row, len(columns))
		for i, c := range columns {
			row[c.Name] = normalizeValue(values[i], c.Type)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return sqlbridge.Result{}, fmt.Errorf("rows: %w", err)
	}

	return sqlbridge.Success(out, columns), nil
}

func describeColumn(ct *sql.ColumnType) sqlbridge.Column {
	c := sqlbridge.Column{
		Name: strings.ToLower(ct.Name()),
		Type: ct.DatabaseTypeName(),
	}
	if l, ok := ct.Length(); ok {
		c.Length = l
	}
	if p, s, ok := ct.DecimalSize(); ok {
		c.Precision = p
		c.Scale = s
	}
	if n, ok := ct.Nullable(); ok {
		c.Nullable = n
	}
	return c
}

// normalizeValue turns driver byte slices into strings unless the column is
// binary. MySQL in particular returns text columns as []byte.
func normalizeValue(v any, dbType string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	if isBinaryType(dbType) {
		return bytes.Clone(b)
	}
	return string(b)
}

func isBinaryType(dbType string) bool {
	t := strings.ToUpper(dbType)
	return strings.Contains(t, "BLOB") ||
		strings.Contains(t, "BINARY") ||
		t == "BYTEA"
}
