package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
	"github.com/sagarc03/sqlbridge/database/internal"
)

// Statement is generated SQL with its positional parameters. A single
// statement carries Args; a batch carries one parameter set per record in
// Batch and leaves Args nil.
type Statement struct {
	SQL   string
	Args  []any
	Batch [][]any
}

// IsBatch reports whether the statement is meant for ExecuteBatch.
func (s Statement) IsBatch() bool {
	return s.Batch != nil
}

// BuildInsert generates "INSERT INTO <table> (<cols>) VALUES (<placeholders>)"
// for one record, using the dialect's placeholder convention.
func BuildInsert(dl dialect.Dialect, table string, record sqlbridge.Record) (Statement, error) {
	sqlText, cols, err := insertSQL(dl, table, record)
	if err != nil {
		return Statement{}, err
	}
	args, err := internal.AlignValues(record, cols)
	if err != nil {
		return Statement{}, fmt.Errorf("build insert: %w", err)
	}
	return Statement{SQL: sqlText, Args: args}, nil
}

// BuildInsertBatch generates one INSERT for many records. Columns are taken
// from the first record; every other record must have the same column set and
// its values are aligned to the first record's order. A record whose columns
// are already in that order is taken as is.
func BuildInsertBatch(dl dialect.Dialect, table string, records []sqlbridge.Record) (Statement, error) {
	if len(records) == 0 {
		return Statement{}, fmt.Errorf("build insert: %w", sqlbridge.ErrEmptyRecord)
	}

	sqlText, cols, err := insertSQL(dl, table, records[0])
	if err != nil {
		return Statement{}, err
	}

	batch := make([][]any, len(records))
	for i, r := range records {
		if i > 0 && r.SameColumns(records[0]) {
			batch[i] = r.Values()
			continue
		}
		vals, err := internal.AlignValues(r, cols)
		if err != nil {
			return Statement{}, fmt.Errorf("build insert: record %d: %w", i, err)
		}
		batch[i] = vals
	}

	return Statement{SQL: sqlText, Batch: batch}, nil
}

func insertSQL(dl dialect.Dialect, table string, record sqlbridge.Record) (string, []string, error) {
	if len(record) == 0 {
		return "", nil, fmt.Errorf("build insert: %w", sqlbridge.ErrEmptyRecord)
	}
	cols := record.Columns()
	if err := internal.ValidateIdentifiers(append([]string{table}, cols...)...); err != nil {
		return "", nil, fmt.Errorf("build insert: %w", err)
	}
	if err := internal.RejectDuplicates(cols); err != nil {
		return "", nil, fmt.Errorf("build insert: %w", err)
	}

	sqlText := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, internal.JoinColumns(cols), dialect.Placeholders(dl, 1, len(cols)))
	return sqlText, cols, nil
}

// DeleteCriteria selects the rows a DELETE removes. The set of criteria is
// closed: ByKey, ByKeys, ByFilter and AllOf.
type DeleteCriteria interface {
	where(dl dialect.Dialect) (string, []any, error)
}

// ByKey deletes the row whose Key column equals the record's value for Key.
type ByKey struct {
	Key    string
	Record sqlbridge.Record
}

func (c ByKey) where(dl dialect.Dialect) (string, []any, error) {
	if err := internal.ValidateIdentifiers(c.Key); err != nil {
		return "", nil, err
	}
	v, ok := c.Record.Get(c.Key)
	if !ok {
		return "", nil, fmt.Errorf("key column %q not in record", c.Key)
	}
	return internal.Equality(c.Key, dl.Placeholder(1)), []any{v}, nil
}

// ByKeys deletes every row whose Key column is among the records' Key values.
type ByKeys struct {
	Key     string
	Records []sqlbridge.Record
}

func (c ByKeys) where(dl dialect.Dialect) (string, []any, error) {
	if err := internal.ValidateIdentifiers(c.Key); err != nil {
		return "", nil, err
	}
	if len(c.Records) == 0 {
		return "", nil, sqlbridge.ErrEmptyRecord
	}
	vals := make([]any, len(c.Records))
	for i, r := range c.Records {
		v, ok := r.Get(c.Key)
		if !ok {
			return "", nil, fmt.Errorf("record %d: key column %q not in record", i, c.Key)
		}
		vals[i] = v
	}
	return fmt.Sprintf("%s IN (%s)", c.Key, dialect.Placeholders(dl, 1, len(vals))), vals, nil
}

// ByFilter deletes rows matching one equality condition. Only the first field
// of Filter is used.
type ByFilter struct {
	Filter sqlbridge.Record
}

func (c ByFilter) where(dl dialect.Dialect) (string, []any, error) {
	if len(c.Filter) == 0 {
		return "", nil, sqlbridge.ErrEmptyRecord
	}
	f := c.Filter[0]
	if err := internal.ValidateIdentifiers(f.Column); err != nil {
		return "", nil, err
	}
	return internal.Equality(f.Column, dl.Placeholder(1)), []any{f.Value}, nil
}

// AllOf deletes rows matching every field of every filter, joined with AND.
type AllOf struct {
	Filters []sqlbridge.Record
}

func (c AllOf) where(dl dialect.Dialect) (string, []any, error) {
	var conds []string
	var vals []any
	for _, filter := range c.Filters {
		for _, f := range filter {
			if err := internal.ValidateIdentifiers(f.Column); err != nil {
				return "", nil, err
			}
			vals = append(vals, f.Value)
			conds = append(conds, internal.Equality(f.Column, dl.Placeholder(len(vals))))
		}
	}
	if len(conds) == 0 {
		return "", nil, sqlbridge.ErrEmptyRecord
	}
	return strings.Join(conds, " AND "), vals, nil
}

// BuildDelete generates "DELETE FROM <table> WHERE <condition>" for one criterion.
func BuildDelete(dl dialect.Dialect, table string, criteria DeleteCriteria) (Statement, error) {
	if criteria == nil {
		return Statement{}, errors.New("build delete: no criteria")
	}
	if err := internal.ValidateIdentifiers(table); err != nil {
		return Statement{}, fmt.Errorf("build delete: %w", err)
	}
	cond, args, err := criteria.where(dl)
	if err != nil {
		return Statement{}, fmt.Errorf("build delete: %w", err)
	}
	return Statement{SQL: "DELETE FROM " + table + " WHERE " + cond, Args: args}, nil
}
