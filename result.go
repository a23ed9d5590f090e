package sqlbridge

import (
	"encoding/json"
)

// Row maps lower-cased column names to values.
type Row map[string]any

// Column describes a result column as reported by the driver.
type Column struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Length    int64  `json:"length,omitempty" yaml:"length,omitempty"`
	Precision int64  `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     int64  `json:"scale,omitempty" yaml:"scale,omitempty"`
	Nullable  bool   `json:"nullable" yaml:"nullable"`
}

// Result is the uniform outcome of every query operation.
//
// Err non-nil implies Rows is empty; non-empty Rows implies Err is nil.
// Use Success and Failure to construct values that respect this.
type Result struct {
	Rows    []Row
	Columns []Column
	// RowsAffected is the number of rows changed by a write statement, or -1
	// when the driver does not report it. It is zero for fetches.
	RowsAffected int64
	Err          error
}

// Success returns a result holding rows and their column metadata.
func Success(rows []Row, columns []Column) Result {
	if rows == nil {
		rows = []Row{}
	}
	if columns == nil {
		columns = []Column{}
	}
	return Result{Rows: rows, Columns: columns}
}

// Failure returns a result that carries err and no rows.
func Failure(err error) Result {
	return Result{Rows: []Row{}, Columns: []Column{}, Err: err}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Count returns the number of rows in the result.
func (r Result) Count() int {
	return len(r.Rows)
}

// First returns the first row, or nil if there are none.
func (r Result) First() Row {
	if len(r.Rows) == 0 {
		return nil
	}
	return r.Rows[0]
}

// Error returns the error message, or an empty string on success.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ColumnNames returns the column names in result order.
func (r Result) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

type resultJSON struct {
	Rows         []Row    `json:"rows"`
	Columns      []Column `json:"columns"`
	RowsAffected int64    `json:"rows_affected,omitempty"`
	Error        *string  `json:"error"`
}

// MarshalJSON encodes the result as {"rows": [...], "columns": [...], "error": msg|null}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Rows:         r.Rows,
		Columns:      r.Columns,
		RowsAffected: r.RowsAffected,
	}
	if out.Rows == nil {
		out.Rows = []Row{}
	}
	if out.Columns == nil {
		out.Columns = []Column{}
	}
	if r.Err != nil {
		msg := r.Err.Error()
		out.Error = &msg
	}
	return json.Marshal(out)
}
