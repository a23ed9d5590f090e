package sqlbridge

import (
	"fmt"
	"slices"
	"strings"
)

// Engine identifies a supported relational engine. It is fixed once a
// connection is established and drives every dialect decision.
type Engine string

const (
	EngineSQLite   Engine = "sqlite"
	EngineFirebird Engine = "firebird"
	EngineMySQL    Engine = "mysql"
	EnginePostgres Engine = "postgres"
)

// Engines lists every supported engine.
var Engines = []Engine{EngineSQLite, EngineFirebird, EngineMySQL, EnginePostgres}

var engineAliases = map[string]Engine{
	"sqlite":          EngineSQLite,
	"sqlite3":         EngineSQLite,
	"firebird":        EngineFirebird,
	"firebird.driver": EngineFirebird,
	"firebirdsql":     EngineFirebird,
	"mysql":           EngineMySQL,
	"mariadb":         EngineMySQL,
	"postgres":        EnginePostgres,
	"postgresql":      EnginePostgres,
	"pgx":             EnginePostgres,
}

func (e Engine) IsValid() bool {
	switch e {
	case EngineSQLite, EngineFirebird, EngineMySQL, EnginePostgres:
		return true
	default:
		return false
	}
}

// IsEmbedded reports whether the engine runs in-process against a local file.
func (e Engine) IsEmbedded() bool {
	return e == EngineSQLite
}

func (e Engine) String() string {
	return string(e)
}

// ParseEngine resolves an engine identifier, accepting canonical names and
// common driver aliases (sqlite3, firebird.driver, postgresql, ...).
func ParseEngine(s string) (Engine, error) {
	e, ok := engineAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		names := make([]string, 0, len(Engines))
		for _, e := range Engines {
			names = append(names, string(e))
		}
		return "", fmt.Errorf("%w: %s (valid engines: %s)", ErrUnknownEngine, s, strings.Join(names, ", "))
	}
	return e, nil
}

// Field is a single column/value pair of a Record.
type Field struct {
	Column string
	Value  any
}

// Record is an ordered column -> value mapping. Column order fixes the order
// of generated placeholders and bound parameters.
type Record []Field

// RecordFromMap builds a Record from a map, ordering columns by name.
func RecordFromMap(m map[string]any) Record {
	cols := make([]string, 0, len(m))
	for k := range m {
		cols = append(cols, k)
	}
	slices.Sort(cols)

	r := make(Record, 0, len(cols))
	for _, c := range cols {
		r = append(r, Field{Column: c, Value: m[c]})
	}
	return r
}

// Columns returns the column names in order.
func (r Record) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// Values returns the values in column order.
func (r Record) Values() []any {
	vals := make([]any, len(r))
	for i, f := range r {
		vals[i] = f.Value
	}
	return vals
}

// Get returns the value stored for column. Matching is exact.
func (r Record) Get(column string) (any, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns the record as an unordered map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Column] = f.Value
	}
	return m
}

// SameColumns reports whether other has exactly the same columns in the same order.
func (r Record) SameColumns(other Record) bool {
	return slices.Equal(r.Columns(), other.Columns())
}
