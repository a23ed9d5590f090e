package sqlbridge

import "regexp"

// Identifiers may be schema-qualified (schema.table) and may contain '$',
// which Firebird and PostgreSQL allow in unquoted names.
var validIdentifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)?$`)

// IsValidIdentifier checks that a table or column name is safe to interpolate
// into generated SQL without quoting.
func IsValidIdentifier(name string) bool {
	return len(name) <= 128 && validIdentifierRegex.MatchString(name)
}
