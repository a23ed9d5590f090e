// Package internal holds SQL text helpers shared by the statement builder.
package internal

import (
	"fmt"
	"strings"

	"github.com/sagarc03/sqlbridge"
)

// ValidateIdentifiers checks every name with sqlbridge.IsValidIdentifier.
func ValidateIdentifiers(names ...string) error {
	for _, n := range names {
		if !sqlbridge.IsValidIdentifier(n) {
			return fmt.Errorf("%w: %q", sqlbridge.ErrInvalidIdentifier, n)
		}
	}
	return nil
}

// Equality renders "<column> = <placeholder>".
func Equality(column, placeholder string) string {
	return column + " = " + placeholder
}

// JoinColumns renders a column list for an INSERT.
func JoinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// RejectDuplicates fails when a column name appears more than once.
func RejectDuplicates(cols []string) error {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: %q", sqlbridge.ErrDuplicateColumn, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// AlignValues returns rec's values in the order of cols. It fails when rec
// does not have exactly the columns in cols, or repeats one of them.
func AlignValues(rec sqlbridge.Record, cols []string) ([]any, error) {
	if len(rec) != len(cols) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(cols), len(rec))
	}
	if err := RejectDuplicates(rec.Columns()); err != nil {
		return nil, err
	}
	vals := make([]any, len(cols))
	for i, c := range cols {
		v, ok := rec.Get(c)
		if !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
		vals[i] = v
	}
	return vals, nil
}
