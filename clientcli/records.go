package clientcli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/sqlbridge"
)

// DecodeRecords reads a single mapping or a sequence of mappings. JSON input
// is accepted since it is valid YAML. isList reports whether the input was a
// sequence, even one holding a single mapping.
func DecodeRecords(r io.Reader) (records []sqlbridge.Record, isList bool, err error) {
	var doc yaml.Node
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, fmt.Errorf("decode records: %w", sqlbridge.ErrEmptyRecord)
		}
		return nil, false, fmt.Errorf("decode records: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, false, fmt.Errorf("decode records: %w", sqlbridge.ErrEmptyRecord)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		rec, err := decodeRecord(root)
		if err != nil {
			return nil, false, fmt.Errorf("decode records: %w", err)
		}
		return []sqlbridge.Record{rec}, false, nil
	case yaml.SequenceNode:
		if len(root.Content) == 0 {
			return nil, false, fmt.Errorf("decode records: %w", sqlbridge.ErrEmptyRecord)
		}
		records = make([]sqlbridge.Record, len(root.Content))
		for i, n := range root.Content {
			if n.Kind != yaml.MappingNode {
				return nil, false, fmt.Errorf("decode records: item %d: expected a mapping (line %d)", i, n.Line)
			}
			rec, err := decodeRecord(n)
			if err != nil {
				return nil, false, fmt.Errorf("decode records: item %d: %w", i, err)
			}
			records[i] = rec
		}
		return records, true, nil
	default:
		return nil, false, fmt.Errorf("decode records: expected a mapping or a list of mappings (line %d)", root.Line)
	}
}

// decodeRecord keeps the key order of a mapping node.
func decodeRecord(n *yaml.Node) (sqlbridge.Record, error) {
	if len(n.Content) == 0 {
		return nil, sqlbridge.ErrEmptyRecord
	}
	rec := make(sqlbridge.Record, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: column name must be a scalar", key.Line)
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("column %q: %w", key.Value, err)
		}
		rec = append(rec, sqlbridge.Field{Column: key.Value, Value: v})
	}
	return rec, nil
}

// ParseParam resolves a command-line value the way a YAML scalar would be
// resolved: integers, floats, booleans and null get their natural types,
// anything else stays a string.
func ParseParam(s string) any {
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(s), &n); err != nil || len(n.Content) == 0 {
		return s
	}
	scalar := n.Content[0]
	if scalar.Kind != yaml.ScalarNode {
		return s
	}
	switch scalar.Tag {
	case "!!int", "!!float", "!!bool", "!!null":
		var v any
		if err := scalar.Decode(&v); err == nil {
			return v
		}
	}
	return s
}

// ParseParams applies ParseParam to each value.
func ParseParams(values []string) []any {
	params := make([]any, len(values))
	for i, s := range values {
		params[i] = ParseParam(s)
	}
	return params
}

// ParseFilter parses "column=value" into a one-field record.
func ParseFilter(s string) (sqlbridge.Record, error) {
	col, val, ok := strings.Cut(s, "=")
	col = strings.TrimSpace(col)
	if !ok || col == "" {
		return nil, fmt.Errorf("invalid filter %q: expected column=value", s)
	}
	return sqlbridge.Record{{Column: col, Value: ParseParam(val)}}, nil
}

// DecodeParamSets reads a list of parameter lists for a batch execution.
func DecodeParamSets(r io.Reader) ([][]any, error) {
	var sets [][]any
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode parameter sets: no input")
		}
		return nil, fmt.Errorf("decode parameter sets: %w", err)
	}
	return sets, nil
}
