package clientcli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/sqlbridge"
)

// Output formats accepted by NewFormatter.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// maxCellWidth caps a human table column; longer values are truncated.
const maxCellWidth = 40

// Formatter formats results for output.
type Formatter interface {
	FormatResult(w io.Writer, res sqlbridge.Result) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the formatter for format.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case FormatHuman, "":
		return &HumanFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatResult prints rows as an aligned table, or a rows-affected line for
// statements that return no columns.
func (f *HumanFormatter) FormatResult(w io.Writer, res sqlbridge.Result) error {
	if res.Err != nil {
		return f.FormatError(w, res.Err)
	}

	cols := resultColumns(res)
	if len(cols) == 0 {
		if f.Quiet {
			return nil
		}
		if res.RowsAffected < 0 {
			_, _ = fmt.Fprintln(w, "OK")
		} else {
			_, _ = fmt.Fprintf(w, "%d row(s) affected\n", res.RowsAffected)
		}
		return nil
	}

	cells := make([][]string, len(res.Rows))
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = min(utf8.RuneCountInString(c), maxCellWidth)
	}
	for r, row := range res.Rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			s := truncateCell(formatValue(row[c]))
			cells[r][i] = s
			widths[i] = max(widths[i], utf8.RuneCountInString(s))
		}
	}

	// Print header
	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		header[i] = fmt.Sprintf("%-*s", widths[i], strings.ToUpper(c))
		rule[i] = strings.Repeat("-", widths[i])
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " "))
	_, _ = fmt.Fprintln(w, strings.Join(rule, "  "))

	// Print rows
	for _, row := range cells {
		line := make([]string, len(cols))
		for i, s := range row {
			line[i] = fmt.Sprintf("%-*s", widths[i], s)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " "))
	}

	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "\n%d row(s)\n", len(res.Rows))
	}
	return nil
}

// truncateCell shortens s to maxCellWidth runes, never splitting a character.
func truncateCell(s string) string {
	if utf8.RuneCountInString(s) <= maxCellWidth {
		return s
	}
	r := []rune(s)
	return string(r[:maxCellWidth-3]) + "..."
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatResult writes the result's JSON encoding.
func (f *JSONFormatter) FormatResult(w io.Writer, res sqlbridge.Result) error {
	return writeJSON(w, res)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, sqlbridge.Failure(err))
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// yamlResult mirrors the JSON shape of sqlbridge.Result.
type yamlResult struct {
	Rows         []sqlbridge.Row    `yaml:"rows"`
	Columns      []sqlbridge.Column `yaml:"columns"`
	RowsAffected int64              `yaml:"rows_affected,omitempty"`
	Error        *string            `yaml:"error"`
}

// FormatResult writes the result as a YAML document.
func (f *YAMLFormatter) FormatResult(w io.Writer, res sqlbridge.Result) error {
	out := yamlResult{
		Rows:         res.Rows,
		Columns:      res.Columns,
		RowsAffected: res.RowsAffected,
	}
	if out.Rows == nil {
		out.Rows = []sqlbridge.Row{}
	}
	if out.Columns == nil {
		out.Columns = []sqlbridge.Column{}
	}
	if res.Err != nil {
		msg := res.Err.Error()
		out.Error = &msg
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// FormatError formats an error as YAML.
func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	return f.FormatResult(w, sqlbridge.Failure(err))
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resultColumns returns column names in result order, falling back to the
// sorted keys of the first row when the driver reported no metadata.
func resultColumns(res sqlbridge.Result) []string {
	if len(res.Columns) > 0 {
		return res.ColumnNames()
	}
	if len(res.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(res.Rows[0]))
	for k := range res.Rows[0] {
		cols = append(cols, k)
	}
	slices.Sort(cols)
	return cols
}

// formatValue renders a single cell.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(x))
	default:
		return fmt.Sprint(x)
	}
}
