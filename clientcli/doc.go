// Package clientcli holds the pieces of the sqlbridge command line that are
// independent of cobra: result formatting, record and parameter decoding,
// and interactive password entry.
//
// # Output
//
// A Formatter renders a sqlbridge.Result in one of three formats:
//
//	f, err := clientcli.NewFormatter("json")
//	if err != nil {
//		return err
//	}
//	_ = f.FormatResult(os.Stdout, res)
//
// human prints an aligned table followed by a row count, json prints the
// Result's JSON encoding, and yaml prints the same document as YAML.
//
// # Records
//
// DecodeRecords reads one mapping or a sequence of mappings from JSON or
// YAML input. Column order follows the order keys appear in the input, so
// the generated INSERT lists columns as the user wrote them. The second
// result tells a sequence apart from a single mapping, so a one-element list
// still goes down the batch path:
//
//	records, isList, err := clientcli.DecodeRecords(strings.NewReader(`[{id: 1, name: ann}]`))
//
// ParseParam and ParseFilter turn command-line strings into typed values
// using YAML scalar resolution, so "42" binds as an integer and "null" as NULL.
package clientcli
