package clientcli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/clientcli"
)

func sampleResult() sqlbridge.Result {
	return sqlbridge.Success(
		[]sqlbridge.Row{
			{"id": int64(1), "name": "ann", "note": nil},
			{"id": int64(2), "name": "bob", "note": "hi"},
		},
		[]sqlbridge.Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "name", Type: "TEXT", Nullable: true},
			{Name: "note", Type: "TEXT", Nullable: true},
		},
	)
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   any
	}{
		{format: "human", want: &clientcli.HumanFormatter{}},
		{format: "", want: &clientcli.HumanFormatter{}},
		{format: "json", want: &clientcli.JSONFormatter{}},
		{format: "yaml", want: &clientcli.YAMLFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := clientcli.NewFormatter(tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}

	_, err := clientcli.NewFormatter("xml")
	assert.Error(t, err)
}

func TestHumanFormatter_FormatResult(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{}).FormatResult(&buf, sampleResult()))

		want := "ID  NAME  NOTE\n" +
			"--  ----  ----\n" +
			"1   ann   NULL\n" +
			"2   bob   hi\n" +
			"\n2 row(s)\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("rows affected", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{}).FormatResult(&buf, sqlbridge.Result{RowsAffected: 3}))
		assert.Equal(t, "3 row(s) affected\n", buf.String())
	})

	t.Run("rows affected unknown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{}).FormatResult(&buf, sqlbridge.Result{RowsAffected: -1}))
		assert.Equal(t, "OK\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{}).FormatResult(&buf, sqlbridge.Failure(errors.New("no such table: x"))))
		assert.Equal(t, "Error: no such table: x\n", buf.String())
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{Quiet: true}).FormatResult(&buf, sqlbridge.Result{RowsAffected: 3}))
		assert.Empty(t, buf.String())
	})

	t.Run("long values are truncated", func(t *testing.T) {
		long := bytes.Repeat([]byte("x"), 100)
		res := sqlbridge.Success(
			[]sqlbridge.Row{{"v": string(long)}},
			[]sqlbridge.Column{{Name: "v"}},
		)

		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{Quiet: true}).FormatResult(&buf, res))
		assert.Contains(t, buf.String(), "...")
		assert.NotContains(t, buf.String(), string(long))
	})

	t.Run("multibyte values truncate on character boundaries", func(t *testing.T) {
		long := strings.Repeat("é", 50)
		res := sqlbridge.Success(
			[]sqlbridge.Row{{"v": long, "w": "x"}, {"v": "ab", "w": "y"}},
			[]sqlbridge.Column{{Name: "v"}, {Name: "w"}},
		)

		var buf bytes.Buffer
		require.NoError(t, (&clientcli.HumanFormatter{Quiet: true}).FormatResult(&buf, res))
		out := buf.String()
		require.True(t, utf8.ValidString(out))
		assert.Contains(t, out, strings.Repeat("é", 37)+"...  x")

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 4)
		for _, l := range lines {
			assert.Equal(t, 43, utf8.RuneCountInString(l), "line %q", l)
		}
	})
}

func TestJSONFormatter_FormatResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&clientcli.JSONFormatter{}).FormatResult(&buf, sampleResult()))

	var decoded struct {
		Rows    []map[string]any `json:"rows"`
		Columns []map[string]any `json:"columns"`
		Error   *string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Rows, 2)
	assert.Len(t, decoded.Columns, 3)
	assert.Nil(t, decoded.Error)
	assert.Equal(t, "ann", decoded.Rows[0]["name"])
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&clientcli.JSONFormatter{}).FormatError(&buf, errors.New("boom")))
	assert.JSONEq(t, `{"rows":[],"columns":[],"error":"boom"}`, buf.String())
}

func TestYAMLFormatter_FormatResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&clientcli.YAMLFormatter{}).FormatResult(&buf, sampleResult()))

	var decoded struct {
		Rows    []map[string]any `yaml:"rows"`
		Columns []struct {
			Name     string `yaml:"name"`
			Nullable bool   `yaml:"nullable"`
		} `yaml:"columns"`
		Error *string `yaml:"error"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, 2, decoded.Rows[1]["id"])
	assert.Equal(t, "bob", decoded.Rows[1]["name"])
	require.Len(t, decoded.Columns, 3)
	assert.Equal(t, "name", decoded.Columns[1].Name)
	assert.True(t, decoded.Columns[1].Nullable)
	assert.Nil(t, decoded.Error)
}

func TestYAMLFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&clientcli.YAMLFormatter{}).FormatError(&buf, errors.New("boom")))
	assert.Contains(t, buf.String(), "error: boom")
	assert.Contains(t, buf.String(), "rows: []")
}
