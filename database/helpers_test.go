package database_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sagarc03/sqlbridge/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestDB opens a private in-memory SQLite database.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), "sqlite::memory:", "", "", database.WithLogger(discardLogger()))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// seedNumbers creates table numbers(id, label) holding rows 1..n.
func seedNumbers(t *testing.T, db *database.DB, n int) {
	t.Helper()
	ctx := context.Background()

	res := db.Execute(ctx, `CREATE TABLE numbers (id INTEGER PRIMARY KEY, label TEXT NOT NULL)`)
	require.NoError(t, res.Err)

	sets := make([][]any, n)
	for i := range sets {
		sets[i] = []any{i + 1, fmt.Sprintf("n%d", i+1)}
	}
	res = db.ExecuteBatch(ctx, `INSERT INTO numbers (id, label) VALUES (?, ?)`, sets)
	require.NoError(t, res.Err)
}

func createPeople(t *testing.T, db *database.DB) {
	t.Helper()
	res := db.Execute(context.Background(),
		`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	require.NoError(t, res.Err)
}
