// Package databasetest provides an engine-independent conformance suite for
// database.DB. Every backend runs the same checks so that result shapes and
// error semantics stay identical across engines.
package databasetest

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database"
)

// OpenFunc returns a fresh connection owned by the calling test.
type OpenFunc func(t *testing.T) *database.DB

// RandomTableName returns a unique lower-case table name.
func RandomTableName(t *testing.T) string {
	t.Helper()
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32))
	require.NoError(t, err, "random table name")
	return fmt.Sprintf("people_%x", n.Int64())
}

// CreatePeople creates a people-shaped table and drops it when the test ends.
func CreatePeople(t *testing.T, db *database.DB) string {
	t.Helper()
	ctx := context.Background()

	table := RandomTableName(t)
	res := db.Execute(ctx, fmt.Sprintf(
		`CREATE TABLE %s (id INTEGER NOT NULL PRIMARY KEY, name VARCHAR(50), age INTEGER)`, table))
	require.NoError(t, res.Err, "create table")

	t.Cleanup(func() {
		_ = db.Rollback(ctx)
		_ = db.Execute(ctx, "DROP TABLE "+table)
	})
	return table
}

// SeedPeople inserts n people with ids 1..n in one batch.
func SeedPeople(t *testing.T, db *database.DB, table string, n int) {
	t.Helper()

	records := make([]sqlbridge.Record, n)
	for i := range records {
		records[i] = sqlbridge.Record{
			{Column: "id", Value: i + 1},
			{Column: "name", Value: fmt.Sprintf("person %d", i+1)},
			{Column: "age", Value: 20 + i},
		}
	}
	res := db.InsertMany(context.Background(), table, records)
	require.NoError(t, res.Err, "seed")
}

// ids renders the id column of every row; drivers differ in integer width.
func ids(res sqlbridge.Result) []string {
	out := make([]string, 0, res.Count())
	for _, r := range res.Rows {
		out = append(out, fmt.Sprint(r["id"]))
	}
	return out
}

func expectIDs(from, to int) []string {
	out := []string{}
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprint(i))
	}
	return out
}

// RunConformance runs the shared behaviour checks against open.
func RunConformance(t *testing.T, open OpenFunc) {
	t.Helper()
	ctx := context.Background()

	t.Run("fetch pagination", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)
		const total = 12
		SeedPeople(t, db, table, total)

		query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id`, table)
		for _, tc := range []struct{ limit, skip int }{{5, 0}, {5, 10}, {20, 0}, {3, 12}, {1, 7}} {
			res := db.Fetch(ctx, query, nil, tc.limit, tc.skip)
			require.NoError(t, res.Err, "limit=%d skip=%d", tc.limit, tc.skip)

			want := min(tc.limit, max(0, total-tc.skip))
			assert.Equal(t, expectIDs(tc.skip+1, tc.skip+want), ids(res), "limit=%d skip=%d", tc.limit, tc.skip)
			assert.Equal(t, []string{"id", "name"}, res.ColumnNames())
		}
	})

	t.Run("fetch one matches limit one", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)
		SeedPeople(t, db, table, 3)

		query := fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, table)
		for skip := 0; skip <= 3; skip++ {
			one := db.FetchOne(ctx, query, nil, skip)
			limited := db.Fetch(ctx, query, nil, 1, skip)
			require.NoError(t, one.Err)
			assert.Equal(t, ids(limited), ids(one), "skip=%d", skip)
		}
	})

	t.Run("fetch binds params", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)
		SeedPeople(t, db, table, 6)

		ph := db.Dialect().Placeholder
		query := fmt.Sprintf(`SELECT id FROM %s WHERE age >= %s AND id <> %s ORDER BY id`, table, ph(1), ph(2))
		res := db.Fetch(ctx, query, []any{22, 4}, 10, 0)
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"3", "5", "6"}, ids(res))
	})

	t.Run("insert round trip", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)

		res := db.Insert(ctx, table, sqlbridge.Record{
			{Column: "id", Value: 42}, {Column: "name", Value: "ada"}, {Column: "age", Value: 36},
		})
		require.NoError(t, res.Err)

		query := fmt.Sprintf(`SELECT id, name, age FROM %s WHERE id = %s`, table, db.Dialect().Placeholder(1))
		got := db.FetchOne(ctx, query, []any{42}, 0)
		require.NoError(t, got.Err)
		require.Equal(t, 1, got.Count())

		row := got.First()
		assert.Equal(t, "42", fmt.Sprint(row["id"]))
		assert.Equal(t, "ada", row["name"])
		assert.Equal(t, "36", fmt.Sprint(row["age"]))
	})

	t.Run("malformed statement is captured", func(t *testing.T) {
		db := open(t)

		res := db.Execute(ctx, `SELEKT nothing FROM nowhere`)
		require.Error(t, res.Err)
		assert.Empty(t, res.Rows)

		fetched := db.Fetch(ctx, `SELECT * FROM table_that_does_not_exist`, nil, 10, 0)
		require.Error(t, fetched.Err)
		assert.Empty(t, fetched.Rows)
	})

	t.Run("delete modes", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)
		SeedPeople(t, db, table, 6)

		res := db.Delete(ctx, table,
			database.ByKey{Key: "id", Record: sqlbridge.Record{{Column: "id", Value: 1}}},
			database.ByKeys{Key: "id", Records: []sqlbridge.Record{{{Column: "id", Value: 2}}, {{Column: "id", Value: 3}}}},
			database.ByFilter{Filter: sqlbridge.Record{{Column: "name", Value: "person 4"}}},
			database.AllOf{Filters: []sqlbridge.Record{{{Column: "id", Value: 5}}, {{Column: "age", Value: 24}}}},
		)
		require.NoError(t, res.Err)

		left := db.Fetch(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, table), nil, 10, 0)
		require.NoError(t, left.Err)
		assert.Equal(t, []string{"6"}, ids(left))
	})

	t.Run("transaction rollback", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)
		SeedPeople(t, db, table, 2)

		require.NoError(t, db.StartTransaction(ctx).Err)
		require.NoError(t, db.Insert(ctx, table, sqlbridge.Record{{Column: "id", Value: 3}, {Column: "name", Value: "tx"}}).Err)
		require.NoError(t, db.Rollback(ctx).Err)

		left := db.Fetch(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, table), nil, 10, 0)
		require.NoError(t, left.Err)
		assert.Equal(t, []string{"1", "2"}, ids(left))
	})

	t.Run("transaction commit", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)

		require.NoError(t, db.StartTransaction(ctx).Err)
		require.NoError(t, db.Insert(ctx, table, sqlbridge.Record{{Column: "id", Value: 1}, {Column: "name", Value: "tx"}}).Err)
		require.NoError(t, db.Commit(ctx).Err)

		left := db.Fetch(ctx, fmt.Sprintf(`SELECT id FROM %s`, table), nil, 10, 0)
		require.NoError(t, left.Err)
		assert.Equal(t, []string{"1"}, ids(left))
	})

	t.Run("table exists", func(t *testing.T) {
		db := open(t)
		table := CreatePeople(t, db)

		exists, err := db.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = db.TableExists(ctx, table+"_missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
