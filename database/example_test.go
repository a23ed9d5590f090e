package database_test

import (
	"context"
	"fmt"
	"log"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database"
)

func Example() {
	ctx := context.Background()

	db, err := database.Open(ctx, "sqlite::memory:", "", "", database.WithLogger(discardLogger()))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	db.Execute(ctx, `CREATE TABLE customer (id INTEGER PRIMARY KEY, name TEXT)`)
	db.InsertMany(ctx, "customer", []sqlbridge.Record{
		{{Column: "id", Value: 1}, {Column: "name", Value: "ann"}},
		{{Column: "id", Value: 2}, {Column: "name", Value: "bob"}},
		{{Column: "id", Value: 3}, {Column: "name", Value: "cy"}},
	})

	res := db.Fetch(ctx, "SELECT id, name FROM customer ORDER BY id", nil, 2, 1)
	for _, row := range res.Rows {
		fmt.Println(row["id"], row["name"])
	}
	// Output:
	// 2 bob
	// 3 cy
}

func ExampleDB_Delete() {
	ctx := context.Background()

	db, err := database.Open(ctx, "sqlite::memory:", "", "", database.WithLogger(discardLogger()))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	db.Execute(ctx, `CREATE TABLE customer (id INTEGER PRIMARY KEY, status TEXT)`)
	db.InsertMany(ctx, "customer", []sqlbridge.Record{
		{{Column: "id", Value: 1}, {Column: "status", Value: "active"}},
		{{Column: "id", Value: 2}, {Column: "status", Value: "inactive"}},
		{{Column: "id", Value: 3}, {Column: "status", Value: "inactive"}},
	})

	res := db.Delete(ctx, "customer",
		database.ByKey{Key: "id", Record: sqlbridge.Record{{Column: "id", Value: 1}}},
		database.ByFilter{Filter: sqlbridge.Record{{Column: "status", Value: "inactive"}}},
	)
	fmt.Println(res.RowsAffected, res.Err)
	// Output: 3 <nil>
}
