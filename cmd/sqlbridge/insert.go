package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database"
)

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <table>",
		Short: "Insert records into a table",
		Long: `Insert one record or a list of records read as JSON or YAML.
Columns are used in the order they appear in the input. A list is
inserted as one batch and every record must have the same columns.

Examples:
  echo '{"id": 1, "name": "ann"}' | sqlbridge insert customer
  sqlbridge insert customer --file people.yaml --tx`,
		Args: cobra.ExactArgs(1),
		RunE: runInsert,
	}

	cmd.Flags().StringP("file", "f", "-", "input file (\"-\" for stdin)")
	cmd.Flags().Bool("tx", false, "run inside a transaction")
	return cmd
}

func runInsert(cmd *cobra.Command, args []string) error {
	records, isList, err := readRecords(cmd)
	if err != nil {
		return err
	}

	return withDB(cmd, func(ctx context.Context, db *database.DB) error {
		res := inTx(cmd, db, func() sqlbridge.Result {
			return insertRecords(ctx, db, args[0], records, isList)
		})
		return render(cmd, res)
	})
}

type inserter interface {
	Insert(ctx context.Context, table string, record sqlbridge.Record) sqlbridge.Result
	InsertMany(ctx context.Context, table string, records []sqlbridge.Record) sqlbridge.Result
}

// insertRecords sends a list input down the batch path, whatever its length.
func insertRecords(ctx context.Context, db inserter, table string, records []sqlbridge.Record, isList bool) sqlbridge.Result {
	if isList {
		return db.InsertMany(ctx, table, records)
	}
	return db.Insert(ctx, table, records[0])
}
