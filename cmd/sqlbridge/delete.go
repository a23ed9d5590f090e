package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/clientcli"
	"github.com/sagarc03/sqlbridge/database"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <table>",
		Short: "Delete rows by key or by filter",
		Long: `Delete rows from a table.

With --key, records are read from --file and rows whose key column
matches a record's key value are deleted. With --filter, rows matching
column=value are deleted; several filters are combined with AND.
When both are given the key delete runs first, then the filter delete.

Examples:
  echo '{"id": 3}' | sqlbridge delete customer --key id
  sqlbridge delete customer --key id --file stale.yaml --tx
  sqlbridge delete customer --filter status=inactive --filter region=eu`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("key", "", "key column used to match records from --file")
	cmd.Flags().StringP("file", "f", "-", "records input file (\"-\" for stdin)")
	cmd.Flags().StringArray("filter", nil, "column=value condition, repeatable")
	cmd.Flags().Bool("tx", false, "run inside a transaction")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	criteria, err := deleteCriteria(cmd)
	if err != nil {
		return err
	}

	return withDB(cmd, func(ctx context.Context, db *database.DB) error {
		res := inTx(cmd, db, func() sqlbridge.Result {
			return db.Delete(ctx, args[0], criteria...)
		})
		return render(cmd, res)
	})
}

// deleteCriteria builds the criteria from --key/--file and --filter.
func deleteCriteria(cmd *cobra.Command) ([]database.DeleteCriteria, error) {
	key, _ := cmd.Flags().GetString("key")
	rawFilters, _ := cmd.Flags().GetStringArray("filter")

	var criteria []database.DeleteCriteria
	if key != "" {
		records, isList, err := readRecords(cmd)
		if err != nil {
			return nil, err
		}
		if isList {
			criteria = append(criteria, database.ByKeys{Key: key, Records: records})
		} else {
			criteria = append(criteria, database.ByKey{Key: key, Record: records[0]})
		}
	}

	if len(rawFilters) > 0 {
		filters := make([]sqlbridge.Record, len(rawFilters))
		for i, f := range rawFilters {
			rec, err := clientcli.ParseFilter(f)
			if err != nil {
				return nil, err
			}
			filters[i] = rec
		}
		if len(filters) == 1 {
			criteria = append(criteria, database.ByFilter{Filter: filters[0]})
		} else {
			criteria = append(criteria, database.AllOf{Filters: filters})
		}
	}

	if len(criteria) == 0 {
		return nil, errors.New("delete needs --key or --filter")
	}
	return criteria, nil
}
