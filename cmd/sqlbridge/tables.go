package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge/database"
)

func newTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables [table]",
		Short: "List user tables, or check that one exists",
		Long: `Without arguments, list the user tables of the connected database.
With a table name, print whether it exists and exit non-zero if not.

Examples:
  sqlbridge tables
  sqlbridge tables customer`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTables,
	}
	return cmd
}

func runTables(cmd *cobra.Command, args []string) error {
	return withDB(cmd, func(ctx context.Context, db *database.DB) error {
		if len(args) == 0 {
			return render(cmd, db.Tables(ctx))
		}

		ok, err := db.TableExists(ctx, args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
		if !ok {
			return &exitError{err: fmt.Errorf("table %q not found", args[0])}
		}
		return nil
	})
}
