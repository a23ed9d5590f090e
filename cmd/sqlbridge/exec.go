package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/clientcli"
	"github.com/sagarc03/sqlbridge/database"
)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <sql>",
		Short: "Execute a statement",
		Long: `Execute a DDL or DML statement and report the affected row count.

With --batch the statement is prepared once and executed for every
parameter list in the file (JSON or YAML list of lists, "-" for stdin).

Examples:
  sqlbridge exec "CREATE TABLE customer (id INTEGER PRIMARY KEY, name VARCHAR(50))"
  sqlbridge exec "UPDATE customer SET name = ? WHERE id = ?" --param bob --param 2 --tx
  echo '[[1, "ann"], [2, "bob"]]' | sqlbridge exec "INSERT INTO customer VALUES (?, ?)" --batch -`,
		Args: cobra.ExactArgs(1),
		RunE: runExec,
	}

	cmd.Flags().StringArray("param", nil, "positional parameter, repeatable")
	cmd.Flags().String("batch", "", "file with parameter sets for a batch execution (\"-\" for stdin)")
	cmd.Flags().Bool("tx", false, "run inside a transaction")
	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("param")
	batchPath, _ := cmd.Flags().GetString("batch")

	var paramSets [][]any
	if cmd.Flags().Changed("batch") {
		r, err := openInput(cmd, batchPath)
		if err != nil {
			return err
		}
		paramSets, err = clientcli.DecodeParamSets(r)
		_ = r.Close()
		if err != nil {
			return err
		}
	}

	return withDB(cmd, func(ctx context.Context, db *database.DB) error {
		res := inTx(cmd, db, func() sqlbridge.Result {
			if paramSets != nil {
				return db.ExecuteBatch(ctx, args[0], paramSets)
			}
			return db.Execute(ctx, args[0], clientcli.ParseParams(raw)...)
		})
		return render(cmd, res)
	})
}
