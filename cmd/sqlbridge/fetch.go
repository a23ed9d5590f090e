package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge/clientcli"
	"github.com/sagarc03/sqlbridge/config"
	"github.com/sagarc03/sqlbridge/database"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <sql>",
		Short: "Run a query and print one page of rows",
		Long: `Run a query wrapped in the engine's pagination envelope and print
the resulting page. Parameters bind positionally to the engine's
placeholders (? or $n for PostgreSQL).

Examples:
  sqlbridge fetch "SELECT * FROM customer ORDER BY id" --limit 20 --skip 40
  sqlbridge fetch "SELECT * FROM customer WHERE age > ?" --param 30
  sqlbridge fetch "SELECT * FROM customer ORDER BY id" --one -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runFetch,
	}

	cmd.Flags().Int("limit", 0, "maximum rows to return (default 10, env: SQLBRIDGE_QUERY_LIMIT)")
	cmd.Flags().Int("skip", 0, "rows to skip before the page starts")
	cmd.Flags().Bool("one", false, "return at most one row")
	cmd.Flags().StringArray("param", nil, "positional parameter, repeatable")
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	skip, _ := cmd.Flags().GetInt("skip")
	one, _ := cmd.Flags().GetBool("one")
	raw, _ := cmd.Flags().GetStringArray("param")
	params := clientcli.ParseParams(raw)

	return withDB(cmd, func(ctx context.Context, db *database.DB) error {
		if one {
			return render(cmd, db.FetchOne(ctx, args[0], params, skip))
		}
		return render(cmd, db.Fetch(ctx, args[0], params, cfg.Query.Limit, skip))
	})
}
