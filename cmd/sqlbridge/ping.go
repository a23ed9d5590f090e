package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge/database"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the database is reachable",
		Long: `Open a session against the configured database and report the
engine and address.

Examples:
  sqlbridge ping --db sqlite:app.db
  sqlbridge ping --db postgres:localhost:app -u app --prompt-password`,
		Args: cobra.NoArgs,
		RunE: runPing,
	}
}

func runPing(cmd *cobra.Command, _ []string) error {
	return withDB(cmd, func(_ context.Context, db *database.DB) error {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Connected: %s\n", db.Descriptor())
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Session: %s\n", db.Session())
		return nil
	})
}
