package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/clientcli"
	"github.com/sagarc03/sqlbridge/config"
	"github.com/sagarc03/sqlbridge/database"
)

// openDB connects using the loaded configuration. The caller closes the
// returned DB.
func openDB(cmd *cobra.Command) (*database.DB, error) {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	desc, err := cfg.Database.Descriptor()
	if err != nil {
		return nil, err
	}

	prompt, _ := cmd.Flags().GetBool("prompt-password")
	if prompt && !desc.Engine.IsEmbedded() && desc.Password == "" {
		pw, err := clientcli.PromptPassword(fmt.Sprintf("Password for %s", desc))
		if err != nil {
			return nil, err
		}
		desc.Password = pw
	}

	db, err := database.OpenDescriptor(ctx, desc, database.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}
	slog.Debug("connected", "db", desc.String(), "session", db.Session())
	return db, nil
}

// withDB opens a connection, runs fn and closes the connection.
func withDB(cmd *cobra.Command, fn func(ctx context.Context, db *database.DB) error) error {
	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("close connection", "err", cerr)
		}
	}()
	return fn(cmd.Context(), db)
}

// inTx runs fn inside a transaction when --tx is set.
func inTx(cmd *cobra.Command, db *database.DB, fn func() sqlbridge.Result) sqlbridge.Result {
	useTx, _ := cmd.Flags().GetBool("tx")
	if !useTx {
		return fn()
	}
	return db.InTx(cmd.Context(), fn)
}

// getFormatter returns the formatter selected by configuration and flags.
func getFormatter(cmd *cobra.Command) (clientcli.Formatter, error) {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return nil, err
	}
	f, err := clientcli.NewFormatter(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if hf, ok := f.(*clientcli.HumanFormatter); ok {
		hf.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	return f, nil
}

// render prints res and turns a failed result into an exitError.
func render(cmd *cobra.Command, res sqlbridge.Result) error {
	formatter, err := getFormatter(cmd)
	if err != nil {
		return err
	}
	if err := formatter.FormatResult(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if res.Err != nil {
		return &exitError{err: res.Err}
	}
	return nil
}

// openInput returns stdin for "" and "-", otherwise the named file.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readRecords decodes records from the --file input. isList is true when the
// input was a sequence rather than a single mapping.
func readRecords(cmd *cobra.Command) (records []sqlbridge.Record, isList bool, err error) {
	path, _ := cmd.Flags().GetString("file")
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = r.Close() }()
	return clientcli.DecodeRecords(r)
}
