// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veskari/neoscout/internal/extract"
	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/store"
)

// newImportCmd creates the 'import' command. It loads the dataset snapshots
// and replaces the database contents with them.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the dataset snapshots into the database",
		Long: `Read the configured NEO and close approach snapshots and import them
into the database, replacing any previously imported snapshot. The
database can then serve queries with --source db.`,
		Args: cobra.NoArgs,
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	neos, err := extract.LoadNEOs(cfg.Dataset.NEOPath)
	if err != nil {
		return err
	}
	approaches, err := extract.LoadApproaches(cfg.Dataset.CADPath)
	if err != nil {
		return err
	}

	st, err := store.New(cfg.Database.Type, cfg.Database.Dsn)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	stats, err := st.ImportDataset(cmd.Context(), neos, approaches)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.import.done", stats.NEOs, stats.Approaches))
	return nil
}
