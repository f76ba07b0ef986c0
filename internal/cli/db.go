// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/store"
)

// newDBCmd creates the 'db' command group for database housekeeping.
func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database housekeeping commands",
	}
	cmd.AddCommand(newDBMaintainCmd())
	return cmd
}

// newDBMaintainCmd creates the 'db maintain' command. It runs the
// engine-appropriate maintenance statements against the configured database.
func newDBMaintainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maintain",
		Short: "Run database maintenance (vacuum, optimize, integrity checks)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Maintenance(cfg.Database.Type, cfg.Database.Dsn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.maintain.done"))
			return nil
		},
	}
}
