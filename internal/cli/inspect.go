// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/model"
)

// newInspectCmd creates the 'inspect' command. It looks up a single object
// by primary designation or by name and prints its details.
func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a single near-Earth object",
		Long: `Look up one near-Earth object by primary designation or by IAU name
and print its details. With --verbose, all known close approaches of
the object are listed as well.`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}

	cmd.Flags().StringP("pdes", "p", "", "primary designation (e.g. 433)")
	cmd.Flags().StringP("name", "n", "", "IAU name (e.g. Eros)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	pdes, _ := cmd.Flags().GetString("pdes")
	name, _ := cmd.Flags().GetString("name")
	if pdes == "" && name == "" {
		return errors.New("either --pdes or --name is required")
	}

	db, err := loadDatabase()
	if err != nil {
		return err
	}

	var neo *model.NearEarthObject
	lookup := pdes
	if pdes != "" {
		neo = db.NEOByDesignation(pdes)
	} else {
		neo = db.NEOByName(name)
		lookup = name
	}
	if neo == nil {
		return errors.New(i18n.T("cli.inspect.not_found", lookup))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, neo.String())
	if verbose {
		for _, ca := range neo.Approaches {
			fmt.Fprintf(out, "- %s\n", ca.String())
		}
	}
	return nil
}
