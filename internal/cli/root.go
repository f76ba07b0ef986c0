// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli sets up the command-line interface for Neoscout using the
// Cobra library. It defines the root command, subcommands (query, inspect,
// fetch, import, db), flags, and the main entry point for execution.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veskari/neoscout/internal/config"
	"github.com/veskari/neoscout/internal/extract"
	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/logging"
	"github.com/veskari/neoscout/internal/neodb"
	"github.com/veskari/neoscout/internal/tui"
)

var version = "dev" // this will be set by the linker

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

// Execute runs the root command. It is the entry point called from main.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neoscout",
		Short: "Neoscout explores near-Earth objects and their close approaches.",
		Long: `Neoscout cross-references NASA/JPL datasets of near-Earth objects
and their close approaches to Earth. It can inspect single objects,
query approaches against rich filter criteria, export results to CSV
or JSON, and keep a local database snapshot for fast offline queries.

Running without a subcommand on a terminal launches the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRuntime(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cmd.Help()
			}
			db, err := loadDatabase()
			if err != nil {
				return err
			}
			tui.SetConfigSaver(langSaver{})
			return tui.Run(db)
		},
	}

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config dir or ./neoscout.yaml)")
	cmd.PersistentFlags().String("neofile", "", "path to the NEO catalog snapshot (CSV, optionally .gz/.zst)")
	cmd.PersistentFlags().String("cadfile", "", "path to the close approach snapshot (JSON, optionally .gz/.zst)")
	cmd.PersistentFlags().String("db-type", "", "database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("db-dsn", "", "database connection string (DSN)")
	cmd.PersistentFlags().String("lang", "", `interface language ("en", "de")`)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// initRuntime loads the configuration and brings up logging and i18n. Flags
// take precedence over environment variables and the config file.
func initRuntime(cmd *cobra.Command) error {
	var explicit *string
	if cfgFile != "" {
		explicit = &cfgFile
	}
	c, err := config.Load(cmd, config.Defaults(), explicit)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("neofile") {
		c.Dataset.NEOPath, _ = flags.GetString("neofile")
	}
	if flags.Changed("cadfile") {
		c.Dataset.CADPath, _ = flags.GetString("cadfile")
	}
	if flags.Changed("db-type") {
		c.Database.Type, _ = flags.GetString("db-type")
	}
	if flags.Changed("db-dsn") {
		c.Database.Dsn, _ = flags.GetString("db-dsn")
	}
	if flags.Changed("lang") {
		c.Language, _ = flags.GetString("lang")
	}
	cfg = c

	logging.SetVerbose(verbose)
	if cfg.Logging.File != "" {
		logging.EnableFileOutput(cfg.Logging.File)
	}
	i18n.Init(cfg.Language)
	return nil
}

// langSaver persists a language choice made in the TUI back to the user
// config file.
type langSaver struct{}

func (langSaver) Save(lang string) error {
	cfg.Language = lang
	return config.WriteFile(&cfg, false)
}

// loadDatabase reads both dataset snapshots and links them into an
// in-memory database.
func loadDatabase() (*neodb.Database, error) {
	neos, err := extract.LoadNEOs(cfg.Dataset.NEOPath)
	if err != nil {
		return nil, err
	}
	approaches, err := extract.LoadApproaches(cfg.Dataset.CADPath)
	if err != nil {
		return nil, err
	}
	return neodb.New(neos, approaches), nil
}
