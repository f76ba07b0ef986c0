// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/veskari/neoscout/internal/export"
	"github.com/veskari/neoscout/internal/filter"
	"github.com/veskari/neoscout/internal/i18n"
	"github.com/veskari/neoscout/internal/model"
	"github.com/veskari/neoscout/internal/neodb"
	"github.com/veskari/neoscout/internal/store"
)

// newQueryCmd creates the 'query' command. It filters close approaches by
// date, distance, velocity, diameter and hazard status, and writes the
// results as a table, CSV, or JSON.
func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query close approaches matching filter criteria",
		Long: `Query close approaches that match all given criteria and display
a table of results, or write them to a CSV or JSON file.

Dates are UTC calendar dates in YYYY-MM-DD form. Distances are in
astronomical units, velocities in km/s, diameters in km. Criteria may
also be read from a YAML file; flags take precedence over the file.`,
		Args: cobra.NoArgs,
		RunE: runQuery,
	}

	cmd.Flags().String("date", "", "approaches on this exact date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "approaches on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "approaches on or before this date (YYYY-MM-DD)")
	cmd.Flags().Float64("min-distance", 0, "minimum approach distance in au")
	cmd.Flags().Float64("max-distance", 0, "maximum approach distance in au")
	cmd.Flags().Float64("min-velocity", 0, "minimum approach velocity in km/s")
	cmd.Flags().Float64("max-velocity", 0, "maximum approach velocity in km/s")
	cmd.Flags().Float64("min-diameter", 0, "minimum object diameter in km")
	cmd.Flags().Float64("max-diameter", 0, "maximum object diameter in km")
	cmd.Flags().Bool("hazardous", false, "only potentially hazardous objects")
	cmd.Flags().Bool("not-hazardous", false, "only objects not marked hazardous")
	cmd.Flags().String("criteria", "", "YAML file with filter criteria")
	cmd.Flags().IntP("limit", "l", 10, "maximum number of results (0 = unlimited)")
	cmd.Flags().StringP("outfile", "o", "", "write results to this file (.csv or .json)")
	cmd.Flags().String("source", "file", `query the dataset snapshots ("file") or the database ("db")`)

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("criteria"); path != "" {
		fileCriteria, err := filter.LoadCriteriaFile(path)
		if err != nil {
			return err
		}
		// Flags win over the criteria file.
		criteria = fileCriteria.Merge(criteria)
	}
	if err := criteria.Validate(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	source, _ := cmd.Flags().GetString("source")

	var results []*model.CloseApproach
	switch source {
	case "file":
		db, err := loadDatabase()
		if err != nil {
			return err
		}
		filters, err := criteria.Build()
		if err != nil {
			return err
		}
		results = neodb.Limit(db.Query(filters...), limit)
	case "db":
		st, err := store.New(cfg.Database.Type, cfg.Database.Dsn)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()
		results, err = st.QueryApproaches(cmd.Context(), criteria, limit)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown source %q (expected \"file\" or \"db\")", source)
	}

	outfile, _ := cmd.Flags().GetString("outfile")
	return writeResults(cmd, results, outfile)
}

// criteriaFromFlags translates set query flags into filter criteria.
func criteriaFromFlags(cmd *cobra.Command) (filter.Criteria, error) {
	var c filter.Criteria
	flags := cmd.Flags()

	dateFlag := func(name string, dst **time.Time) error {
		if !flags.Changed(name) {
			return nil
		}
		raw, _ := flags.GetString(name)
		t, err := filter.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		*dst = &t
		return nil
	}
	if err := dateFlag("date", &c.Date); err != nil {
		return c, err
	}
	if err := dateFlag("start-date", &c.StartDate); err != nil {
		return c, err
	}
	if err := dateFlag("end-date", &c.EndDate); err != nil {
		return c, err
	}

	floatFlag := func(name string, dst **float64) {
		if flags.Changed(name) {
			v, _ := flags.GetFloat64(name)
			*dst = &v
		}
	}
	floatFlag("min-distance", &c.MinDistance)
	floatFlag("max-distance", &c.MaxDistance)
	floatFlag("min-velocity", &c.MinVelocity)
	floatFlag("max-velocity", &c.MaxVelocity)
	floatFlag("min-diameter", &c.MinDiameter)
	floatFlag("max-diameter", &c.MaxDiameter)

	hazardous, _ := flags.GetBool("hazardous")
	notHazardous, _ := flags.GetBool("not-hazardous")
	if hazardous && notHazardous {
		return c, fmt.Errorf("%w: --hazardous and --not-hazardous are mutually exclusive", filter.ErrInvalidCriteria)
	}
	if hazardous {
		v := true
		c.Hazardous = &v
	}
	if notHazardous {
		v := false
		c.Hazardous = &v
	}

	return c, nil
}

// writeResults renders results to stdout or to an outfile chosen by its
// extension.
func writeResults(cmd *cobra.Command, results []*model.CloseApproach, outfile string) error {
	if outfile == "" {
		if err := export.WriteTable(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.query.results", len(results)))
		return nil
	}

	f, err := os.Create(outfile)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(outfile)) {
	case ".csv":
		err = export.WriteCSV(f, results)
	case ".json":
		err = export.WriteJSON(f, results)
	default:
		err = fmt.Errorf("unsupported output format %q (expected .csv or .json)", filepath.Ext(outfile))
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.query.written", len(results), outfile))
	return nil
}
