// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export serializes query results to CSV, JSON, or a human-readable
// table. Unknown values (NaN) become empty CSV cells and JSON nulls, since
// JSON has no representation for NaN.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/veskari/neoscout/internal/model"
)

// csvHeader is the column layout of CSV reports. It matches the flattened
// shape of the joined datasets.
var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// floatCell renders a float for CSV, with NaN as an empty cell.
func floatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes results as CSV rows. The header is written even when the
// result set is empty.
func WriteCSV(w io.Writer, results []*model.CloseApproach) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, ca := range results {
		row := []string{
			ca.TimeStr(),
			floatCell(ca.Distance),
			floatCell(ca.Velocity),
			ca.NEO.Designation,
			ca.NEO.Name,
			floatCell(ca.NEO.Diameter),
			strconv.FormatBool(ca.NEO.Hazardous),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", ca.Designation, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonNEO is the nested NEO shape of JSON reports.
type jsonNEO struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKm  *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// jsonApproach is the top-level JSON report entry.
type jsonApproach struct {
	DatetimeUTC  string   `json:"datetime_utc"`
	DistanceAu   *float64 `json:"distance_au"`
	VelocityKmS  *float64 `json:"velocity_km_s"`
	NearEarthObj jsonNEO  `json:"neo"`
}

// jsonFloat maps NaN to null.
func jsonFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// WriteJSON writes results as a JSON array; an empty result set yields [].
func WriteJSON(w io.Writer, results []*model.CloseApproach) error {
	out := make([]jsonApproach, 0, len(results))
	for _, ca := range results {
		out = append(out, jsonApproach{
			DatetimeUTC: ca.TimeStr(),
			DistanceAu:  jsonFloat(ca.Distance),
			VelocityKmS: jsonFloat(ca.Velocity),
			NearEarthObj: jsonNEO{
				Designation: ca.NEO.Designation,
				Name:        ca.NEO.Name,
				DiameterKm:  jsonFloat(ca.NEO.Diameter),
				Hazardous:   ca.NEO.Hazardous,
			},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	return nil
}

// WriteTable writes results as an aligned table for terminal output.
func WriteTable(w io.Writer, results []*model.CloseApproach) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE (UTC)\tOBJECT\tDISTANCE (au)\tVELOCITY (km/s)\tDIAMETER (km)\tHAZARDOUS")
	for _, ca := range results {
		diameter := "?"
		if ca.NEO.HasDiameter() {
			diameter = strconv.FormatFloat(ca.NEO.Diameter, 'f', 3, 64)
		}
		hazardous := "no"
		if ca.NEO.Hazardous {
			hazardous = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ca.TimeStr(), ca.Fullname(),
			floatCell(ca.Distance), floatCell(ca.Velocity),
			diameter, hazardous)
	}
	return tw.Flush()
}
