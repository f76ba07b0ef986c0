// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/veskari/neoscout/internal/model"
)

func fixtureResults() []*model.CloseApproach {
	eros := &model.NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84}
	unknown := &model.NearEarthObject{Designation: "2020 AB", Diameter: math.NaN(), Hazardous: true}
	return []*model.CloseApproach{
		{
			Designation: "433",
			Time:        time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC),
			Distance:    0.0254, Velocity: 18.92, NEO: eros,
		},
		{
			Designation: "2020 AB",
			Time:        time.Date(2020, time.February, 29, 23, 59, 0, 0, time.UTC),
			Distance:    math.NaN(), Velocity: math.NaN(), NEO: unknown,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, fixtureResults()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "datetime_utc" || records[0][6] != "potentially_hazardous" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "2020-01-01 12:30" || records[1][3] != "433" || records[1][4] != "Eros" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	// Unknown values become empty cells.
	if records[2][1] != "" || records[2][5] != "" {
		t.Errorf("NaN must serialize to empty cells: %v", records[2])
	}
	if records[2][6] != "true" {
		t.Errorf("hazardous must serialize as true/false: %v", records[2])
	}
}

func TestWriteCSV_EmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "datetime_utc,") {
		t.Errorf("empty result set must still write the header: %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fixtureResults()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshaling produced JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first["datetime_utc"] != "2020-01-01 12:30" {
		t.Errorf("unexpected datetime: %v", first["datetime_utc"])
	}
	neo, ok := first["neo"].(map[string]any)
	if !ok {
		t.Fatalf("neo must be a nested object: %v", first["neo"])
	}
	if neo["designation"] != "433" || neo["name"] != "Eros" {
		t.Errorf("unexpected neo: %v", neo)
	}
	// NaN becomes null.
	second := entries[1]
	if second["distance_au"] != nil {
		t.Errorf("NaN distance must be null, got %v", second["distance_au"])
	}
	if secondNEO := second["neo"].(map[string]any); secondNEO["diameter_km"] != nil {
		t.Errorf("NaN diameter must be null, got %v", secondNEO["diameter_km"])
	}
}

func TestWriteJSON_EmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty result set must encode as [], got %q", got)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, fixtureResults()); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "433 (Eros)") {
		t.Errorf("table should show fullnames: %s", out)
	}
	if !strings.Contains(out, "?") {
		t.Errorf("table should show ? for unknown diameters: %s", out)
	}
}
