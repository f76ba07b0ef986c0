// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCriteriaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing criteria file: %v", err)
	}
	return path
}

func TestLoadCriteriaFile(t *testing.T) {
	path := writeCriteriaFile(t, `
start_date: "2020-01-01"
end_date: "2020-12-31"
max_distance: 0.1
min_velocity: 5.5
hazardous: true
`)
	c, err := LoadCriteriaFile(path)
	if err != nil {
		t.Fatalf("LoadCriteriaFile: %v", err)
	}
	if c.StartDate == nil || !c.StartDate.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start date: %v", c.StartDate)
	}
	if c.EndDate == nil || c.EndDate.Month() != time.December {
		t.Errorf("unexpected end date: %v", c.EndDate)
	}
	if c.MaxDistance == nil || *c.MaxDistance != 0.1 {
		t.Errorf("unexpected max distance: %v", c.MaxDistance)
	}
	if c.MinVelocity == nil || *c.MinVelocity != 5.5 {
		t.Errorf("unexpected min velocity: %v", c.MinVelocity)
	}
	if c.Hazardous == nil || !*c.Hazardous {
		t.Errorf("unexpected hazardous: %v", c.Hazardous)
	}
	if c.Date != nil || c.MinDistance != nil {
		t.Error("unset conditions must stay nil")
	}
}

func TestLoadCriteriaFile_Partial(t *testing.T) {
	path := writeCriteriaFile(t, "hazardous: false\n")
	c, err := LoadCriteriaFile(path)
	if err != nil {
		t.Fatalf("LoadCriteriaFile: %v", err)
	}
	if c.Hazardous == nil || *c.Hazardous {
		t.Errorf("expected explicit hazardous=false, got %v", c.Hazardous)
	}
	if c.IsZero() {
		t.Error("criteria with an explicit hazardous flag is not zero")
	}
}

func TestLoadCriteriaFile_BadDate(t *testing.T) {
	path := writeCriteriaFile(t, "date: \"01/02/2020\"\n")
	if _, err := LoadCriteriaFile(path); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestLoadCriteriaFile_Missing(t *testing.T) {
	if _, err := LoadCriteriaFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
