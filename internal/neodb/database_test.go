// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package neodb

import (
	"math"
	"testing"
	"time"

	"github.com/veskari/neoscout/internal/filter"
	"github.com/veskari/neoscout/internal/model"
)

func fixtureDB() *Database {
	neos := []*model.NearEarthObject{
		{Designation: "433", Name: "Eros", Diameter: 16.84},
		{Designation: "99942", Name: "Apophis", Diameter: 0.34, Hazardous: true},
		{Designation: "2020 AB", Diameter: math.NaN()},
	}
	approaches := []*model.CloseApproach{
		{Designation: "433", Time: time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC), Distance: 0.3, Velocity: 5.2},
		{Designation: "99942", Time: time.Date(2029, 4, 13, 21, 46, 0, 0, time.UTC), Distance: 0.00025, Velocity: 7.4},
		{Designation: "2020 AB", Time: time.Date(2020, 2, 29, 23, 59, 0, 0, time.UTC), Distance: 0.02, Velocity: 11.0},
		{Designation: "433", Time: time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC), Distance: 0.4, Velocity: 4.9},
		// Unknown designation, must be dropped during linking.
		{Designation: "nope", Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Distance: 0.1, Velocity: 1},
	}
	return New(neos, approaches)
}

func TestLinking(t *testing.T) {
	db := fixtureDB()

	if db.NEOCount() != 3 {
		t.Errorf("NEOCount = %d, want 3", db.NEOCount())
	}
	if db.ApproachCount() != 4 {
		t.Errorf("ApproachCount = %d, want 4 (unknown designation dropped)", db.ApproachCount())
	}
	if db.SkippedCount() != 1 {
		t.Errorf("SkippedCount = %d, want 1", db.SkippedCount())
	}

	eros := db.NEOByDesignation("433")
	if eros == nil {
		t.Fatal("expected to find 433")
	}
	if len(eros.Approaches) != 2 {
		t.Errorf("Eros should have 2 approaches, got %d", len(eros.Approaches))
	}
	for _, ca := range db.Query() {
		if ca.NEO == nil {
			t.Errorf("approach %s has nil NEO after linking", ca.Designation)
		}
	}
}

func TestLookups(t *testing.T) {
	db := fixtureDB()

	if db.NEOByName("Eros") == nil {
		t.Error("expected to find Eros by name")
	}
	if db.NEOByName("eros") != nil {
		t.Error("name lookup must be case-sensitive")
	}
	if db.NEOByName("") != nil {
		t.Error("empty name must never match")
	}
	if db.NEOByDesignation("") != nil {
		t.Error("empty designation must never match")
	}
	if db.NEOByDesignation("2020 AB") == nil {
		t.Error("unnamed NEO must still be findable by designation")
	}
	if db.NEOByName("2020 AB") != nil {
		t.Error("unnamed NEO must not appear in the name index")
	}
}

func TestQuery(t *testing.T) {
	db := fixtureDB()

	all := db.Query()
	if len(all) != 4 {
		t.Fatalf("unfiltered query should return all 4 approaches, got %d", len(all))
	}

	hazardous := true
	c := filter.Criteria{Hazardous: &hazardous}
	filters, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := db.Query(filters...)
	if len(got) != 1 || got[0].Designation != "99942" {
		t.Errorf("hazardous query should return only Apophis, got %v", got)
	}

	start, _ := filter.ParseDate("2020-01-01")
	end, _ := filter.ParseDate("2020-12-31")
	c = filter.Criteria{StartDate: &start, EndDate: &end}
	filters, err = c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got = db.Query(filters...)
	if len(got) != 2 {
		t.Errorf("2020 range should return 2 approaches, got %d", len(got))
	}
}

func TestQueryPreservesLoadOrder(t *testing.T) {
	db := fixtureDB()
	got := db.Query()
	wantOrder := []string{"433", "99942", "2020 AB", "433"}
	for i, ca := range got {
		if ca.Designation != wantOrder[i] {
			t.Fatalf("result %d = %s, want %s", i, ca.Designation, wantOrder[i])
		}
	}
}

func TestLimit(t *testing.T) {
	db := fixtureDB()
	all := db.Query()

	if got := Limit(all, 2); len(got) != 2 {
		t.Errorf("Limit(2) returned %d results", len(got))
	}
	if got := Limit(all, 0); len(got) != len(all) {
		t.Errorf("Limit(0) must not limit, got %d", len(got))
	}
	if got := Limit(all, -5); len(got) != len(all) {
		t.Errorf("negative limit must not limit, got %d", len(got))
	}
	if got := Limit(all, 100); len(got) != len(all) {
		t.Errorf("limit above result count must be a no-op, got %d", len(got))
	}
}
