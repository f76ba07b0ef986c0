// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/veskari/neoscout/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approach(t time.Time, dist, vel float64, neo *model.NearEarthObject) *model.CloseApproach {
	return &model.CloseApproach{Designation: "x", Time: t, Distance: dist, Velocity: vel, NEO: neo}
}

func TestDateFilters(t *testing.T) {
	ca := approach(time.Date(2020, time.March, 15, 23, 59, 0, 0, time.UTC), 0.1, 10, nil)

	if !DateOn(date(2020, time.March, 15)).Matches(ca) {
		t.Error("DateOn should match same calendar date regardless of time of day")
	}
	if DateOn(date(2020, time.March, 16)).Matches(ca) {
		t.Error("DateOn should not match the next day")
	}
	if !DateOnOrAfter(date(2020, time.March, 15)).Matches(ca) {
		t.Error("DateOnOrAfter should be inclusive")
	}
	if DateOnOrAfter(date(2020, time.March, 16)).Matches(ca) {
		t.Error("DateOnOrAfter should exclude earlier dates")
	}
	if !DateOnOrBefore(date(2020, time.March, 15)).Matches(ca) {
		t.Error("DateOnOrBefore should be inclusive")
	}
	if DateOnOrBefore(date(2020, time.March, 14)).Matches(ca) {
		t.Error("DateOnOrBefore should exclude later dates")
	}
}

func TestRangeFilters(t *testing.T) {
	neo := &model.NearEarthObject{Designation: "433", Diameter: 16.84}
	ca := approach(date(2020, time.January, 1), 0.05, 20, neo)

	if !MinDistance(0.05).Matches(ca) || MinDistance(0.06).Matches(ca) {
		t.Error("MinDistance boundary behavior wrong")
	}
	if !MaxDistance(0.05).Matches(ca) || MaxDistance(0.04).Matches(ca) {
		t.Error("MaxDistance boundary behavior wrong")
	}
	if !MinVelocity(20).Matches(ca) || MinVelocity(21).Matches(ca) {
		t.Error("MinVelocity boundary behavior wrong")
	}
	if !MaxVelocity(20).Matches(ca) || MaxVelocity(19).Matches(ca) {
		t.Error("MaxVelocity boundary behavior wrong")
	}
	if !MinDiameter(16).Matches(ca) || MinDiameter(17).Matches(ca) {
		t.Error("MinDiameter behavior wrong")
	}
	if !MaxDiameter(17).Matches(ca) || MaxDiameter(16).Matches(ca) {
		t.Error("MaxDiameter behavior wrong")
	}
}

func TestNaNNeverMatchesOrderedComparisons(t *testing.T) {
	neo := &model.NearEarthObject{Designation: "u", Diameter: math.NaN()}
	ca := approach(date(2020, time.January, 1), math.NaN(), math.NaN(), neo)

	for _, f := range []Filter{
		MinDistance(0), MaxDistance(1e9),
		MinVelocity(0), MaxVelocity(1e9),
		MinDiameter(0), MaxDiameter(1e9),
	} {
		if f.Matches(ca) {
			t.Errorf("filter %v matched NaN attribute", f)
		}
	}
}

func TestHazardousFilter(t *testing.T) {
	hazardous := &model.NearEarthObject{Designation: "h", Hazardous: true}
	benign := &model.NearEarthObject{Designation: "b"}

	if !Hazardous(true).Matches(approach(date(2020, 1, 1), 0, 0, hazardous)) {
		t.Error("Hazardous(true) should match hazardous NEO")
	}
	if Hazardous(true).Matches(approach(date(2020, 1, 1), 0, 0, benign)) {
		t.Error("Hazardous(true) should not match benign NEO")
	}
	if !Hazardous(false).Matches(approach(date(2020, 1, 1), 0, 0, benign)) {
		t.Error("Hazardous(false) should match benign NEO")
	}
}

func TestMatchesAll(t *testing.T) {
	neo := &model.NearEarthObject{Designation: "433", Diameter: 16.84, Hazardous: false}
	ca := approach(date(2020, time.June, 1), 0.3, 12, neo)

	if !MatchesAll(ca, nil) {
		t.Error("empty filter set must match everything")
	}
	set := []Filter{DateOnOrAfter(date(2020, time.January, 1)), MaxDistance(0.5), Hazardous(false)}
	if !MatchesAll(ca, set) {
		t.Error("expected all filters to match")
	}
	set = append(set, MinVelocity(100))
	if MatchesAll(ca, set) {
		t.Error("one failing filter must reject the approach")
	}
}

func TestCriteriaValidate(t *testing.T) {
	d := date(2020, time.January, 1)
	later := date(2020, time.February, 1)
	minV, maxV := 10.0, 5.0

	cases := []struct {
		name string
		c    Criteria
	}{
		{"date with range", Criteria{Date: &d, StartDate: &later}},
		{"start after end", Criteria{StartDate: &later, EndDate: &d}},
		{"min velocity above max", Criteria{MinVelocity: &minV, MaxVelocity: &maxV}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.c.Validate(); !errors.Is(err, ErrInvalidCriteria) {
				t.Errorf("expected ErrInvalidCriteria, got %v", err)
			}
			if _, err := tc.c.Build(); err == nil {
				t.Error("Build must reject invalid criteria")
			}
		})
	}

	if err := (Criteria{}).Validate(); err != nil {
		t.Errorf("empty criteria must validate: %v", err)
	}
}

func TestCriteriaBuild(t *testing.T) {
	d := date(2020, time.January, 1)
	dist := 0.2
	hazardous := true
	c := Criteria{StartDate: &d, MaxDistance: &dist, Hazardous: &hazardous}
	filters, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(filters) != 3 {
		t.Fatalf("expected 3 filters, got %d", len(filters))
	}
}

func TestCriteriaMerge(t *testing.T) {
	fileDist := 0.5
	flagDist := 0.1
	hazardous := true
	fromFile := Criteria{MaxDistance: &fileDist, Hazardous: &hazardous}
	fromFlags := Criteria{MaxDistance: &flagDist}

	merged := fromFile.Merge(fromFlags)
	if *merged.MaxDistance != 0.1 {
		t.Errorf("flag value must win, got %v", *merged.MaxDistance)
	}
	if merged.Hazardous == nil || !*merged.Hazardous {
		t.Error("file-only conditions must survive the merge")
	}
}
