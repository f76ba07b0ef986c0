// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewNearEarthObject_Quirks(t *testing.T) {
	// Unnamed object with unknown diameter and empty hazard flag.
	neo, err := NewNearEarthObject("2020 AB", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if neo.Name != "" {
		t.Errorf("expected empty name, got %q", neo.Name)
	}
	if !math.IsNaN(neo.Diameter) {
		t.Errorf("expected NaN diameter, got %v", neo.Diameter)
	}
	if neo.Hazardous {
		t.Error("empty pha flag must not be hazardous")
	}
	if neo.Fullname() != "2020 AB" {
		t.Errorf("unexpected fullname: %q", neo.Fullname())
	}

	// Named, measured, hazardous object.
	neo, err = NewNearEarthObject("433", "Eros", "16.84", "N")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if neo.Fullname() != "433 (Eros)" {
		t.Errorf("unexpected fullname: %q", neo.Fullname())
	}
	if neo.Diameter != 16.84 {
		t.Errorf("unexpected diameter: %v", neo.Diameter)
	}
	if neo.Hazardous {
		t.Error("pha=N must not be hazardous")
	}

	neo, err = NewNearEarthObject("99942", "Apophis", "0.34", "Y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !neo.Hazardous {
		t.Error("pha=Y must be hazardous")
	}
}

func TestNewNearEarthObject_Errors(t *testing.T) {
	if _, err := NewNearEarthObject("", "Nameless", "", ""); err == nil {
		t.Error("expected error for missing designation")
	}
	if _, err := NewNearEarthObject("433", "Eros", "not-a-number", "N"); err == nil {
		t.Error("expected error for malformed diameter")
	}
}

func TestNewCloseApproach(t *testing.T) {
	ca, err := NewCloseApproach("433", "2020-Jan-01 12:30", "0.025", "18.92")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC)
	if !ca.Time.Equal(want) {
		t.Errorf("time = %v, want %v", ca.Time, want)
	}
	if ca.TimeStr() != "2020-01-01 12:30" {
		t.Errorf("TimeStr = %q", ca.TimeStr())
	}
	if ca.Distance != 0.025 || ca.Velocity != 18.92 {
		t.Errorf("unexpected distance/velocity: %v/%v", ca.Distance, ca.Velocity)
	}
	if ca.NEO != nil {
		t.Error("NEO must be nil before linking")
	}
	if ca.Fullname() != "433" {
		t.Errorf("pre-link fullname should be the designation, got %q", ca.Fullname())
	}

	// Missing numeric fields become NaN.
	ca, err = NewCloseApproach("2020 AB", "2020-Feb-29 23:59", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(ca.Distance) || !math.IsNaN(ca.Velocity) {
		t.Errorf("expected NaN distance/velocity, got %v/%v", ca.Distance, ca.Velocity)
	}
}

func TestNewCloseApproach_Errors(t *testing.T) {
	if _, err := NewCloseApproach("", "2020-Jan-01 12:30", "", ""); err == nil {
		t.Error("expected error for missing designation")
	}
	if _, err := NewCloseApproach("433", "01/01/2020", "", ""); err == nil {
		t.Error("expected error for malformed calendar date")
	}
}

func TestStringRendering(t *testing.T) {
	neo := &NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84}
	if !strings.Contains(neo.String(), "433 (Eros)") {
		t.Errorf("String() should include fullname: %q", neo.String())
	}

	unknown := &NearEarthObject{Designation: "2020 AB", Diameter: math.NaN()}
	if !strings.Contains(unknown.String(), "unknown diameter") {
		t.Errorf("String() should mention unknown diameter: %q", unknown.String())
	}

	ca := &CloseApproach{
		Designation: "433",
		Time:        time.Date(2025, time.October, 3, 7, 19, 0, 0, time.UTC),
		Distance:    0.41,
		Velocity:    3.72,
		NEO:         neo,
	}
	s := ca.String()
	if !strings.Contains(s, "2025-10-03 07:19") || !strings.Contains(s, "433 (Eros)") {
		t.Errorf("unexpected approach description: %q", s)
	}
}
