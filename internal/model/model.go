// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core entities Neoscout works with: near-Earth
// objects from JPL's Small-Body Database and their recorded close approaches
// from the Close Approach Data API. The constructors and helpers here absorb
// the quirks of the published datasets (missing names, unknown diameters,
// empty hazard flags) so the rest of the application never has to.
package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// calTimeLayout is the calendar date format used by the CAD API, e.g.
// "2020-Jan-01 12:30". Times are UTC.
const calTimeLayout = "2006-Jan-02 15:04"

// displayTimeLayout is the format used for human-readable output and for
// serialization to CSV/JSON reports.
const displayTimeLayout = "2006-01-02 15:04"

// NearEarthObject is a small body cataloged by JPL with the subset of
// semantic and physical parameters Neoscout cares about. Designation is
// required and unique; Name is empty for unnamed objects; Diameter is NaN
// when unknown.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64 // km, NaN when unknown
	Hazardous   bool

	// Approaches collects the close approaches of this object. It starts
	// empty and is populated when a neodb.Database links the datasets.
	Approaches []*CloseApproach
}

// NewNearEarthObject builds a NearEarthObject from the raw CSV field values.
// An empty diameter becomes NaN; hazardous is true only for "Y".
func NewNearEarthObject(designation, name, diameter, hazardous string) (*NearEarthObject, error) {
	if designation == "" {
		return nil, fmt.Errorf("near-Earth object has no primary designation")
	}
	d := math.NaN()
	if diameter != "" {
		v, err := strconv.ParseFloat(diameter, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid diameter %q for %s: %w", diameter, designation, err)
		}
		d = v
	}
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    d,
		Hazardous:   hazardous == "Y",
	}, nil
}

// Fullname returns the designation with the IAU name in parentheses, or just
// the designation for unnamed objects.
func (n *NearEarthObject) Fullname() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

// HasDiameter reports whether the object has a known diameter.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// String returns a human-readable description of the object.
func (n *NearEarthObject) String() string {
	diameter := "an unknown diameter"
	if n.HasDiameter() {
		diameter = fmt.Sprintf("a diameter of %.3f km", n.Diameter)
	}
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has %s and %s potentially hazardous", n.Fullname(), diameter, hazard)
}

// CloseApproach is a recorded event of a small body passing near Earth.
// Designation is the join key back to the NEO dataset; NEO stays nil until
// the database links the two datasets.
type CloseApproach struct {
	Designation string
	Time        time.Time // UTC
	Distance    float64   // nominal approach distance, au
	Velocity    float64   // relative velocity, km/s

	NEO *NearEarthObject
}

// NewCloseApproach builds a CloseApproach from the raw CAD field values.
// Missing distance or velocity become NaN.
func NewCloseApproach(designation, calTime, distance, velocity string) (*CloseApproach, error) {
	if designation == "" {
		return nil, fmt.Errorf("close approach has no designation")
	}
	t, err := ParseCalTime(calTime)
	if err != nil {
		return nil, fmt.Errorf("close approach of %s: %w", designation, err)
	}
	dist := math.NaN()
	if distance != "" {
		v, err := strconv.ParseFloat(distance, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid distance %q for %s: %w", distance, designation, err)
		}
		dist = v
	}
	vel := math.NaN()
	if velocity != "" {
		v, err := strconv.ParseFloat(velocity, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid velocity %q for %s: %w", velocity, designation, err)
		}
		vel = v
	}
	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    dist,
		Velocity:    vel,
	}, nil
}

// TimeStr formats the approach time without the seconds that don't exist in
// the source dataset.
func (ca *CloseApproach) TimeStr() string {
	return ca.Time.UTC().Format(displayTimeLayout)
}

// Fullname returns the full name of the linked NEO, falling back to the raw
// designation before linking.
func (ca *CloseApproach) Fullname() string {
	if ca.NEO != nil {
		return ca.NEO.Fullname()
	}
	return ca.Designation
}

// String returns a human-readable description of the approach.
func (ca *CloseApproach) String() string {
	return fmt.Sprintf("On %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		ca.TimeStr(), ca.Fullname(), ca.Distance, ca.Velocity)
}

// ParseCalTime parses the CAD API calendar date format ("2020-Jan-01 12:30")
// into a UTC time.
func ParseCalTime(s string) (time.Time, error) {
	t, err := time.Parse(calTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatTime renders a time the way Neoscout reports do.
func FormatTime(t time.Time) string {
	return t.UTC().Format(displayTimeLayout)
}
