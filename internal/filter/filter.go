// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package filter builds predicate sets over close approaches from
// user-supplied criteria. Every filter compares one attribute of an approach
// (or of its linked NEO) against a reference value; a query matches when all
// filters agree. Criteria can come from CLI flags, from a YAML criteria
// file, or both (flags win).
package filter

import (
	"fmt"
	"time"

	"github.com/veskari/neoscout/internal/model"
)

// Filter is a single search criterion over a close approach.
type Filter struct {
	desc  string
	match func(ca *model.CloseApproach) bool
}

// Matches reports whether the approach satisfies this criterion.
func (f Filter) Matches(ca *model.CloseApproach) bool {
	return f.match(ca)
}

// String describes the criterion for logs and error messages.
func (f Filter) String() string {
	return f.desc
}

// MatchesAll reports whether the approach satisfies every filter in the set.
// An empty set matches everything.
func MatchesAll(ca *model.CloseApproach, filters []Filter) bool {
	for _, f := range filters {
		if !f.Matches(ca) {
			return false
		}
	}
	return true
}

// utcDate truncates a time to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOn matches approaches occurring on exactly the given UTC date.
func DateOn(date time.Time) Filter {
	want := utcDate(date)
	return Filter{
		desc:  fmt.Sprintf("date == %s", want.Format("2006-01-02")),
		match: func(ca *model.CloseApproach) bool { return utcDate(ca.Time).Equal(want) },
	}
}

// DateOnOrAfter matches approaches occurring on or after the given UTC date.
func DateOnOrAfter(date time.Time) Filter {
	want := utcDate(date)
	return Filter{
		desc:  fmt.Sprintf("date >= %s", want.Format("2006-01-02")),
		match: func(ca *model.CloseApproach) bool { return !utcDate(ca.Time).Before(want) },
	}
}

// DateOnOrBefore matches approaches occurring on or before the given UTC date.
func DateOnOrBefore(date time.Time) Filter {
	want := utcDate(date)
	return Filter{
		desc:  fmt.Sprintf("date <= %s", want.Format("2006-01-02")),
		match: func(ca *model.CloseApproach) bool { return !utcDate(ca.Time).After(want) },
	}
}

// MinDistance matches approaches with a nominal distance of at least au.
// NaN distances never match.
func MinDistance(au float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("distance >= %v au", au),
		match: func(ca *model.CloseApproach) bool { return ca.Distance >= au },
	}
}

// MaxDistance matches approaches with a nominal distance of at most au.
func MaxDistance(au float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("distance <= %v au", au),
		match: func(ca *model.CloseApproach) bool { return ca.Distance <= au },
	}
}

// MinVelocity matches approaches with a relative velocity of at least kms.
func MinVelocity(kms float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("velocity >= %v km/s", kms),
		match: func(ca *model.CloseApproach) bool { return ca.Velocity >= kms },
	}
}

// MaxVelocity matches approaches with a relative velocity of at most kms.
func MaxVelocity(kms float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("velocity <= %v km/s", kms),
		match: func(ca *model.CloseApproach) bool { return ca.Velocity <= kms },
	}
}

// MinDiameter matches approaches whose NEO has a diameter of at least km.
// NEOs with unknown diameters never match a diameter criterion.
func MinDiameter(km float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("diameter >= %v km", km),
		match: func(ca *model.CloseApproach) bool { return ca.NEO != nil && ca.NEO.Diameter >= km },
	}
}

// MaxDiameter matches approaches whose NEO has a diameter of at most km.
func MaxDiameter(km float64) Filter {
	return Filter{
		desc:  fmt.Sprintf("diameter <= %v km", km),
		match: func(ca *model.CloseApproach) bool { return ca.NEO != nil && ca.NEO.Diameter <= km },
	}
}

// Hazardous matches approaches whose NEO hazard flag equals want.
func Hazardous(want bool) Filter {
	return Filter{
		desc:  fmt.Sprintf("hazardous == %v", want),
		match: func(ca *model.CloseApproach) bool { return ca.NEO != nil && ca.NEO.Hazardous == want },
	}
}
