// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// ErrInvalidCriteria is returned when a criteria set cannot produce a
// meaningful query (contradictory ranges, exclusive options combined).
var ErrInvalidCriteria = errors.New("invalid criteria")

// Criteria is the full set of optional query conditions. Nil fields mean
// "no condition"; in particular Hazardous distinguishes "either" (nil) from
// an explicit yes/no.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool
}

// IsZero reports whether no condition is set.
func (c Criteria) IsZero() bool {
	return c.Date == nil && c.StartDate == nil && c.EndDate == nil &&
		c.MinDistance == nil && c.MaxDistance == nil &&
		c.MinVelocity == nil && c.MaxVelocity == nil &&
		c.MinDiameter == nil && c.MaxDiameter == nil &&
		c.Hazardous == nil
}

// Validate rejects criteria sets that cannot match anything sensibly.
func (c Criteria) Validate() error {
	if c.Date != nil && (c.StartDate != nil || c.EndDate != nil) {
		return fmt.Errorf("%w: an exact date cannot be combined with a date range", ErrInvalidCriteria)
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidCriteria)
	}
	type span struct {
		name     string
		min, max *float64
	}
	for _, s := range []span{
		{"distance", c.MinDistance, c.MaxDistance},
		{"velocity", c.MinVelocity, c.MaxVelocity},
		{"diameter", c.MinDiameter, c.MaxDiameter},
	} {
		if s.min != nil && s.max != nil && *s.min > *s.max {
			return fmt.Errorf("%w: minimum %s exceeds maximum", ErrInvalidCriteria, s.name)
		}
	}
	return nil
}

// Build turns the criteria into the filter set consumed by neodb.Query.
func (c Criteria) Build() ([]Filter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var filters []Filter
	if c.Date != nil {
		filters = append(filters, DateOn(*c.Date))
	}
	if c.StartDate != nil {
		filters = append(filters, DateOnOrAfter(*c.StartDate))
	}
	if c.EndDate != nil {
		filters = append(filters, DateOnOrBefore(*c.EndDate))
	}
	if c.MinDistance != nil {
		filters = append(filters, MinDistance(*c.MinDistance))
	}
	if c.MaxDistance != nil {
		filters = append(filters, MaxDistance(*c.MaxDistance))
	}
	if c.MinVelocity != nil {
		filters = append(filters, MinVelocity(*c.MinVelocity))
	}
	if c.MaxVelocity != nil {
		filters = append(filters, MaxVelocity(*c.MaxVelocity))
	}
	if c.MinDiameter != nil {
		filters = append(filters, MinDiameter(*c.MinDiameter))
	}
	if c.MaxDiameter != nil {
		filters = append(filters, MaxDiameter(*c.MaxDiameter))
	}
	if c.Hazardous != nil {
		filters = append(filters, Hazardous(*c.Hazardous))
	}
	return filters, nil
}

// Merge overlays other onto c: conditions set in other replace the
// corresponding conditions in c. Used to let CLI flags win over a criteria
// file.
func (c Criteria) Merge(other Criteria) Criteria {
	out := c
	if other.Date != nil {
		out.Date = other.Date
	}
	if other.StartDate != nil {
		out.StartDate = other.StartDate
	}
	if other.EndDate != nil {
		out.EndDate = other.EndDate
	}
	if other.MinDistance != nil {
		out.MinDistance = other.MinDistance
	}
	if other.MaxDistance != nil {
		out.MaxDistance = other.MaxDistance
	}
	if other.MinVelocity != nil {
		out.MinVelocity = other.MinVelocity
	}
	if other.MaxVelocity != nil {
		out.MaxVelocity = other.MaxVelocity
	}
	if other.MinDiameter != nil {
		out.MinDiameter = other.MinDiameter
	}
	if other.MaxDiameter != nil {
		out.MaxDiameter = other.MaxDiameter
	}
	if other.Hazardous != nil {
		out.Hazardous = other.Hazardous
	}
	return out
}

// fileCriteria is the YAML shape of a criteria file. Dates are ISO strings.
type fileCriteria struct {
	Date      string `yaml:"date"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`

	MinDistance *float64 `yaml:"min_distance"`
	MaxDistance *float64 `yaml:"max_distance"`
	MinVelocity *float64 `yaml:"min_velocity"`
	MaxVelocity *float64 `yaml:"max_velocity"`
	MinDiameter *float64 `yaml:"min_diameter"`
	MaxDiameter *float64 `yaml:"max_diameter"`

	Hazardous *bool `yaml:"hazardous"`
}

// ParseDate parses an ISO date ("2006-01-02") as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t.UTC(), nil
}

// LoadCriteriaFile reads partial query conditions from a YAML file.
func LoadCriteriaFile(path string) (Criteria, error) {
	var c Criteria
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("criteria file: %w", err)
	}
	var fc fileCriteria
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return c, fmt.Errorf("criteria file %s: %w", path, err)
	}

	if fc.Date != "" {
		t, err := ParseDate(fc.Date)
		if err != nil {
			return c, fmt.Errorf("criteria file %s: %w", path, err)
		}
		c.Date = &t
	}
	if fc.StartDate != "" {
		t, err := ParseDate(fc.StartDate)
		if err != nil {
			return c, fmt.Errorf("criteria file %s: %w", path, err)
		}
		c.StartDate = &t
	}
	if fc.EndDate != "" {
		t, err := ParseDate(fc.EndDate)
		if err != nil {
			return c, fmt.Errorf("criteria file %s: %w", path, err)
		}
		c.EndDate = &t
	}
	c.MinDistance = fc.MinDistance
	c.MaxDistance = fc.MaxDistance
	c.MinVelocity = fc.MinVelocity
	c.MaxVelocity = fc.MaxVelocity
	c.MinDiameter = fc.MinDiameter
	c.MaxDiameter = fc.MaxDiameter
	c.Hazardous = fc.Hazardous
	return c, nil
}
