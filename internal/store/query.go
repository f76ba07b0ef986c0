// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/veskari/neoscout/internal/filter"
	"github.com/veskari/neoscout/internal/model"
)

// dayBounds returns the half-open UTC interval covering the calendar date.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// neoConditions applies the NEO-side criteria to a subquery over neos.
// Comparisons against NULL diameters are false in SQL, matching the NaN
// semantics of the in-memory engine.
func neoConditions(sub *bun.SelectQuery, c filter.Criteria) *bun.SelectQuery {
	if c.MinDiameter != nil {
		sub = sub.Where("diameter_km >= ?", *c.MinDiameter)
	}
	if c.MaxDiameter != nil {
		sub = sub.Where("diameter_km <= ?", *c.MaxDiameter)
	}
	if c.Hazardous != nil {
		sub = sub.Where("hazardous = ?", *c.Hazardous)
	}
	return sub
}

// QueryApproaches runs the criteria server-side and returns matching
// approaches, linked to their NEOs, in approach-time order. limit <= 0 means
// unlimited.
func (s *Store) QueryApproaches(ctx context.Context, c filter.Criteria, limit int) ([]*model.CloseApproach, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var rows []approachRow
	q := s.bun.NewSelect().Model(&rows)

	if c.Date != nil {
		start, end := dayBounds(*c.Date)
		q = q.Where("approach_at >= ?", start).Where("approach_at < ?", end)
	}
	if c.StartDate != nil {
		start, _ := dayBounds(*c.StartDate)
		q = q.Where("approach_at >= ?", start)
	}
	if c.EndDate != nil {
		_, end := dayBounds(*c.EndDate)
		q = q.Where("approach_at < ?", end)
	}
	if c.MinDistance != nil {
		q = q.Where("distance_au >= ?", *c.MinDistance)
	}
	if c.MaxDistance != nil {
		q = q.Where("distance_au <= ?", *c.MaxDistance)
	}
	if c.MinVelocity != nil {
		q = q.Where("velocity_km_s >= ?", *c.MinVelocity)
	}
	if c.MaxVelocity != nil {
		q = q.Where("velocity_km_s <= ?", *c.MaxVelocity)
	}
	if c.MinDiameter != nil || c.MaxDiameter != nil || c.Hazardous != nil {
		sub := neoConditions(s.bun.NewSelect().Model((*neoRow)(nil)).Column("designation"), c)
		q = q.Where("a.designation IN (?)", sub)
	}

	q = q.OrderExpr("approach_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to query approaches: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Load the NEOs for the result set and link them.
	designations := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if !seen[r.Designation] {
			seen[r.Designation] = true
			designations = append(designations, r.Designation)
		}
	}
	var neoRows []neoRow
	if err := s.bun.NewSelect().Model(&neoRows).
		Where("designation IN (?)", bun.In(designations)).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load NEOs for results: %w", err)
	}
	neos := make(map[string]*model.NearEarthObject, len(neoRows))
	for _, r := range neoRows {
		neos[r.Designation] = rowToNEO(r)
	}

	out := make([]*model.CloseApproach, 0, len(rows))
	for _, r := range rows {
		ca := rowToApproach(r)
		ca.NEO = neos[r.Designation]
		if ca.NEO != nil {
			ca.NEO.Approaches = append(ca.NEO.Approaches, ca)
		}
		out = append(out, ca)
	}
	return out, nil
}

// GetNEO returns the stored NEO with the given designation along with its
// approaches, or nil when absent.
func (s *Store) GetNEO(ctx context.Context, designation string) (*model.NearEarthObject, error) {
	var row neoRow
	err := s.bun.NewSelect().Model(&row).Where("designation = ?", designation).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load NEO %s: %w", designation, err)
	}
	neo := rowToNEO(row)

	var approachRows []approachRow
	if err := s.bun.NewSelect().Model(&approachRows).
		Where("designation = ?", designation).
		OrderExpr("approach_at ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load approaches of %s: %w", designation, err)
	}
	for _, r := range approachRows {
		ca := rowToApproach(r)
		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
	}
	return neo, nil
}

// Counts reports how many NEOs and approaches the stored snapshot holds.
func (s *Store) Counts(ctx context.Context) (neos, approaches int, err error) {
	neos, err = s.bun.NewSelect().Model((*neoRow)(nil)).Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count NEOs: %w", err)
	}
	approaches, err = s.bun.NewSelect().Model((*approachRow)(nil)).Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count approaches: %w", err)
	}
	return neos, approaches, nil
}
