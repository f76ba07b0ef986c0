// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"database/sql"
	"math"
	"time"

	"github.com/uptrace/bun"

	"github.com/veskari/neoscout/internal/model"
)

// neoRow maps the `neos` table for bun queries.
type neoRow struct {
	bun.BaseModel `bun:"table:neos,alias:n"`
	Designation   string          `bun:"designation,pk"`
	Name          string          `bun:"name"`
	DiameterKm    sql.NullFloat64 `bun:"diameter_km"`
	Hazardous     bool            `bun:"hazardous"`
}

// approachRow maps the `approaches` table for bun queries.
type approachRow struct {
	bun.BaseModel `bun:"table:approaches,alias:a"`
	ID            int64           `bun:"id,pk,autoincrement"`
	Designation   string          `bun:"designation"`
	ApproachAt    time.Time       `bun:"approach_at"`
	DistanceAu    sql.NullFloat64 `bun:"distance_au"`
	VelocityKmS   sql.NullFloat64 `bun:"velocity_km_s"`
}

// nullFloat converts an optional column back to the model's NaN convention.
func nullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// floatColumn converts a possibly-NaN model value to a nullable column.
func floatColumn(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func neoToRow(n *model.NearEarthObject) neoRow {
	return neoRow{
		Designation: n.Designation,
		Name:        n.Name,
		DiameterKm:  floatColumn(n.Diameter),
		Hazardous:   n.Hazardous,
	}
}

func rowToNEO(r neoRow) *model.NearEarthObject {
	return &model.NearEarthObject{
		Designation: r.Designation,
		Name:        r.Name,
		Diameter:    nullFloat(r.DiameterKm),
		Hazardous:   r.Hazardous,
	}
}

func approachToRow(ca *model.CloseApproach) approachRow {
	return approachRow{
		Designation: ca.Designation,
		ApproachAt:  ca.Time.UTC(),
		DistanceAu:  floatColumn(ca.Distance),
		VelocityKmS: floatColumn(ca.Velocity),
	}
}

func rowToApproach(r approachRow) *model.CloseApproach {
	return &model.CloseApproach{
		Designation: r.Designation,
		Time:        r.ApproachAt.UTC(),
		Distance:    nullFloat(r.DistanceAu),
		Velocity:    nullFloat(r.VelocityKmS),
	}
}
