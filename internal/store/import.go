// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"fmt"

	"github.com/veskari/neoscout/internal/model"
)

// insertChunkSize keeps bulk inserts below driver placeholder limits.
const insertChunkSize = 500

// ImportStats summarizes a snapshot import.
type ImportStats struct {
	NEOs       int
	Approaches int
}

// ImportDataset replaces the stored snapshot with the given collections in
// a single transaction. A failed import leaves the previous snapshot intact.
func (s *Store) ImportDataset(ctx context.Context, neos []*model.NearEarthObject, approaches []*model.CloseApproach) (ImportStats, error) {
	var stats ImportStats

	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Wipe the previous snapshot; approaches first for the FK.
	if _, err := tx.NewDelete().Model((*approachRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return stats, fmt.Errorf("failed to clear approaches: %w", err)
	}
	if _, err := tx.NewDelete().Model((*neoRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return stats, fmt.Errorf("failed to clear neos: %w", err)
	}

	neoRows := make([]neoRow, 0, len(neos))
	for _, n := range neos {
		neoRows = append(neoRows, neoToRow(n))
	}
	for start := 0; start < len(neoRows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(neoRows))
		chunk := neoRows[start:end]
		if _, err := tx.NewInsert().Model(&chunk).Exec(ctx); err != nil {
			return stats, fmt.Errorf("failed to insert NEOs: %w", MapDBError(err))
		}
	}
	stats.NEOs = len(neoRows)

	// Only approaches that link to a stored NEO are importable; the FK
	// would reject the rest anyway.
	known := make(map[string]bool, len(neos))
	for _, n := range neos {
		known[n.Designation] = true
	}
	approachRows := make([]approachRow, 0, len(approaches))
	for _, ca := range approaches {
		if !known[ca.Designation] {
			continue
		}
		approachRows = append(approachRows, approachToRow(ca))
	}
	for start := 0; start < len(approachRows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(approachRows))
		chunk := approachRows[start:end]
		if _, err := tx.NewInsert().Model(&chunk).Exec(ctx); err != nil {
			return stats, fmt.Errorf("failed to insert approaches: %w", MapDBError(err))
		}
	}
	stats.Approaches = len(approachRows)

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit import: %w", err)
	}
	return stats, nil
}
