// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package neodb holds the interconnected in-memory dataset of near-Earth
// objects and close approaches. Building a Database links every approach to
// its NEO by primary designation and maintains lookup indexes by designation
// and by IAU name.
package neodb

import (
	"github.com/veskari/neoscout/internal/filter"
	"github.com/veskari/neoscout/internal/logging"
	"github.com/veskari/neoscout/internal/model"
)

// Database is the joined view over the two JPL datasets.
type Database struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject

	// skipped counts approaches whose designation had no matching NEO.
	skipped int
}

// New builds a Database from the extracted collections. Approaches whose
// designation is unknown in the NEO set are dropped with a warning; the
// published CAD snapshots occasionally carry objects missing from a filtered
// SBDB export, and a partial join beats a crash.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject),
	}
	for _, neo := range neos {
		db.byDesignation[neo.Designation] = neo
		if neo.Name != "" {
			db.byName[neo.Name] = neo
		}
	}

	db.approaches = make([]*model.CloseApproach, 0, len(approaches))
	for _, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation]
		if !ok {
			db.skipped++
			continue
		}
		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
		db.approaches = append(db.approaches, ca)
	}
	if db.skipped > 0 {
		logging.Warnf("neodb: dropped %d close approaches with unknown designations", db.skipped)
	}
	return db
}

// NEOByDesignation returns the NEO with the given primary designation.
// Matching is exact (spelling and capitalization); nil when absent.
func (db *Database) NEOByDesignation(designation string) *model.NearEarthObject {
	if designation == "" {
		return nil
	}
	return db.byDesignation[designation]
}

// NEOByName returns the NEO with the given IAU name. Not every NEO has a
// name; the empty string never matches.
func (db *Database) NEOByName(name string) *model.NearEarthObject {
	if name == "" {
		return nil
	}
	return db.byName[name]
}

// NEOCount returns the number of cataloged NEOs.
func (db *Database) NEOCount() int {
	return len(db.neos)
}

// ApproachCount returns the number of linked close approaches.
func (db *Database) ApproachCount() int {
	return len(db.approaches)
}

// SkippedCount returns the number of approaches dropped during linking.
func (db *Database) SkippedCount() int {
	return db.skipped
}

// NEOs returns the cataloged NEOs in load order.
func (db *Database) NEOs() []*model.NearEarthObject {
	return db.neos
}

// Query returns the close approaches matching every filter, in load order.
// No filters means every linked approach.
func (db *Database) Query(filters ...filter.Filter) []*model.CloseApproach {
	if len(filters) == 0 {
		out := make([]*model.CloseApproach, len(db.approaches))
		copy(out, db.approaches)
		return out
	}
	var out []*model.CloseApproach
	for _, ca := range db.approaches {
		if filter.MatchesAll(ca, filters) {
			out = append(out, ca)
		}
	}
	return out
}

// Limit caps a result set at n entries. n <= 0 means no limit.
func Limit(results []*model.CloseApproach, n int) []*model.CloseApproach {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
