// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package extract loads the two JPL dataset snapshots from disk: the NEO
// catalog as CSV (sbdb_query.api export) and the close approaches as JSON
// (cad.api export). Snapshots may be stored gzip- or zstd-compressed; the
// loaders pick the codec from the file extension.
package extract

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/veskari/neoscout/internal/model"
)

// neoColumns are the header names Neoscout needs from the NEO CSV. The
// export carries many more columns; extras are ignored.
var neoColumns = []string{"pdes", "name", "diameter", "pha"}

// cadFields are the field names Neoscout needs from the CAD JSON.
var cadFields = []string{"des", "cd", "dist", "v_rel"}

// openSnapshot opens path and wraps it in a decompressor when the extension
// says so. The returned closer releases both the file and the codec.
func openSnapshot(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, nil, fmt.Errorf("open gzip snapshot %s: %w", path, err)
		}
		return zr, func() error {
			_ = zr.Close()
			return f.Close()
		}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, nil, fmt.Errorf("open zstd snapshot %s: %w", path, err)
		}
		return zr, func() error {
			zr.Close()
			return f.Close()
		}, nil
	default:
		return f, f.Close, nil
	}
}

// LoadNEOs reads near-Earth objects from a CSV snapshot. Columns are located
// by header name so column order and extra columns don't matter.
func LoadNEOs(path string) ([]*model.NearEarthObject, error) {
	r, closeFn, err := openSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("load NEOs: %w", err)
	}
	defer func() { _ = closeFn() }()

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("load NEOs from %s: reading header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range neoColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("load NEOs from %s: missing column %q", path, col)
		}
	}

	var neos []*model.NearEarthObject
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("load NEOs from %s: line %d: %w", path, line, err)
		}
		neo, err := model.NewNearEarthObject(
			rec[idx["pdes"]], rec[idx["name"]], rec[idx["diameter"]], rec[idx["pha"]])
		if err != nil {
			return nil, fmt.Errorf("load NEOs from %s: line %d: %w", path, line, err)
		}
		neos = append(neos, neo)
	}
	return neos, nil
}

// cadDocument mirrors the CAD API response shape: a list of field names and
// rows of positional string values.
type cadDocument struct {
	Fields []string        `json:"fields"`
	Data   [][]*cadCell    `json:"data"`
	Count  json.RawMessage `json:"count"` // string in some API versions, int in others
}

// cadCell tolerates the CAD API emitting numbers either as JSON strings or
// as bare numbers depending on field and version.
type cadCell string

func (c *cadCell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = cadCell(s)
		return nil
	}
	*c = cadCell(string(b))
	return nil
}

// LoadApproaches reads close approaches from a CAD JSON snapshot, zipping
// the field-name list with each data row.
func LoadApproaches(path string) ([]*model.CloseApproach, error) {
	r, closeFn, err := openSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("load approaches: %w", err)
	}
	defer func() { _ = closeFn() }()

	var doc cadDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("load approaches from %s: %w", path, err)
	}

	idx := make(map[string]int, len(doc.Fields))
	for i, f := range doc.Fields {
		idx[f] = i
	}
	for _, f := range cadFields {
		if _, ok := idx[f]; !ok {
			return nil, fmt.Errorf("load approaches from %s: missing field %q", path, f)
		}
	}

	approaches := make([]*model.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) != len(doc.Fields) {
			return nil, fmt.Errorf("load approaches from %s: row %d has %d values, want %d",
				path, i, len(row), len(doc.Fields))
		}
		cell := func(name string) string {
			v := row[idx[name]]
			if v == nil {
				return ""
			}
			return string(*v)
		}
		ca, err := model.NewCloseApproach(cell("des"), cell("cd"), cell("dist"), cell("v_rel"))
		if err != nil {
			return nil, fmt.Errorf("load approaches from %s: row %d: %w", path, i, err)
		}
		approaches = append(approaches, ca)
	}
	return approaches, nil
}
