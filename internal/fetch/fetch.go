// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fetch downloads fresh dataset snapshots from the JPL SSD APIs:
// the Small-Body Database query API for the NEO catalog and the Close
// Approach Data API for approach events. Downloads retry with backoff and
// honor context cancellation.
package fetch

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/veskari/neoscout/internal/logging"
)

// Default API endpoints. Overridable for tests.
const (
	DefaultSBDBURL = "https://ssd-api.jpl.nasa.gov/sbdb_query.api"
	DefaultCADURL  = "https://ssd-api.jpl.nasa.gov/cad.api"
)

// neoCSVHeader is the snapshot header extract.LoadNEOs expects.
var neoCSVHeader = []string{"pdes", "name", "diameter", "pha"}

// Client talks to the JPL SSD APIs.
type Client struct {
	http    *retryablehttp.Client
	SBDBURL string
	CADURL  string
}

// New returns a Client with retry/backoff defaults and debug response
// logging wired to the application logger.
func New() *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 2 * time.Minute
	rc.Logger = nil // quiet; the response hook logs what matters
	rc.ResponseLogHook = func(_ retryablehttp.Logger, r *http.Response) {
		if r.StatusCode >= 400 {
			logging.Warnf("fetch: %s %s -> %s", r.Request.Method, r.Request.URL, r.Status)
			return
		}
		logging.Debugf("fetch: %s %s -> %s", r.Request.Method, r.Request.URL, r.Status)
	}
	return &Client{http: rc, SBDBURL: DefaultSBDBURL, CADURL: DefaultCADURL}
}

// HTTPClient exposes the underlying client for test interception.
func (c *Client) HTTPClient() *http.Client {
	return c.http.HTTPClient
}

// get issues a GET and fails on non-200 responses.
func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status)
	}
	return resp, nil
}

// createSnapshot opens path for writing, wrapping it in a compressor when
// the extension says so.
func createSnapshot(path string) (io.Writer, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(f)
		return zw, func() error {
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		return zw, func() error {
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}, nil
	default:
		return f, f.Close, nil
	}
}

// sbdbResponse is the positional shape of the SBDB query API response.
type sbdbResponse struct {
	Fields []string    `json:"fields"`
	Data   [][]*string `json:"data"`
}

// DownloadNEOs fetches the NEO catalog from the SBDB query API and writes it
// as a CSV snapshot at path. Returns the number of objects written.
func (c *Client) DownloadNEOs(ctx context.Context, path string) (int, error) {
	q := url.Values{}
	q.Set("fields", strings.Join(neoCSVHeader, ","))
	q.Set("sb-group", "neo")

	resp, err := c.get(ctx, c.SBDBURL+"?"+q.Encode())
	if err != nil {
		return 0, fmt.Errorf("downloading NEO catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var doc sbdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decoding SBDB response: %w", err)
	}
	idx := make(map[string]int, len(doc.Fields))
	for i, f := range doc.Fields {
		idx[f] = i
	}
	for _, f := range neoCSVHeader {
		if _, ok := idx[f]; !ok {
			return 0, fmt.Errorf("SBDB response missing field %q", f)
		}
	}

	w, closeFn, err := createSnapshot(path)
	if err != nil {
		return 0, fmt.Errorf("creating NEO snapshot: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(neoCSVHeader); err != nil {
		_ = closeFn()
		return 0, fmt.Errorf("writing NEO snapshot: %w", err)
	}
	row := make([]string, len(neoCSVHeader))
	for _, rec := range doc.Data {
		if len(rec) != len(doc.Fields) {
			_ = closeFn()
			return 0, fmt.Errorf("SBDB row has %d values, want %d", len(rec), len(doc.Fields))
		}
		for i, f := range neoCSVHeader {
			cell := rec[idx[f]]
			if cell == nil {
				row[i] = ""
			} else {
				row[i] = *cell
			}
		}
		if err := cw.Write(row); err != nil {
			_ = closeFn()
			return 0, fmt.Errorf("writing NEO snapshot: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = closeFn()
		return 0, fmt.Errorf("writing NEO snapshot: %w", err)
	}
	if err := closeFn(); err != nil {
		return 0, fmt.Errorf("closing NEO snapshot: %w", err)
	}
	logging.Infof("fetch: wrote %d NEOs to %s", len(doc.Data), path)
	return len(doc.Data), nil
}

// ApproachOptions narrows the CAD API request. Dates are "YYYY-MM-DD";
// empty fields use the API defaults.
type ApproachOptions struct {
	DateMin string
	DateMax string
	DistMax string // au
}

// DownloadApproaches fetches close approaches from the CAD API and writes
// the raw JSON snapshot at path. Returns the number of events reported.
func (c *Client) DownloadApproaches(ctx context.Context, path string, opts ApproachOptions) (int, error) {
	q := url.Values{}
	if opts.DateMin != "" {
		q.Set("date-min", opts.DateMin)
	}
	if opts.DateMax != "" {
		q.Set("date-max", opts.DateMax)
	}
	if opts.DistMax != "" {
		q.Set("dist-max", opts.DistMax)
	}

	rawURL := c.CADURL
	if enc := q.Encode(); enc != "" {
		rawURL += "?" + enc
	}
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return 0, fmt.Errorf("downloading close approaches: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading CAD response: %w", err)
	}
	// Validate the shape before persisting it; a truncated download is
	// worth catching here rather than on the next query.
	var doc struct {
		Fields []string        `json:"fields"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("decoding CAD response: %w", err)
	}
	var data []json.RawMessage
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, &data); err != nil {
			return 0, fmt.Errorf("decoding CAD data rows: %w", err)
		}
	}

	w, closeFn, err := createSnapshot(path)
	if err != nil {
		return 0, fmt.Errorf("creating CAD snapshot: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		_ = closeFn()
		return 0, fmt.Errorf("writing CAD snapshot: %w", err)
	}
	if err := closeFn(); err != nil {
		return 0, fmt.Errorf("closing CAD snapshot: %w", err)
	}
	logging.Infof("fetch: wrote %d close approaches to %s", len(data), path)
	return len(data), nil
}
