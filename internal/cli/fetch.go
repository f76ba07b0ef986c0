// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/veskari/neoscout/internal/fetch"
	"github.com/veskari/neoscout/internal/i18n"
)

// newFetchClient allows tests to inject an intercepted client.
var newFetchClient = fetch.New

// newFetchCmd creates the 'fetch' command. It downloads fresh dataset
// snapshots from the JPL SSD APIs, both in parallel.
func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download fresh dataset snapshots from JPL",
		Long: `Download the NEO catalog and the close approach dataset from the
JPL SSD APIs and write them to the configured snapshot paths. Both
downloads run in parallel.`,
		Args: cobra.NoArgs,
		RunE: runFetch,
	}

	cmd.Flags().String("start", "", "earliest close approach date to fetch (YYYY-MM-DD)")
	cmd.Flags().String("stop", "", "latest close approach date to fetch (YYYY-MM-DD)")
	cmd.Flags().String("dist-max", "", "maximum approach distance to fetch, in au")
	cmd.Flags().String("compress", "", `compress snapshots ("gzip" or "zstd")`)

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	compress, _ := cmd.Flags().GetString("compress")
	neoPath, err := compressedPath(cfg.Dataset.NEOPath, compress)
	if err != nil {
		return err
	}
	cadPath, err := compressedPath(cfg.Dataset.CADPath, compress)
	if err != nil {
		return err
	}

	opts := fetch.ApproachOptions{}
	opts.DateMin, _ = cmd.Flags().GetString("start")
	opts.DateMax, _ = cmd.Flags().GetString("stop")
	opts.DistMax, _ = cmd.Flags().GetString("dist-max")

	client := newFetchClient()
	var neoCount, approachCount int

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		n, err := client.DownloadNEOs(ctx, neoPath)
		neoCount = n
		return err
	})
	g.Go(func() error {
		n, err := client.DownloadApproaches(ctx, cadPath, opts)
		approachCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Name the effective paths: with --compress they differ from the
	// configured ones, and later reads need to know where to look.
	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.fetch.done", neoCount, neoPath, approachCount, cadPath))
	return nil
}

// compressedPath appends the compressor's extension to a snapshot path,
// unless the path already carries it.
func compressedPath(path, compress string) (string, error) {
	switch compress {
	case "":
		return path, nil
	case "gzip":
		if strings.HasSuffix(path, ".gz") {
			return path, nil
		}
		return path + ".gz", nil
	case "zstd":
		if strings.HasSuffix(path, ".zst") {
			return path, nil
		}
		return path + ".zst", nil
	default:
		return "", fmt.Errorf("unknown compression %q (expected \"gzip\" or \"zstd\")", compress)
	}
}
