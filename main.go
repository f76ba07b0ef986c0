// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Neoscout.
//
// Usage:
//
//	go run . [flags]
//	./neoscout [flags]
//
// This launches the Neoscout CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/veskari/neoscout/internal/cli"
)

// main is the entrypoint for the Neoscout CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Neoscout CLI error: %v", err)
		os.Exit(1)
	}
}
