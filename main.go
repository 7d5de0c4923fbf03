// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for navui.
//
// Usage:
//
//	go run . [flags]
//	./navui demo --input.driver console
//
// Without a subcommand the demo application starts. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("navui: %v", err)
		os.Exit(1)
	}
}
