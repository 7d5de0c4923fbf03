// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the navui command-line interface using Cobra.
// It loads configuration, sets up logging and translations, and starts the
// demo application on one of the input/output drivers. CLI code stays thin:
// the element tree lives in internal/demo and the drivers in ui/tui and
// ui/output.
package cli
