// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config provides configuration loading for navui. It uses Viper for
// file/env/flag parsing and renders the effective configuration as YAML.
// Nothing in this package writes configuration back to disk.
package config
