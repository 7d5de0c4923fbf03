// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"dario.cat/mergo"
	"github.com/toeirei/navui/internal/logging"
)

// withDefaults fills the zero fields of opts from defaults.
func withDefaults[T any](opts T, defaults T) T {
	if err := mergo.Merge(&opts, defaults); err != nil {
		logging.Warnf("overlay options merge failed, using defaults: %v", err)
		return defaults
	}
	return opts
}
