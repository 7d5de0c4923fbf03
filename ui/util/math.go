// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}

// CeilDiv returns a/b rounded up. b must be positive.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
