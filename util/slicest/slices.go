// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers.
//
// Suffixes follow one scheme: X propagates callback errors, I passes the
// index to the callback.
package slicest

// Map

// MapXI maps slice S to []U, stopping at the first callback error.
func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter

// Filter returns the elements of s for which keep is true, in order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
