// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package exit

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	if got := Classify(nil, true); got != Continue {
		t.Fatalf("expected continue, got %s", got)
	}
	if got := Classify(nil, false); got != ExitSelf {
		t.Fatalf("expected exit-self, got %s", got)
	}
	if got := Classify(ErrExit, true); got != ExitAll {
		t.Fatalf("expected exit-all, got %s", got)
	}
	wrapped := fmt.Errorf("leaving settings: %w", ErrExit)
	if got := Classify(wrapped, false); got != ExitAll {
		t.Fatalf("wrapped exit should be recognized, got %s", got)
	}
}
