// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetup_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()

	Setup("warn", &buf)
	Infof("quiet")
	Warnf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered at warn level; got: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("missing warn output; got: %s", out)
	}
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()

	Setup("chatty", &buf)
	if L.GetLevel() != clog.InfoLevel {
		t.Fatalf("expected info level, got %v", L.GetLevel())
	}
	With("element", "main").Info("activated")
	if !strings.Contains(buf.String(), "element=main") {
		t.Fatalf("expected key/value pair in output; got: %s", buf.String())
	}
}
