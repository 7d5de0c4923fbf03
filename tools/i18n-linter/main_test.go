// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]interface{}{
		"top":      map[string]interface{}{"sub": "value"},
		"flat.key": "v",
	}, keys)
	for _, want := range []string{"top.sub", "flat.key"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ui", "a.go"), `package ui

func f() {
	_ = i18n.T("element.back")
	_ = i18n.T("demo.result", 3)
	_ = i18n.T("nowhere.defined")
}`)
	// test files and tools are not scanned
	writeFile(t, filepath.Join(root, "ui", "a_test.go"), `_ = i18n.T("only.in_test")`)
	writeFile(t, filepath.Join(root, "tools", "x", "main.go"), `_ = i18n.T("only.in_tools")`)
	writeFile(t, filepath.Join(root, localesDir, "en.yaml"), "element.back: Back\ndemo.result: \"Result: %v\"\nstale.key: Old\n")
	writeFile(t, filepath.Join(root, localesDir, "de.yaml"), "element.back: Zurück\nstale.key: Alt\n")

	r, err := lint(root)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(r.Used) != 3 {
		t.Fatalf("expected 3 used IDs, got %v", r.Used)
	}
	if got := strings.Join(r.Undefined, ","); got != "nowhere.defined" {
		t.Fatalf("undefined = %q", got)
	}
	if got := strings.Join(r.Missing["de.yaml"], ","); got != "demo.result" {
		t.Fatalf("missing in de = %q", got)
	}
	if got := strings.Join(r.Orphaned, ","); got != "stale.key" {
		t.Fatalf("orphaned = %q", got)
	}
	if !r.Failed() {
		t.Fatalf("expected failure")
	}
	if loc := r.Used["nowhere.defined"][0]; loc.Line != 6 {
		t.Fatalf("expected line 6, got %d", loc.Line)
	}

	color.NoColor = true
	var buf bytes.Buffer
	render(&buf, r)
	for _, want := range []string{"undefined: nowhere.defined", "missing in de.yaml: demo.result", "orphaned: stale.key"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in output:\n%s", want, buf.String())
		}
	}
}

func TestLint_Consistent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), `package a; var _ = i18n.T("element.back")`)
	writeFile(t, filepath.Join(root, localesDir, "en.yaml"), "element.back: Back\n")
	writeFile(t, filepath.Join(root, localesDir, "de.yaml"), "element.back: Zurück\n")

	r, err := lint(root)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.Failed() || len(r.Orphaned) != 0 {
		t.Fatalf("expected clean report, got %+v", r)
	}
}

func TestLint_RepositoryLocales(t *testing.T) {
	r, err := lint(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.Failed() {
		var buf bytes.Buffer
		color.NoColor = true
		render(&buf, r)
		t.Fatalf("repository locales are inconsistent:\n%s", buf.String())
	}
}
