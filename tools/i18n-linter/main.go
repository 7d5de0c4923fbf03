// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files against the message IDs used
// in the Go sources. It reports IDs used in code but absent from the primary
// locale, IDs missing from secondary locales, and locale entries nothing
// uses. Only the first two fail the run.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

// Location stores the file and line number of a found message ID.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run. All key lists are sorted.
type Report struct {
	Used      map[string][]Location
	Undefined []string
	Missing   map[string][]string // locale file -> keys
	Orphaned  []string
}

// Failed reports whether the run found errors rather than warnings.
func (r *Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

var skipDirs = map[string]bool{"tools": true, "_examples": true, "testdata": true, ".git": true}

var callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	r, err := lint(root)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	render(os.Stdout, r)
	if r.Failed() {
		os.Exit(1)
	}
}

func lint(root string) (*Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return nil, fmt.Errorf("scanning sources: %w", err)
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("loading primary locale: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	r := &Report{Used: used, Missing: map[string][]string{}}
	for key := range used {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[name] = missing
	}
	return r, nil
}

func render(w io.Writer, r *Report) {
	bad := color.New(color.FgRed)
	warn := color.New(color.FgYellow)
	good := color.New(color.FgGreen)

	fmt.Fprintf(w, "%d message IDs used in source code\n", len(r.Used))
	for _, key := range r.Undefined {
		loc := r.Used[key][0]
		bad.Fprintf(w, "  undefined: %s (%s:%d)\n", key, loc.Filepath, loc.Line)
	}

	locales := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		locales = append(locales, name)
	}
	sort.Strings(locales)
	for _, name := range locales {
		for _, key := range r.Missing[name] {
			bad.Fprintf(w, "  missing in %s: %s\n", name, key)
		}
	}
	for _, key := range r.Orphaned {
		warn.Fprintf(w, "  orphaned: %s\n", key)
	}

	switch {
	case r.Failed():
		bad.Fprintln(w, "translation files need attention")
	case len(r.Orphaned) > 0:
		warn.Fprintln(w, "consider removing orphaned keys")
	default:
		good.Fprintln(w, "all translation files are consistent")
	}
}

// findUsedKeys scans non-test .go files for i18n.T("id") calls.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range callRe.FindAllStringSubmatch(line, -1) {
				keys[m[1]] = append(keys[m[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Flat files
// with dotted IDs come out unchanged.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
