// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/navui/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestLoadConfig_DefaultsWithoutFile tests that defaults are parsed and the
// missing file is reported as ConfigFileNotFoundError
func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err == nil {
		t.Fatalf("expected ConfigFileNotFoundError, got nil")
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}

	if got.Display.Rows != 8 || got.Display.Cols != 21 {
		t.Fatalf("unexpected display defaults: %+v", got.Display)
	}
	if got.Element.Quantum != 100*time.Millisecond {
		t.Fatalf("expected 100ms quantum, got %v", got.Element.Quantum)
	}
	if got.Input.Driver != "tea" {
		t.Fatalf("expected tea driver, got %q", got.Input.Driver)
	}
	if got.Overlay.Duration != 20 {
		t.Fatalf("expected overlay duration 20, got %d", got.Overlay.Duration)
	}
}

// TestLoadConfig_EnvVarParsing tests that NAVUI_* environment variables are read correctly
func TestLoadConfig_EnvVarParsing(t *testing.T) {
	isolate(t)
	t.Setenv("NAVUI_DISPLAY_ROWS", "4")
	t.Setenv("NAVUI_LANGUAGE", "de")
	t.Setenv("NAVUI_ELEMENT_QUANTUM", "25ms")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)

	if got.Display.Rows != 4 {
		t.Fatalf("expected 4 rows from env, got %d", got.Display.Rows)
	}
	if got.Language != "de" {
		t.Fatalf("expected de from env, got %q", got.Language)
	}
	if got.Element.Quantum != 25*time.Millisecond {
		t.Fatalf("expected 25ms from env, got %v", got.Element.Quantum)
	}
}

// TestLoadConfig_FlagBindingOverridesEnv tests that CLI flags take precedence over environment variables
func TestLoadConfig_FlagBindingOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NAVUI_LANGUAGE", "fr")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "language")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "de" {
		t.Fatalf("expected de from flag (not fr from env), got %q", got.Language)
	}
}

// TestLoadConfig_ExplicitFile tests that an explicit file path is read
func TestLoadConfig_ExplicitFile(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "custom.yaml")
	data := "display:\n  rows: 2\n  cols: 16\nscroll:\n  disabled: true\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Display.Rows != 2 || got.Display.Cols != 16 {
		t.Fatalf("unexpected display from file: %+v", got.Display)
	}
	if !got.Scroll.Disabled {
		t.Fatalf("expected scrolling disabled from file")
	}
	if got.Scroll.Speed != 2 {
		t.Fatalf("expected default scroll speed to survive, got %d", got.Scroll.Speed)
	}
}

// TestLoadConfig_ErrorDiagnostics tests that malformed files are fatal
func TestLoadConfig_ErrorDiagnostics(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(file, []byte("display:\n  rows: \"8\n  cols: 21\n"), 0o600); err != nil {
		t.Fatalf("write invalid file: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err == nil {
		t.Fatalf("expected parse error for invalid YAML, got nil")
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		t.Fatalf("parse error must not be reported as file not found")
	}
}

func TestDump_RendersYAML(t *testing.T) {
	c := cfg.Config{Language: "en"}
	c.Display.Rows = 8
	c.Input.Driver = "console"

	out, err := cfg.Dump(&c)
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	for _, want := range []string{"language: en", "rows: 8", "driver: console"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dump, got:\n%s", want, out)
		}
	}
}

func TestGetConfigPath_System(t *testing.T) {
	prev := cfg.RuntimeOS
	defer func() { cfg.RuntimeOS = prev }()

	cfg.RuntimeOS = "linux"
	path, err := cfg.GetConfigPath(true)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != "/etc/navui/navui.yaml" {
		t.Fatalf("unexpected system path %q", path)
	}
}
