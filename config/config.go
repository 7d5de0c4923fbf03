// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RuntimeOS is runtime.GOOS, overridable in tests.
var RuntimeOS = runtime.GOOS

// Config is the effective navui configuration.
type Config struct {
	Language string        `mapstructure:"language" yaml:"language"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Display  DisplayConfig `mapstructure:"display" yaml:"display"`
	Input    InputConfig   `mapstructure:"input" yaml:"input"`
	Element  ElementConfig `mapstructure:"element" yaml:"element"`
	Scroll   ScrollConfig  `mapstructure:"scroll" yaml:"scroll"`
	Overlay  OverlayConfig `mapstructure:"overlay" yaml:"overlay"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while a full-screen driver owns the terminal.
	File string `mapstructure:"file" yaml:"file"`
}

type DisplayConfig struct {
	Rows int `mapstructure:"rows" yaml:"rows"`
	Cols int `mapstructure:"cols" yaml:"cols"`
}

type InputConfig struct {
	// Driver is "tea" (full screen) or "console" (raw keyboard + line output).
	Driver string `mapstructure:"driver" yaml:"driver"`
	Buffer int    `mapstructure:"buffer" yaml:"buffer"`
}

type ElementConfig struct {
	Quantum     time.Duration `mapstructure:"quantum" yaml:"quantum"`
	EntryHeight int           `mapstructure:"entry_height" yaml:"entry_height"`
}

type ScrollConfig struct {
	Disabled   bool `mapstructure:"disabled" yaml:"disabled"`
	Speed      int  `mapstructure:"speed" yaml:"speed"`
	PauseStart int  `mapstructure:"pause_start" yaml:"pause_start"`
	PauseEnd   int  `mapstructure:"pause_end" yaml:"pause_end"`
}

type OverlayConfig struct {
	// Duration is counted in idle-loop iterations.
	Duration int `mapstructure:"duration" yaml:"duration"`
}

// Defaults returns the default key/value map used by LoadConfig callers.
func Defaults() map[string]any {
	return map[string]any{
		"language":             "en",
		"log.level":            "info",
		"log.file":             "",
		"display.rows":         8,
		"display.cols":         21,
		"input.driver":         "tea",
		"input.buffer":         32,
		"element.quantum":      "100ms",
		"element.entry_height": 1,
		"scroll.disabled":      false,
		"scroll.speed":         2,
		"scroll.pause_start":   10,
		"scroll.pause_end":     10,
		"overlay.duration":     20,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Navui")
		default: // Linux, macOS, etc.
			configDir = "/etc/navui"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "navui")
	}

	return filepath.Join(configDir, "navui.yaml"), nil
}

// GetConfigPath exposes the user (or system) config file location.
func GetConfigPath(system bool) (string, error) {
	return getConfigPath(system)
}

// LoadConfig resolves T from defaults, the navui.yaml file, NAVUI_* environment
// variables and the flags of cmd, in increasing order of precedence.
// When no config file exists the parsed value is returned together with a
// viper.ConfigFileNotFoundError so callers can tell first runs apart.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("navui")
	v.SetConfigType("yaml")

	// 3. Explicit config file path has the highest precedence for file-based configuration.
	if additional_config_file_path != nil && *additional_config_file_path != "" {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file. A missing file is reported after parsing.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// 6. Environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("navui")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. cli
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// Dump renders c as YAML.
func Dump[T any](c *T) (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("could not render config: %w", err)
	}
	return string(data), nil
}
