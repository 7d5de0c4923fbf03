// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the flags shared by every subcommand
// and the configuration/logging/i18n bootstrap that runs before them.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/navui/config"
	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/internal/logging"
)

var appConfig config.Config

// logFile is the open log.file target, closed by Execute.
var logFile io.Closer

// setupDefaultServices loads the configuration for cmd and initializes
// logging and translations from it.
func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	notFound := errors.As(err, &viper.ConfigFileNotFoundError{})
	if err != nil && !notFound {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a config file fall back to the defaults.
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Input.Driver == "" {
		appConfig.Input.Driver = defaults["input.driver"].(string)
	}
	if appConfig.Display.Rows <= 0 {
		appConfig.Display.Rows = defaults["display.rows"].(int)
	}
	if appConfig.Display.Cols <= 0 {
		appConfig.Display.Cols = defaults["display.cols"].(int)
	}

	if err := setupLogging(appConfig.Log); err != nil {
		return err
	}
	if notFound {
		logging.L.Debug("no config file found, running on defaults")
	}

	i18n.Init(appConfig.Language)
	logging.L.Debug("configuration loaded", "language", appConfig.Language, "driver", appConfig.Input.Driver)
	return nil
}

func setupLogging(c config.LogConfig) error {
	closeLog()
	if c.File == "" {
		logging.Setup(c.Level, os.Stderr)
		return nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	logFile = f
	logging.Setup(c.Level, f)
	return nil
}

func closeLog() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "could not close log file: %v\n", err)
	}
	logFile = nil
	logging.L.SetOutput(os.Stderr)
}

// applyDefaultFlags registers one flag per configuration key. The flag names
// match the keys so viper can bind them directly.
func applyDefaultFlags(cmd *cobra.Command) {
	d := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String("language", d["language"].(string), `UI language ("en", "de")`)
	flags.String("log.level", d["log.level"].(string), "log level (debug, info, warn, error)")
	flags.String("log.file", d["log.file"].(string), "write logs to this file instead of stderr")
	flags.Int("display.rows", d["display.rows"].(int), "display height in rows")
	flags.Int("display.cols", d["display.cols"].(int), "display width in columns")
	flags.String("input.driver", d["input.driver"].(string), `input/output driver ("tea", "console")`)
	flags.Int("input.buffer", d["input.buffer"].(int), "key event queue size")
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd builds a fresh command tree. Tests call it once per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navui",
		Short: "navui drives list-based menus on small displays.",
		Long: `navui is a navigation framework for tiny character displays driven by a
handful of keys. Menus, list boxes, checkboxes and grids are stacked
on top of each other and overlays add help badges, function key labels,
number shortcuts and spinners.

Running without a subcommand starts the demo application.`,
		PersistentPreRunE: setupDefaultServices,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, appConfig)
		},
	}
	cmd.Version = compositeVersion()
	applyDefaultFlags(cmd)

	cmd.AddCommand(newDemoCmd(), newConfigCmd(), newVersionCmd())
	return cmd
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer closeLog()
	return NewRootCmd().Execute()
}

func newConfigCmd() *cobra.Command {
	var showPath bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path, err := config.GetConfigPath(false)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
			out, err := config.Dump(&appConfig)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), strings.TrimRight(out, "\n")+"\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPath, "path", false, "print the user config file location instead")
	return cmd
}
