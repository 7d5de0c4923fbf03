// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below for formatted messages and L directly for key/value records.
var L = clog.New(os.Stderr)

// Setup replaces L with a logger writing to w at the named level.
// Unknown level names fall back to info.
func Setup(level string, w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = clog.InfoLevel
	}
	L = clog.NewWithOptions(w, clog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "navui",
	})
}

// With returns a child logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *clog.Logger {
	return L.With(keyvals...)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
