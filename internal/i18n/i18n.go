// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localization for the labels the framework renders on
// its own: exit and accept entries, overlay badges and the demo application.
// It uses the go-i18n library with YAML translation files embedded into the
// binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	locales   []string
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(l string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	var found []string
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		found = append(found, strings.TrimSuffix(f.Name(), ".yaml"))
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l)
	lang = l
	locales = found
}

// T translates a message by its ID. Extra arguments are applied with
// fmt.Sprintf to the translated text. If the i18n system has not been
// initialized, it defaults to English; unknown IDs are returned as-is.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init("en")
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// Locales lists the embedded locale file names without extension.
func Locales() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), locales...)
}
