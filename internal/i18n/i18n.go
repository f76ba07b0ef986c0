// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization support for Neoscout. It uses
// the go-i18n library to load embedded YAML translation files, allowing the
// CLI and TUI to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files into the binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads the embedded locales and activates the given language.
func Init(langCode string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	lang = langCode
	localizer = i18n.NewLocalizer(bundle, langCode)
}

// T translates a message by its ID. Extra args are applied fmt-style to the
// localized template. Unknown IDs fall back to the ID itself so a missing
// translation never breaks the UI.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}

// SetLang changes the active language.
func SetLang(langCode string) {
	Init(langCode)
}

// AvailableLocales maps locale codes to their display names.
func AvailableLocales() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}
