// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"strings"
	"testing"
)

func TestT_English(t *testing.T) {
	Init("en")
	if got := T("tui.yes"); got != "yes" {
		t.Errorf("T(tui.yes) = %q, want yes", got)
	}
	if got := T("tui.dashboard.neo_count", 23967); got != "Objects in catalog: 23967" {
		t.Errorf("T with args = %q", got)
	}
}

func TestT_German(t *testing.T) {
	Init("de")
	defer Init("en")
	if got := T("tui.yes"); got != "ja" {
		t.Errorf("T(tui.yes) in de = %q, want ja", got)
	}
	if got := T("cli.maintain.done"); !strings.Contains(got, "Datenbankwartung") {
		t.Errorf("T(cli.maintain.done) in de = %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Errorf("unknown ID should fall back to the ID, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("fr")
	defer Init("en")
	if got := T("tui.no"); got != "no" {
		t.Errorf("T(tui.no) with unsupported language = %q, want no", got)
	}
}

func TestSetLang(t *testing.T) {
	Init("en")
	SetLang("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Errorf("GetLang = %q, want de", GetLang())
	}
	if got := T("tui.no"); got != "nein" {
		t.Errorf("after SetLang(de), T(tui.no) = %q", got)
	}
}

func TestAvailableLocales(t *testing.T) {
	locales := AvailableLocales()
	if locales["en"] != "English" {
		t.Errorf("en display name = %q", locales["en"])
	}
	if locales["de"] != "Deutsch" {
		t.Errorf("de display name = %q", locales["de"])
	}
}
