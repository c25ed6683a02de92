package dataset

import (
	"path"
	"strings"
)

// Category names one kind of reference list.
type Category string

const (
	Cities           Category = "cities"
	States           Category = "states"
	TeamNames        Category = "team_names"
	FirstNames       Category = "first_names"
	LastNames        Category = "last_names"
	LeaguesDivisions Category = "leagues_divisions"
)

const (
	// GeographyDir holds the per-locale files.
	GeographyDir = "geography"
	// LocaleKeyFile maps locale codes to English names.
	LocaleKeyFile = GeographyDir + "/_ABBR_KEY"

	statesSuffix = "_states.txt"
	textSuffix   = ".txt"
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{Cities, States, TeamNames, FirstNames, LastNames, LeaguesDivisions}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case Cities, States, TeamNames, FirstNames, LastNames, LeaguesDivisions:
		return true
	}
	return false
}

// Localized reports whether the category has one file per locale.
func (c Category) Localized() bool {
	return c == Cities || c == States
}

// Path returns the file holding the category for locale.
// Locale is ignored for categories that are not localized.
func (c Category) Path(locale string) string {
	switch c {
	case Cities:
		return path.Join(GeographyDir, locale+textSuffix)
	case States:
		return path.Join(GeographyDir, locale+statesSuffix)
	default:
		return string(c) + textSuffix
	}
}

// localeFromFile extracts the locale code from a geography file name, or
// returns false when the file does not belong to the category.
func (c Category) localeFromFile(name string) (string, bool) {
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return "", false
	}
	switch c {
	case States:
		code, ok := strings.CutSuffix(name, statesSuffix)
		return code, ok && code != ""
	case Cities:
		if strings.HasSuffix(name, statesSuffix) {
			return "", false
		}
		code, ok := strings.CutSuffix(name, textSuffix)
		return code, ok && code != ""
	}
	return "", false
}

// NormalizeLocale trims and lower-cases a locale code.
func NormalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
