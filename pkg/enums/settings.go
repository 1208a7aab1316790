package enums

import "fmt"

// Theme is the persisted color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var validThemes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Theme.
func (t Theme) IsValid() bool {
	for _, candidate := range validThemes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTheme converts raw input into a Theme.
func ParseTheme(value string) (Theme, error) {
	for _, candidate := range validThemes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid theme %q", value)
}

// Lang is a UI language with a static string table.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
)

// String implements fmt.Stringer.
func (l Lang) String() string {
	return string(l)
}

// IsValid reports whether the value is a supported Lang.
func (l Lang) IsValid() bool {
	return l == LangEN || l == LangRU
}

// Other returns the language the toggle switches to.
func (l Lang) Other() Lang {
	if l == LangEN {
		return LangRU
	}
	return LangEN
}
