package entity

import "strings"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme normalizes a stored preference; anything unknown is light.
func ParseTheme(value string) Theme {
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (that Theme) Toggle() Theme {
	if that == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Title returns the capitalized name, e.g. "Light".
func (that Theme) Title() string {
	name := string(ParseTheme(string(that)))
	return strings.ToUpper(name[:1]) + name[1:]
}
