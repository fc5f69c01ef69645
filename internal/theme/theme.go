package theme

import (
	"fmt"
	"strings"
)

// Theme selects a palette and an asset directory
type Theme int

const (
	Light Theme = iota
	Dark
)

// String returns the theme name, which is also its asset directory name
func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	default:
		return "light"
	}
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme converts a configured name into a Theme
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", name)
	}
}

// All lists every theme in a stable order
func All() []Theme {
	return []Theme{Light, Dark}
}
