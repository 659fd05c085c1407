package config

import (
	"fmt"
	"strings"
)

// Color theme of presentation.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

var themeNames = []string{"dark", "light"}

func (t Theme) String() string {
	if t >= 0 && int(t) < len(themeNames) {
		return themeNames[t]
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// IsValid reports whether t is one of the defined themes.
func (t Theme) IsValid() bool {
	return t >= 0 && int(t) < len(themeNames)
}

// ParseTheme converts name to Theme, case insensitive.
func ParseTheme(name string) (Theme, error) {
	for i, n := range themeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Theme(i), nil
		}
	}
	return ThemeDark, fmt.Errorf("%q is not a valid theme, try [%s]", name, strings.Join(themeNames, ", "))
}

func (t Theme) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid theme %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	v, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
