package surface

import (
	"image/color"
	"strings"
)

// Theme is a set of colors used when painting.
type Theme struct {
	Name       string
	Background color.RGBA
	Text       color.RGBA
	Strong     color.RGBA
	Weak       color.RGBA
	Link       color.RGBA
	CodeBg     color.RGBA
	Tooltip    color.RGBA
}

func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: color.RGBA{27, 27, 27, 255},
		Text:       color.RGBA{190, 190, 190, 255},
		Strong:     color.RGBA{255, 255, 255, 255},
		Weak:       color.RGBA{110, 110, 110, 255},
		Link:       color.RGBA{90, 170, 255, 255},
		CodeBg:     color.RGBA{64, 64, 64, 255},
		Tooltip:    color.RGBA{10, 10, 10, 240},
	}
}

func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: color.RGBA{248, 248, 248, 255},
		Text:       color.RGBA{60, 60, 60, 255},
		Strong:     color.RGBA{0, 0, 0, 255},
		Weak:       color.RGBA{140, 140, 140, 255},
		Link:       color.RGBA{0, 120, 210, 255},
		CodeBg:     color.RGBA{228, 228, 228, 255},
		Tooltip:    color.RGBA{255, 255, 240, 245},
	}
}

// ThemeNamed returns theme by its name, dark theme is used for unknown names.
func ThemeNamed(name string) Theme {
	if strings.EqualFold(name, "light") {
		return LightTheme()
	}
	return DarkTheme()
}

// Color refers to one of the theme colors.
type Color int

const (
	ColorText Color = iota
	ColorStrong
	ColorWeak
	ColorLink
	ColorCodeBg
)

func (t *Theme) color(c Color) color.RGBA {
	switch c {
	case ColorStrong:
		return t.Strong
	case ColorWeak:
		return t.Weak
	case ColorLink:
		return t.Link
	case ColorCodeBg:
		return t.CodeBg
	default:
		return t.Text
	}
}
