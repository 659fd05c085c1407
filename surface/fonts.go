package surface

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	headingScale = 1.5
	smallScale   = 0.75
)

// TextStyle selects font and decoration of a text run.
type TextStyle struct {
	Strong        bool
	Italic        bool
	Code          bool
	Small         bool
	Strikethrough bool
	Underline     bool
	Heading       bool
}

// Fonts holds parsed font faces of all styles.
type Fonts struct {
	regular    *text.GoTextFaceSource
	bold       *text.GoTextFaceSource
	italic     *text.GoTextFaceSource
	boldItalic *text.GoTextFaceSource
	mono       *text.GoTextFaceSource
	size       float64
}

// LoadFonts parses embedded Go fonts. Size is the body text size in pixels.
func LoadFonts(size float64) (*Fonts, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	f := &Fonts{size: size}
	for _, src := range []struct {
		name string
		data []byte
		dst  **text.GoTextFaceSource
	}{
		{"regular", goregular.TTF, &f.regular},
		{"bold", gobold.TTF, &f.bold},
		{"italic", goitalic.TTF, &f.italic},
		{"bold italic", gobolditalic.TTF, &f.boldItalic},
		{"mono", gomono.TTF, &f.mono},
	} {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(src.data))
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s font: %w", src.name, err)
		}
		*src.dst = s
	}
	return f, nil
}

// Size returns body text size.
func (f *Fonts) Size() float64 {
	return f.size
}

func (f *Fonts) face(st TextStyle) *text.GoTextFace {
	size := f.size
	switch {
	case st.Heading:
		size *= headingScale
	case st.Small:
		size *= smallScale
	}

	src := f.regular
	switch {
	case st.Code:
		src = f.mono
	case st.Strong && st.Italic:
		src = f.boldItalic
	case st.Strong:
		src = f.bold
	case st.Italic:
		src = f.italic
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func measure(s string, face *text.GoTextFace) Vec2 {
	w, h := text.Measure(s, face, lineHeight(face))
	return Vec2{w, h}
}
