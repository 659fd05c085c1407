package surface

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// GridSize is the size of indentation step and of the quote bar cell.
	GridSize = 16.0
	// NewLineHeight is the height of an empty line.
	NewLineHeight = 16.0
	// BulletSize is the size of list item bullet.
	BulletSize = 4.0

	separatorSpace = 6.0
	codePadding    = 2.0
)

// Align is horizontal alignment of an image.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Label paints text wrapped to the available width.
func (u *Ui) Label(s string, st TextStyle) Rect {
	c := ColorText
	if st.Strong {
		c = ColorStrong
	}
	return u.label(s, st, c)
}

// Hyperlink paints link text, url is shown when pointer is over it.
func (u *Ui) Hyperlink(s, url string) Rect {
	r := u.label(s, TextStyle{Underline: true}, ColorLink)
	u.add(hoverText{rect: r, text: url})
	return r
}

// Monospace paints text with fixed width font keeping its line breaks.
func (u *Ui) Monospace(s string) Rect {
	face := u.frame.fonts.face(TextStyle{Code: true})
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	r := u.AllocateExactSize(textSize(lines, face))
	u.paintLines(r.Min, lines, face, TextStyle{Code: true}, u.color(ColorText), false)
	return r
}

// CodeBlock paints code on a background panel stretched to the right edge
// of the available area.
func (u *Ui) CodeBlock(code string) Rect {
	bg := u.add(noShape{})
	r := u.Monospace(code)
	panel := r.Expand(codePadding)
	panel.Max.X = max(u.MaxRect().Max.X, panel.Max.X)
	u.shapes[bg] = filledRect{rect: panel, color: u.color(ColorCodeBg)}
	return r
}

// ImageBox resolves displayed image size. Both dimensions are used as is
// when given, width alone keeps aspect ratio, otherwise natural size is
// used. Zero means "not given".
func ImageBox(width, height float64, natural Vec2) Vec2 {
	if width <= 0 {
		return natural
	}
	switch {
	case height > 0:
	case natural.X > 0:
		height = width / natural.X * natural.Y
	default:
		height = natural.Y
	}
	return Vec2{width, height}
}

// Image paints texture in a box resolved by ImageBox. Title is shown when
// pointer is over the image.
func (u *Ui) Image(tex *Texture, width, height float64, align Align, title string) Rect {
	if tex == nil {
		return Rect{Min: u.cursor, Max: u.cursor}
	}
	size := ImageBox(width, height, tex.Size)

	var r Rect
	switch align {
	case AlignRight, AlignCenter:
		slot := u.AllocateExactSize(Vec2{max(u.max.Max.X-u.cursor.X, size.X), size.Y})
		x := slot.Max.X - size.X
		if align == AlignCenter {
			x = slot.Min.X + (slot.Width()-size.X)/2
		}
		r = RectFromSize(Vec2{x, slot.Min.Y}, size)
	default:
		r = u.AllocateExactSize(size)
	}
	u.add(texturedRect{rect: r, tex: tex})
	if len(title) > 0 {
		u.add(hoverText{rect: r, text: title})
	}
	return r
}

// Indent reserves indentation box of the given level.
func (u *Ui) Indent(level int) Rect {
	return u.AllocateExactSize(Vec2{GridSize * float64(level), GridSize})
}

// Bullet reserves indentation box and paints a list bullet at its right
// edge. Shape of the bullet depends on level.
func (u *Ui) Bullet(level int) Rect {
	r := u.Indent(level)
	center := Vec2{r.Max.X, r.Center().Y}
	box := CenterSize(center, Vec2{BulletSize, BulletSize})
	switch level {
	case 0:
		u.CircleFilled(center, BulletSize/2, ColorStrong)
	case 1:
		u.CircleStroke(center, BulletSize/2, 0.5, ColorStrong)
	case 2:
		u.RectFilled(box, ColorStrong)
	default:
		u.RectStroke(box, 0.5, ColorStrong)
	}
	return r
}

// QuoteBar reserves a grid cell and paints vertical bar in it.
func (u *Ui) QuoteBar() Rect {
	r := u.AllocateExactSize(Vec2{GridSize, GridSize})
	bar := r.Expand2(u.spacing.Scale(0.5))
	c := bar.Center()
	u.LineSegment(Vec2{c.X, bar.Min.Y}, Vec2{c.X, bar.Max.Y}, 1, ColorWeak)
	return r
}

// NewLine reserves an empty line.
func (u *Ui) NewLine() Rect {
	return u.AllocateExactSize(Vec2{0, NewLineHeight})
}

// Separator paints horizontal rule over the rest of the row or short
// vertical rule.
func (u *Ui) Separator(vertical bool) Rect {
	if vertical {
		r := u.AllocateExactSize(Vec2{separatorSpace, GridSize})
		c := r.Center()
		u.LineSegment(Vec2{c.X, r.Min.Y}, Vec2{c.X, r.Max.Y}, 1, ColorWeak)
		return r
	}
	r := u.AllocateExactSize(Vec2{max(u.max.Max.X-u.cursor.X, 0), separatorSpace})
	c := r.Center()
	u.LineSegment(Vec2{r.Min.X, c.Y}, Vec2{r.Max.X, c.Y}, 1, ColorWeak)
	return r
}

func (u *Ui) label(s string, st TextStyle, c Color) Rect {
	face := u.frame.fonts.face(st)
	width := func(s string) float64 { return measure(s, face).X }
	lines := wrapText(s, u.max.Max.X-u.cursor.X, width)
	r := u.AllocateExactSize(textSize(lines, face))
	u.paintLines(r.Min, lines, face, st, u.color(c), st.Code)
	return r
}

func (u *Ui) paintLines(pos Vec2, lines []string, face *text.GoTextFace, st TextStyle, c color.RGBA, codeBg bool) {
	lh := lineHeight(face)
	for i, l := range lines {
		at := Vec2{pos.X, pos.Y + lh*float64(i)}
		size := Vec2{measure(l, face).X, lh}
		if codeBg {
			u.add(filledRect{rect: RectFromSize(at, size), color: u.color(ColorCodeBg)})
		}
		u.add(textRun{pos: at, text: l, face: face, color: c})
		if st.Underline {
			y := at.Y + lh - 1
			u.add(lineSegment{from: Vec2{at.X, y}, to: Vec2{at.X + size.X, y}, width: 1, color: c})
		}
		if st.Strikethrough {
			y := at.Y + lh/2
			u.add(lineSegment{from: Vec2{at.X, y}, to: Vec2{at.X + size.X, y}, width: 1, color: c})
		}
	}
}

func textSize(lines []string, face *text.GoTextFace) Vec2 {
	var w float64
	for _, l := range lines {
		w = max(w, measure(l, face).X)
	}
	return Vec2{w, lineHeight(face) * float64(max(len(lines), 1))}
}

// wrapText breaks s into lines not wider than limit where possible. Existing
// line breaks are kept, single word wider than limit occupies its own line.
func wrapText(s string, limit float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if candidate := line + " " + w; width(candidate) <= limit {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
