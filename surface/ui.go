package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// FrameMargin is the empty border around the content.
	FrameMargin = 8.0
	// DefaultSpacing is the initial gap between items.
	DefaultSpacing = 2.0
)

// Frame collects content of a single displayed frame.
type Frame struct {
	theme *Theme
	fonts *Fonts
	root  *Ui
}

// NewFrame starts a frame of the given size.
func NewFrame(size Vec2, theme *Theme, fonts *Fonts) *Frame {
	f := &Frame{theme: theme, fonts: fonts}
	area := Rect{
		Min: Vec2{FrameMargin, FrameMargin},
		Max: Vec2{max(size.X-FrameMargin, FrameMargin), max(size.Y-FrameMargin, FrameMargin)},
	}
	f.root = newUi(f, area, true)
	return f
}

// Ui returns top level wrapping flow of the frame.
func (f *Frame) Ui() *Ui {
	return f.root
}

// Paint clears dst with background and draws everything recorded. Hover
// texts under pointer are drawn last.
func (f *Frame) Paint(dst *ebiten.Image) {
	dst.Fill(f.theme.Background)
	var hovers []hoverText
	for _, s := range f.root.shapes {
		if h, ok := s.(hoverText); ok {
			hovers = append(hovers, h)
			continue
		}
		s.draw(dst)
	}
	if len(hovers) == 0 {
		return
	}
	x, y := ebiten.CursorPosition()
	pointer := Vec2{float64(x), float64(y)}
	for _, h := range hovers {
		if !h.rect.Contains(pointer) || len(h.text) == 0 {
			continue
		}
		face := f.fonts.face(TextStyle{Small: true})
		size := measure(h.text, face)
		box := RectFromSize(pointer.Add(Vec2{12, 12}), size).Expand(4)
		filledRect{rect: box, color: f.theme.Tooltip}.draw(dst)
		strokedRect{rect: box, width: 1, color: f.theme.Weak}.draw(dst)
		textRun{pos: box.Min.Add(Vec2{4, 4}), text: h.text, face: face, color: f.theme.Text}.draw(dst)
	}
}

// Ui is a region where items are placed left to right. Wrapping Ui moves
// items which do not fit to the next row, non wrapping Ui keeps them in a
// single row.
type Ui struct {
	frame   *Frame
	max     Rect
	cursor  Vec2
	rowH    float64
	bounds  Rect
	used    bool
	spacing Vec2
	wrap    bool
	visible bool
	shapes  []shape
}

func newUi(f *Frame, area Rect, wrap bool) *Ui {
	return &Ui{
		frame:   f,
		max:     area,
		cursor:  area.Min,
		bounds:  Rect{Min: area.Min, Max: area.Min},
		spacing: Vec2{DefaultSpacing, DefaultSpacing},
		wrap:    wrap,
		visible: true,
	}
}

// Theme returns frame theme.
func (u *Ui) Theme() *Theme {
	return u.frame.theme
}

// MaxRect returns the whole area available to the Ui.
func (u *Ui) MaxRect() Rect {
	return u.max
}

// Cursor returns position of the next item.
func (u *Ui) Cursor() Vec2 {
	return u.cursor
}

// Bounds returns area occupied by items placed so far.
func (u *Ui) Bounds() Rect {
	return u.bounds
}

// SetVisible(false) hides everything painted by this Ui and its children.
// Space is still allocated.
func (u *Ui) SetVisible(visible bool) {
	u.visible = visible
}

func (u *Ui) Visible() bool {
	return u.visible
}

// SetItemSpacingX changes horizontal gap added after every next item.
func (u *Ui) SetItemSpacingX(x float64) {
	u.spacing.X = x
}

// AllocateExactSize reserves space of the given size and returns its rectangle.
func (u *Ui) AllocateExactSize(size Vec2) Rect {
	if u.wrap && u.cursor.X > u.max.Min.X && u.cursor.X+size.X > u.max.Max.X {
		u.EndRow()
	}
	r := RectFromSize(u.cursor, size)
	u.advance(r)
	return r
}

// EndRow moves cursor to the beginning of the next row.
func (u *Ui) EndRow() {
	u.cursor = Vec2{u.max.Min.X, u.cursor.Y + u.rowH + u.spacing.Y}
	u.rowH = 0
}

// Horizontal lays body out in a single non wrapping row placed as one item.
// In a wrapping Ui the row is laid out again at the start of the next row
// when it does not fit.
func (u *Ui) Horizontal(body func(ui *Ui)) Rect {
	child := u.layoutChild(body)
	if u.wrap && u.cursor.X > u.max.Min.X && child.bounds.Max.X > u.max.Max.X {
		u.EndRow()
		child = u.layoutChild(body)
	}
	r := child.bounds
	if !child.used {
		r = Rect{Min: u.cursor, Max: u.cursor}
	}
	u.advance(r)
	if child.visible {
		u.shapes = append(u.shapes, child.shapes...)
	}
	return r
}

func (u *Ui) layoutChild(body func(ui *Ui)) *Ui {
	child := newUi(u.frame, Rect{Min: u.cursor, Max: u.max.Max}, false)
	child.spacing = u.spacing
	child.visible = u.visible
	body(child)
	return child
}

func (u *Ui) advance(r Rect) {
	if u.used {
		u.bounds = u.bounds.Union(r)
	} else {
		u.bounds = r
		u.used = true
	}
	u.rowH = max(u.rowH, r.Max.Y-u.cursor.Y)
	u.cursor.X = r.Max.X + u.spacing.X
}

func (u *Ui) add(s shape) int {
	u.shapes = append(u.shapes, s)
	return len(u.shapes) - 1
}

// RectFilled paints filled rectangle without allocating space.
func (u *Ui) RectFilled(r Rect, c Color) {
	u.add(filledRect{rect: r, color: u.color(c)})
}

// RectStroke paints rectangle outline without allocating space.
func (u *Ui) RectStroke(r Rect, width float64, c Color) {
	u.add(strokedRect{rect: r, width: width, color: u.color(c)})
}

// LineSegment paints a line without allocating space.
func (u *Ui) LineSegment(from, to Vec2, width float64, c Color) {
	u.add(lineSegment{from: from, to: to, width: width, color: u.color(c)})
}

// CircleFilled paints filled circle without allocating space.
func (u *Ui) CircleFilled(center Vec2, radius float64, c Color) {
	u.add(filledCircle{center: center, radius: radius, color: u.color(c)})
}

// CircleStroke paints circle outline without allocating space.
func (u *Ui) CircleStroke(center Vec2, radius, width float64, c Color) {
	u.add(strokedCircle{center: center, radius: radius, width: width, color: u.color(c)})
}

func (u *Ui) color(c Color) color.RGBA {
	return u.frame.theme.color(c)
}
