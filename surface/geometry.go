// Package surface is a small immediate mode drawing surface over Ebitengine.
// Content is laid out in a wrapping flow of cells, painting is recorded into
// a display list first and performed at the end of the frame.
//
// Sources of this package are bundled into generated standalone programs as
// is. It must not import other packages of this module.
package surface

// Vec2 is a point or a size.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Rect is an axis aligned rectangle, Max is exclusive.
type Rect struct {
	Min, Max Vec2
}

// RectFromSize returns rectangle with top-left corner at pos.
func RectFromSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Expand grows rectangle by d in every direction.
func (r Rect) Expand(d float64) Rect {
	return r.Expand2(Vec2{d, d})
}

// Expand2 grows rectangle by d.X horizontally and d.Y vertically on each
// side.
func (r Rect) Expand2(d Vec2) Rect {
	return Rect{Min: r.Min.Sub(d), Max: r.Max.Add(d)}
}

// Union returns smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Vec2{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether point p is inside of r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// CenterSize returns rectangle of given size centered at c.
func CenterSize(c, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}
