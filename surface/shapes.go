package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shape is a single recorded paint operation.
type shape interface {
	draw(dst *ebiten.Image)
}

type (
	// noShape reserves a place in display list to be filled later.
	noShape struct{}

	filledRect struct {
		rect  Rect
		color color.RGBA
	}

	strokedRect struct {
		rect  Rect
		width float64
		color color.RGBA
	}

	lineSegment struct {
		from, to Vec2
		width    float64
		color    color.RGBA
	}

	filledCircle struct {
		center Vec2
		radius float64
		color  color.RGBA
	}

	strokedCircle struct {
		center Vec2
		radius float64
		width  float64
		color  color.RGBA
	}

	textRun struct {
		pos   Vec2
		text  string
		face  *text.GoTextFace
		color color.RGBA
	}

	texturedRect struct {
		rect Rect
		tex  *Texture
	}

	// hoverText is painted on top of everything else, and only when pointer is
	// over its rectangle.
	hoverText struct {
		rect Rect
		text string
	}
)

func (noShape) draw(*ebiten.Image) {}

func (s filledRect) draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(s.rect.Min.X), float32(s.rect.Min.Y),
		float32(s.rect.Width()), float32(s.rect.Height()), s.color, true)
}

func (s strokedRect) draw(dst *ebiten.Image) {
	vector.StrokeRect(dst, float32(s.rect.Min.X), float32(s.rect.Min.Y),
		float32(s.rect.Width()), float32(s.rect.Height()), float32(s.width), s.color, true)
}

func (s lineSegment) draw(dst *ebiten.Image) {
	vector.StrokeLine(dst, float32(s.from.X), float32(s.from.Y),
		float32(s.to.X), float32(s.to.Y), float32(s.width), s.color, true)
}

func (s filledCircle) draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, float32(s.center.X), float32(s.center.Y), float32(s.radius), s.color, true)
}

func (s strokedCircle) draw(dst *ebiten.Image) {
	vector.StrokeCircle(dst, float32(s.center.X), float32(s.center.Y), float32(s.radius), float32(s.width), s.color, true)
}

func (s textRun) draw(dst *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.pos.X, s.pos.Y)
	op.ColorScale.ScaleWithColor(s.color)
	op.LineSpacing = lineHeight(s.face)
	text.Draw(dst, s.text, s.face, op)
}

func (s texturedRect) draw(dst *ebiten.Image) {
	if s.tex == nil || s.tex.Size.X <= 0 || s.tex.Size.Y <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.rect.Width()/s.tex.Size.X, s.rect.Height()/s.tex.Size.Y)
	op.GeoM.Translate(s.rect.Min.X, s.rect.Min.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.tex.image, op)
}

// hoverText is drawn separately by Frame.
func (hoverText) draw(*ebiten.Image) {}
