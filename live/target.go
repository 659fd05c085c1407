package live

import (
	"deck/document"
	"deck/render"
	"deck/surface"
)

// target paints marks on the surface. Cells above current step take their
// space but are not painted.
type target struct {
	ui       *surface.Ui
	step     int
	textures *textureTable
	fail     func(error)
}

func (t *target) Cell(order int, body func()) {
	outer := t.ui
	outer.Horizontal(func(ui *surface.Ui) {
		t.ui = ui
		if !render.Visible(order, t.step) {
			ui.SetVisible(false)
		}
		body()
	})
	t.ui = outer
}

func (t *target) EndRow()           { t.ui.EndRow() }
func (t *target) Spacing(x float64) { t.ui.SetItemSpacingX(x) }

func (t *target) Label(text string, style surface.TextStyle) {
	t.ui.Label(text, style)
}

func (t *target) Hyperlink(text, url string) { t.ui.Hyperlink(text, url) }
func (t *target) CodeBlock(code string)      { t.ui.CodeBlock(code) }

func (t *target) Image(key, title string, style document.ImageStyle) {
	tex, err := t.textures.get(key)
	if err != nil {
		t.fail(err)
		return
	}
	w, h := render.ImageDims(style)
	t.ui.Image(tex, w, h, render.Align(style.Align), title)
}

func (t *target) NewLine()                { t.ui.NewLine() }
func (t *target) Separator(vertical bool) { t.ui.Separator(vertical) }
func (t *target) Indent(level int)        { t.ui.Indent(level) }
func (t *target) Bullet(level int)        { t.ui.Bullet(level) }
func (t *target) QuoteBar()               { t.ui.QuoteBar() }
