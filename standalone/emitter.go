package standalone

import (
	"fmt"
	"strconv"
	"strings"

	"deck/deck"
	"deck/document"
	"deck/render"
	"deck/surface"
)

// emitter writes Go source performing drawing instructions it receives. The
// code is placed inside frame method of the generated program, with ui in
// scope and a.scene holding current scene number.
type emitter struct {
	b strings.Builder
	// first scene of the page being emitted
	start int
}

func (e *emitter) line(format string, args ...any) {
	fmt.Fprintf(&e.b, format, args...)
	e.b.WriteByte('\n')
}

func (e *emitter) String() string {
	return e.b.String()
}

// beginPage opens conditional block for scenes [r.Start, r.End).
func (e *emitter) beginPage(n int, r deck.SceneRange) {
	e.start = r.Start
	e.line("// page %d", n+1)
	e.line("if a.scene >= %d && a.scene < %d {", r.Start, r.End)
}

func (e *emitter) endPage() {
	e.line("}")
}

func (e *emitter) Cell(order int, body func()) {
	e.line("ui.Horizontal(func(ui *Ui) {")
	if order > 0 {
		e.line("if a.scene < %d {", e.start+order)
		e.line("ui.SetVisible(false)")
		e.line("}")
	}
	body()
	e.line("})")
}

func (e *emitter) EndRow() { e.line("ui.EndRow()") }

func (e *emitter) Spacing(x float64) {
	e.line("ui.SetItemSpacingX(%s)", number(x))
}

func (e *emitter) Label(text string, style surface.TextStyle) {
	e.line("ui.Label(%s, %s)", strconv.Quote(text), styleLiteral(style))
}

func (e *emitter) Hyperlink(text, url string) {
	e.line("ui.Hyperlink(%s, %s)", strconv.Quote(text), strconv.Quote(url))
}

func (e *emitter) CodeBlock(code string) {
	e.line("ui.CodeBlock(%s)", strconv.Quote(code))
}

func (e *emitter) Image(key, title string, style document.ImageStyle) {
	w, h := render.ImageDims(style)
	e.line("ui.Image(a.textures[%s], %s, %s, %s, %s)",
		strconv.Quote(key), number(w), number(h), alignName(render.Align(style.Align)), strconv.Quote(title))
}

func (e *emitter) NewLine() { e.line("ui.NewLine()") }

func (e *emitter) Separator(vertical bool) {
	e.line("ui.Separator(%t)", vertical)
}

func (e *emitter) Indent(level int) { e.line("ui.Indent(%d)", level) }
func (e *emitter) Bullet(level int) { e.line("ui.Bullet(%d)", level) }
func (e *emitter) QuoteBar()        { e.line("ui.QuoteBar()") }

func number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func alignName(a surface.Align) string {
	switch a {
	case surface.AlignRight:
		return "AlignRight"
	case surface.AlignCenter:
		return "AlignCenter"
	default:
		return "AlignLeft"
	}
}

// styleLiteral spells only set fields.
func styleLiteral(st surface.TextStyle) string {
	var fields []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"Strong", st.Strong},
		{"Italic", st.Italic},
		{"Code", st.Code},
		{"Small", st.Small},
		{"Strikethrough", st.Strikethrough},
		{"Underline", st.Underline},
		{"Heading", st.Heading},
	} {
		if f.set {
			fields = append(fields, f.name+": true")
		}
	}
	return "TextStyle{" + strings.Join(fields, ", ") + "}"
}
