// Package render maps document marks to drawing instructions. The same
// mapping drives the live presentation and the code generator of standalone
// programs, each providing its own Target.
package render

import (
	"strconv"

	"deck/document"
	"deck/surface"
)

const (
	NormalSpacingX = 2.0
	BigSpacingX    = 8.0
)

// Target receives drawing instructions.
type Target interface {
	// Cell lays out content of a single mark as one flow item. Targets hide
	// (without freeing space) cells whose order is above currently revealed
	// step.
	Cell(order int, body func())
	// EndRow starts a new row of the flow.
	EndRow()
	Spacing(x float64)
	Label(text string, style surface.TextStyle)
	Hyperlink(text, url string)
	CodeBlock(code string)
	Image(key, title string, style document.ImageStyle)
	NewLine()
	Separator(vertical bool)
	Indent(level int)
	Bullet(level int)
	QuoteBar()
}

// Dispatch issues instructions for a single mark and reports whether the
// mark ends the row.
func Dispatch(m document.Mark, t Target) bool {
	switch m := m.(type) {
	case document.Text:
		return dispatchText(m, t)
	case document.CodeBlock:
		t.CodeBlock(m.Code)
		return true
	case document.Image:
		t.Image(m.Key, m.Title, m.Style)
		return true
	case document.NewLine:
		t.NewLine()
		return true
	case document.Separator:
		t.Separator(m.Direction == document.SeparatorVertical)
		return true
	}
	return false
}

func dispatchText(m document.Text, t Target) bool {
	st := m.Style
	switch st.Listing.Kind {
	case document.ListingOrdered:
		t.Indent(st.Listing.Indent.Int())
		t.Spacing(BigSpacingX)
		label(strconv.Itoa(st.Listing.Number)+".", st, t)
		t.Spacing(NormalSpacingX)
		label(m.Content, st, t)
		return true
	case document.ListingUnordered:
		t.Spacing(BigSpacingX)
		t.Bullet(st.Listing.Indent.Int())
		t.Spacing(NormalSpacingX)
		label(m.Content, st, t)
		return true
	}
	if st.Quote {
		t.Spacing(BigSpacingX)
		t.QuoteBar()
		t.Spacing(NormalSpacingX)
		label(m.Content, st, t)
		return true
	}
	return label(m.Content, st, t)
}

// label paints text, hyperlinks ignore the rest of the style. Any heading
// level ends the row unless the text is a hyperlink.
func label(text string, st document.TextStyle, t Target) bool {
	if len(st.Hyperlink) > 0 {
		t.Hyperlink(text, st.Hyperlink)
		return false
	}
	t.Label(text, TextStyle(st))
	return st.Heading != document.HeadingNone
}

// TextStyle converts document text style to the surface one. First level
// heading is emphasized, third level and below look like plain text.
func TextStyle(st document.TextStyle) surface.TextStyle {
	s := surface.TextStyle{
		Strong:        st.Bold,
		Italic:        st.Italic,
		Code:          st.Code,
		Small:         st.Small,
		Strikethrough: st.Strikethrough,
		Underline:     st.Underline,
	}
	switch st.Heading {
	case document.HeadingH1:
		s.Heading, s.Strong = true, true
	case document.HeadingH2:
		s.Heading = true
	}
	return s
}

// Walk issues instructions for the whole page: transitions and marks in
// declaration order, one cell per mark.
func Walk(p document.Page, t Target) {
	for _, tr := range p.Transitions {
		for _, m := range tr.Marks {
			var lineBreak bool
			t.Cell(tr.Order, func() {
				lineBreak = Dispatch(m, t)
			})
			if lineBreak {
				t.EndRow()
			}
		}
	}
}

// Visible reports whether content with given order is shown at step.
func Visible(order, step int) bool {
	return order <= step
}

// Align converts document image alignment to the surface one.
func Align(a document.AlignHorizontal) surface.Align {
	switch a {
	case document.AlignRight:
		return surface.AlignRight
	case document.AlignCenter:
		return surface.AlignCenter
	default:
		return surface.AlignLeft
	}
}

// ImageDims returns requested image dimensions, 0 when not specified.
func ImageDims(st document.ImageStyle) (width, height float64) {
	if st.Width != nil {
		width = *st.Width
	}
	if st.Height != nil {
		height = *st.Height
	}
	return width, height
}
