package document

import (
	"slices"
	"strconv"

	"github.com/maruel/natural"

	"deck/utils/debug"
)

// String returns a readable tree of the whole document. It exists solely for
// manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document: title[%q] fullscreen[%t] pages[%d]", d.Meta.Title, d.Meta.Fullscreen, len(d.Pages))
	for i, p := range d.Pages {
		tw.Line(1, "Page[%d] max step[%d] transitions[%d]", i, p.MaxStep(), len(p.Transitions))
		for j, t := range p.Transitions {
			tw.Line(2, "Transition[%d] order[%d] marks[%d]", j, t.Order, len(t.Marks))
			for _, m := range t.Marks {
				dumpMark(tw, 3, m)
			}
		}
	}

	if keys := d.ImageKeys(); len(keys) > 0 {
		slices.SortFunc(keys, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
		tw.Line(0, "Images: %d", len(keys))
		for _, k := range keys {
			tw.Line(1, "Image[%q]", k)
		}
	}
	return tw.String()
}

func dumpMark(tw *debug.TreeWriter, depth int, m Mark) {
	switch m := m.(type) {
	case Text:
		tw.TextBlock(depth, "Text", m.Content)
		s := m.Style
		tw.Line(depth+1, "style: bold[%t] code[%t] italic[%t] small[%t] strike[%t] underline[%t] heading[%s] quote[%t] indent[%s]",
			s.Bold, s.Code, s.Italic, s.Small, s.Strikethrough, s.Underline, s.Heading, s.Quote, s.Indent)
		if s.Listing.Kind != ListingNone {
			tw.Line(depth+1, "listing: kind[%s] number[%d] indent[%s]", s.Listing.Kind, s.Listing.Number, s.Listing.Indent)
		}
		if len(s.Hyperlink) > 0 {
			tw.TextBlock(depth+1, "hyperlink", s.Hyperlink)
		}
	case CodeBlock:
		tw.TextBlock(depth, "CodeBlock", m.Code)
		if len(m.Language) > 0 {
			tw.Line(depth+1, "language: %s", m.Language)
		}
	case Image:
		tw.Line(depth, "Image: key[%q] title[%q] width[%s] height[%s] align[%s]",
			m.Key, m.Title, optional(m.Style.Width), optional(m.Style.Height), m.Style.Align)
	case NewLine:
		tw.Line(depth, "NewLine")
	case Separator:
		tw.Line(depth, "Separator: %s", m.Direction)
	default:
		tw.Line(depth, "Unknown mark %T", m)
	}
}

func optional(v *float64) string {
	if v == nil {
		return "auto"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
