// Package document defines in-memory model of a parsed presentation: pages
// of marks grouped into reveal transitions.
package document

// Document is a complete presentation. It is built once and never modified
// afterwards.
type Document struct {
	Meta  Meta
	Pages []Page
}

// Meta holds presentation-wide settings coming from the document front matter.
type Meta struct {
	Title      string
	Fullscreen bool
}

// Page is a single slide.
type Page struct {
	Transitions []Transition
}

// MaxStep returns the highest reveal step used on the page, 0 for a page
// without transitions.
func (p Page) MaxStep() int {
	steps := 0
	for _, t := range p.Transitions {
		steps = max(steps, t.Order)
	}
	return steps
}

// Transition groups marks revealed together. Order is a reveal threshold and
// has nothing to do with position of the transition on the page.
type Transition struct {
	Order int
	Marks []Mark
}

// Mark is a leaf content unit. The set of implementations is closed.
type Mark interface {
	mark()
}

type (
	Text struct {
		Content string
		Style   TextStyle
	}

	// CodeBlock keeps optional language tag, empty when absent.
	CodeBlock struct {
		Code     string
		Language string
	}

	// Image refers to external resource by its key (path relative to the
	// document).
	Image struct {
		Key   string
		Title string
		Style ImageStyle
	}

	NewLine struct{}

	Separator struct {
		Direction SeparatorDir
	}
)

func (Text) mark()      {}
func (CodeBlock) mark() {}
func (Image) mark()     {}
func (NewLine) mark()   {}
func (Separator) mark() {}

// TextStyle describes how text is presented.
type TextStyle struct {
	Bold          bool
	Code          bool
	Italic        bool
	Small         bool
	Strikethrough bool
	Underline     bool
	Heading       Heading
	Hyperlink     string
	Quote         bool
	Listing       Listing
	Indent        IndentLevel
}

// Listing marks text as list item. Number is only meaningful for ordered
// lists.
type Listing struct {
	Kind   ListingKind
	Number int
	Indent IndentLevel
}

// ImageStyle describes requested image box. Nil dimension means "not
// specified".
type ImageStyle struct {
	Width  *float64
	Height *float64
	Align  AlignHorizontal
}

// ImageKeys returns distinct image keys referenced in the document in order of
// the first appearance.
func (d *Document) ImageKeys() []string {
	var (
		keys []string
		seen = make(map[string]struct{})
	)
	for _, p := range d.Pages {
		for _, t := range p.Transitions {
			for _, m := range t.Marks {
				img, ok := m.(Image)
				if !ok {
					continue
				}
				if _, exists := seen[img.Key]; exists {
					continue
				}
				seen[img.Key] = struct{}{}
				keys = append(keys, img.Key)
			}
		}
	}
	return keys
}
