package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Parsed presentation is delivered as YAML (or JSON) serialization of the
// model. Structures below mirror it and are never exposed.

type (
	rawDocument struct {
		Meta  rawMeta   `yaml:"meta"`
		Pages []rawPage `yaml:"pages"`
	}

	rawMeta struct {
		Title      string `yaml:"title"`
		Fullscreen bool   `yaml:"fullscreen"`
	}

	rawPage struct {
		Transitions []rawTransition `yaml:"transitions"`
	}

	rawTransition struct {
		Order int       `yaml:"order"`
		Marks []rawMark `yaml:"marks"`
	}

	rawMark struct {
		mark Mark
	}

	rawMarkFields struct {
		Text      *string       `yaml:"text"`
		Code      *string       `yaml:"code"`
		Language  string        `yaml:"language"`
		Image     *string       `yaml:"image"`
		Title     string        `yaml:"title"`
		NewLine   any           `yaml:"newline"`
		Separator *SeparatorDir `yaml:"separator"`
		Style     yaml.Node     `yaml:"style"`
	}

	rawListing struct {
		Kind   ListingKind `yaml:"kind"`
		Number int         `yaml:"number"`
		Indent IndentLevel `yaml:"indent"`
	}

	rawTextStyle struct {
		Bold          bool        `yaml:"bold"`
		Code          bool        `yaml:"code"`
		Italic        bool        `yaml:"italic"`
		Small         bool        `yaml:"small"`
		Strikethrough bool        `yaml:"strikethrough"`
		Underline     bool        `yaml:"underline"`
		Heading       Heading     `yaml:"heading"`
		Hyperlink     string      `yaml:"hyperlink"`
		Quote         bool        `yaml:"quote"`
		Listing       rawListing  `yaml:"listing"`
		Indent        IndentLevel `yaml:"indent"`
	}

	rawImageStyle struct {
		Width  *float64        `yaml:"width"`
		Height *float64        `yaml:"height"`
		Align  AlignHorizontal `yaml:"align"`
	}
)

var markKinds = []string{"text", "code", "image", "newline", "separator"}

// Load reads presentation from r.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			// empty input is an empty presentation
			return &Document{}, nil
		}
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	doc := &Document{
		Meta:  Meta{Title: raw.Meta.Title, Fullscreen: raw.Meta.Fullscreen},
		Pages: make([]Page, 0, len(raw.Pages)),
	}
	for i, rp := range raw.Pages {
		page := Page{Transitions: make([]Transition, 0, len(rp.Transitions))}
		for j, rt := range rp.Transitions {
			if rt.Order < 0 {
				return nil, fmt.Errorf("page %d, transition %d: negative order %d", i+1, j+1, rt.Order)
			}
			tr := Transition{Order: rt.Order, Marks: make([]Mark, 0, len(rt.Marks))}
			for _, rm := range rt.Marks {
				tr.Marks = append(tr.Marks, rm.mark)
			}
			page.Transitions = append(page.Transitions, tr)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// LoadFile reads presentation from file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load document '%s': %w", path, err)
	}
	return doc, nil
}

func (m *rawMark) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "newline":
			m.mark = NewLine{}
		case "separator":
			m.mark = Separator{Direction: SeparatorHorizontal}
		default:
			return fmt.Errorf("line %d: unknown mark %q", node.Line, node.Value)
		}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: mark must be a mapping or a scalar", node.Line)
	}

	var kinds []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i].Value; slices.Contains(markKinds, k) {
			kinds = append(kinds, k)
		}
	}
	switch len(kinds) {
	case 0:
		return fmt.Errorf("line %d: mark kind is missing, expecting one of [%s]", node.Line, strings.Join(markKinds, ", "))
	case 1:
	default:
		return fmt.Errorf("line %d: ambiguous mark, has %s", node.Line, strings.Join(kinds, ", "))
	}

	var f rawMarkFields
	if err := decodeStrict(node, &f); err != nil {
		return err
	}

	for kind, v := range map[string]*string{"text": f.Text, "code": f.Code, "image": f.Image} {
		if kinds[0] == kind && v == nil {
			return fmt.Errorf("line %d: %s value is missing", node.Line, kind)
		}
	}

	switch kinds[0] {
	case "text":
		if err := onlyKeys(node, "text", "style"); err != nil {
			return err
		}
		var st rawTextStyle
		if err := decodeStyle(&f.Style, &st); err != nil {
			return err
		}
		m.mark = Text{Content: *f.Text, Style: st.model()}
	case "code":
		if err := onlyKeys(node, "code", "language"); err != nil {
			return err
		}
		m.mark = CodeBlock{Code: *f.Code, Language: f.Language}
	case "image":
		if err := onlyKeys(node, "image", "title", "style"); err != nil {
			return err
		}
		if len(*f.Image) == 0 {
			return fmt.Errorf("line %d: image key is empty", node.Line)
		}
		var st rawImageStyle
		if err := decodeStyle(&f.Style, &st); err != nil {
			return err
		}
		for _, d := range []*float64{st.Width, st.Height} {
			if d != nil && *d <= 0 {
				return fmt.Errorf("line %d: image dimension must be positive, got %v", node.Line, *d)
			}
		}
		m.mark = Image{Key: *f.Image, Title: f.Title, Style: ImageStyle{Width: st.Width, Height: st.Height, Align: st.Align}}
	case "newline":
		if err := onlyKeys(node, "newline"); err != nil {
			return err
		}
		m.mark = NewLine{}
	case "separator":
		if err := onlyKeys(node, "separator"); err != nil {
			return err
		}
		dir := SeparatorHorizontal
		if f.Separator != nil {
			dir = *f.Separator
		}
		m.mark = Separator{Direction: dir}
	}
	return nil
}

func (s rawTextStyle) model() TextStyle {
	return TextStyle{
		Bold:          s.Bold,
		Code:          s.Code,
		Italic:        s.Italic,
		Small:         s.Small,
		Strikethrough: s.Strikethrough,
		Underline:     s.Underline,
		Heading:       s.Heading,
		Hyperlink:     s.Hyperlink,
		Quote:         s.Quote,
		Listing:       Listing{Kind: s.Listing.Kind, Number: s.Listing.Number, Indent: s.Listing.Indent},
		Indent:        s.Indent,
	}
}

func decodeStyle(node *yaml.Node, v any) error {
	if node.Kind == 0 {
		// style is optional
		return nil
	}
	return decodeStrict(node, v)
}

// decodeStrict decodes node into v refusing fields v does not define.
// yaml.Node.Decode does not honor KnownFields, so node is re-encoded first.
func decodeStrict(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

func onlyKeys(node *yaml.Node, allowed ...string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; !slices.Contains(allowed, k.Value) {
			return fmt.Errorf("line %d: field %q is not allowed here", k.Line, k.Value)
		}
	}
	return nil
}

// ResolveKey returns path of the image file for key. Relative keys are
// relative to the directory of the document.
func ResolveKey(baseDir, key string) string {
	if filepath.IsAbs(key) || len(baseDir) == 0 {
		return filepath.Clean(key)
	}
	return filepath.Join(baseDir, key)
}
