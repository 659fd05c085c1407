package standalone

import (
	"strings"
	"testing"

	"deck/deck"
	"deck/document"
	"deck/render"
	"deck/surface"
)

func TestEmitter_Page(t *testing.T) {
	height := 50.0
	page := document.Page{Transitions: []document.Transition{
		{Order: 0, Marks: []document.Mark{
			document.Text{Content: "one", Style: document.TextStyle{Listing: document.Listing{Kind: document.ListingOrdered, Number: 1, Indent: document.IndentI1}}},
		}},
		{Order: 1, Marks: []document.Mark{
			document.Text{Content: "dot", Style: document.TextStyle{Listing: document.Listing{Kind: document.ListingUnordered, Indent: document.IndentI2}}},
			document.Text{Content: "said", Style: document.TextStyle{Quote: true, Italic: true}},
			document.Separator{Direction: document.SeparatorVertical},
			document.Image{Key: "k", Style: document.ImageStyle{Height: &height, Align: document.AlignRight}},
		}},
	}}

	e := &emitter{}
	e.beginPage(2, deck.SceneRange{Start: 5, End: 7})
	render.Walk(page, e)
	e.endPage()

	want := []string{
		"// page 3",
		"if a.scene >= 5 && a.scene < 7 {",
		"ui.Horizontal(func(ui *Ui) {",
		"ui.Indent(1)",
		"ui.SetItemSpacingX(8)",
		`ui.Label("1.", TextStyle{})`,
		"ui.SetItemSpacingX(2)",
		`ui.Label("one", TextStyle{})`,
		"})",
		"ui.EndRow()",
		"ui.Horizontal(func(ui *Ui) {",
		"if a.scene < 6 {",
		"ui.SetVisible(false)",
		"}",
		"ui.SetItemSpacingX(8)",
		"ui.Bullet(2)",
		"ui.SetItemSpacingX(2)",
		`ui.Label("dot", TextStyle{})`,
		"})",
		"ui.EndRow()",
		"ui.Horizontal(func(ui *Ui) {",
		"if a.scene < 6 {",
		"ui.SetVisible(false)",
		"}",
		"ui.SetItemSpacingX(8)",
		"ui.QuoteBar()",
		"ui.SetItemSpacingX(2)",
		`ui.Label("said", TextStyle{Italic: true})`,
		"})",
		"ui.EndRow()",
		"ui.Horizontal(func(ui *Ui) {",
		"if a.scene < 6 {",
		"ui.SetVisible(false)",
		"}",
		"ui.Separator(true)",
		"})",
		"ui.EndRow()",
		"ui.Horizontal(func(ui *Ui) {",
		"if a.scene < 6 {",
		"ui.SetVisible(false)",
		"}",
		`ui.Image(a.textures["k"], 0, 50, AlignRight, "")`,
		"})",
		"ui.EndRow()",
		"}",
	}
	got := strings.Split(strings.TrimSuffix(e.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("emitted %d lines, want %d:\n%s", len(got), len(want), e.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStyleLiteral(t *testing.T) {
	tests := []struct {
		style surface.TextStyle
		want  string
	}{
		{surface.TextStyle{}, "TextStyle{}"},
		{surface.TextStyle{Code: true}, "TextStyle{Code: true}"},
		{surface.TextStyle{Strong: true, Small: true, Strikethrough: true, Underline: true}, "TextStyle{Strong: true, Small: true, Strikethrough: true, Underline: true}"},
	}
	for _, tt := range tests {
		if got := styleLiteral(tt.style); got != tt.want {
			t.Errorf("styleLiteral(%+v) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	for v, want := range map[float64]string{0: "0", 200: "200", 12.5: "12.5", 1e21: "1e+21"} {
		if got := number(v); got != want {
			t.Errorf("number(%v) = %q, want %q", v, got, want)
		}
	}
}
