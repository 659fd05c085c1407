package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"slices"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testFrame(t *testing.T, width float64) *Frame {
	t.Helper()
	fonts, err := LoadFonts(16)
	if err != nil {
		t.Fatalf("LoadFonts() error = %v", err)
	}
	theme := DarkTheme()
	return NewFrame(Vec2{width, 600}, &theme, fonts)
}

func TestImageBox(t *testing.T) {
	natural := Vec2{400, 200}
	tests := []struct {
		name          string
		width, height float64
		want          Vec2
	}{
		{"both given", 100, 30, Vec2{100, 30}},
		{"width keeps aspect", 100, 0, Vec2{100, 50}},
		{"natural", 0, 0, natural},
		{"height alone ignored", 0, 30, natural},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageBox(tt.width, tt.height, natural); got != tt.want {
				t.Errorf("ImageBox() = %v, want %v", got, tt.want)
			}
		})
	}
	if got := ImageBox(50, 0, Vec2{}); got != (Vec2{50, 0}) {
		t.Errorf("ImageBox() with empty natural size = %v", got)
	}
}

func TestWrapText(t *testing.T) {
	width := func(s string) float64 { return float64(len(s)) }
	tests := []struct {
		name  string
		input string
		limit float64
		want  []string
	}{
		{"fits", "one two", 10, []string{"one two"}},
		{"wraps", "one two three", 8, []string{"one two", "three"}},
		{"long word", "extraordinary a", 5, []string{"extraordinary", "a"}},
		{"keeps breaks", "a\nb", 10, []string{"a", "b"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.input, tt.limit, width); !slices.Equal(got, tt.want) {
				t.Errorf("wrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name    string
		keys    []ebiten.Key
		clicked bool
		want    Action
	}{
		{"nothing", nil, false, ActionNone},
		{"click", nil, true, ActionNext},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}, false, ActionNext},
		{"down", []ebiten.Key{ebiten.KeyArrowDown}, false, ActionNext},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}, false, ActionPrev},
		{"up", []ebiten.Key{ebiten.KeyArrowUp}, false, ActionPrev},
		{"escape wins", []ebiten.Key{ebiten.KeyEscape, ebiten.KeyArrowRight}, true, ActionQuit},
		{"click before keys", []ebiten.Key{ebiten.KeyArrowLeft}, true, ActionNext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			released := func(k ebiten.Key) bool { return slices.Contains(tt.keys, k) }
			if got := resolveAction(released, tt.clicked); got != tt.want {
				t.Errorf("resolveAction() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUi_HiddenKeepsSpace(t *testing.T) {
	shown := testFrame(t, 800)
	var shownRects []Rect
	for range 2 {
		shownRects = append(shownRects, shown.Ui().Horizontal(func(ui *Ui) {
			ui.Label("Point A", TextStyle{})
		}))
	}

	hidden := testFrame(t, 800)
	var hiddenRects []Rect
	for i := range 2 {
		hiddenRects = append(hiddenRects, hidden.Ui().Horizontal(func(ui *Ui) {
			if i == 0 {
				ui.SetVisible(false)
			}
			ui.Label("Point A", TextStyle{})
		}))
	}

	if !slices.Equal(shownRects, hiddenRects) {
		t.Errorf("hidden cell must occupy the same space: %v vs %v", shownRects, hiddenRects)
	}
	if len(hidden.Ui().shapes) >= len(shown.Ui().shapes) {
		t.Errorf("hidden cell must not paint: %d shapes vs %d", len(hidden.Ui().shapes), len(shown.Ui().shapes))
	}
}

func TestUi_Flow(t *testing.T) {
	f := testFrame(t, 300)
	ui := f.Ui()

	first := ui.Horizontal(func(ui *Ui) { ui.AllocateExactSize(Vec2{100, 20}) })
	second := ui.Horizontal(func(ui *Ui) { ui.AllocateExactSize(Vec2{100, 10}) })
	if second.Min.Y != first.Min.Y || second.Min.X != first.Max.X+DefaultSpacing {
		t.Errorf("second item must follow first in the same row: %v, %v", first, second)
	}

	third := ui.Horizontal(func(ui *Ui) { ui.AllocateExactSize(Vec2{100, 10}) })
	if third.Min.X != FrameMargin || third.Min.Y != first.Max.Y+DefaultSpacing {
		t.Errorf("item which does not fit must go to the next row: %v", third)
	}

	ui.EndRow()
	fourth := ui.Horizontal(func(ui *Ui) { ui.NewLine() })
	if fourth.Min.Y != third.Max.Y+DefaultSpacing || fourth.Height() != NewLineHeight {
		t.Errorf("EndRow must start a new row: %v", fourth)
	}
}

func TestUi_Spacing(t *testing.T) {
	f := testFrame(t, 800)
	var indent, label Rect
	f.Ui().Horizontal(func(ui *Ui) {
		ui.SetItemSpacingX(8)
		indent = ui.Bullet(1)
		ui.SetItemSpacingX(2)
		label = ui.Label("item", TextStyle{})
	})
	if indent.Width() != GridSize {
		t.Errorf("indent width = %v, want %v", indent.Width(), GridSize)
	}
	if label.Min.X-indent.Max.X != 8 {
		t.Errorf("gap after bullet = %v, want 8", label.Min.X-indent.Max.X)
	}
}

func TestUi_CodeBlockBackground(t *testing.T) {
	f := testFrame(t, 500)
	var ui *Ui
	f.Ui().Horizontal(func(u *Ui) {
		ui = u
		u.CodeBlock("x := 1\ny := 2")
	})
	bg, ok := ui.shapes[0].(filledRect)
	if !ok {
		t.Fatalf("expected background first, got %T", ui.shapes[0])
	}
	if bg.rect.Max.X != ui.MaxRect().Max.X {
		t.Errorf("background must reach the right edge: %v", bg.rect)
	}
}

func TestUi_ImageAlign(t *testing.T) {
	tex := &Texture{Size: Vec2{100, 50}}
	tests := []struct {
		align Align
		wantX float64
	}{
		{AlignLeft, FrameMargin},
		{AlignRight, 400 - FrameMargin - 50},
		{AlignCenter, FrameMargin + (400-2*FrameMargin-50)/2},
	}
	for _, tt := range tests {
		f := testFrame(t, 400)
		var r Rect
		f.Ui().Horizontal(func(ui *Ui) { r = ui.Image(tex, 50, 0, tt.align, "") })
		if r.Min.X != tt.wantX || r.Size() != (Vec2{50, 25}) {
			t.Errorf("align %d: got %v, want x=%v size 50x25", tt.align, r, tt.wantX)
		}
	}
}

func TestDecode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 3))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode(png) error = %v", err)
	}
	if got.Bounds().Dx() != 7 || got.Bounds().Dy() != 3 {
		t.Errorf("unexpected size %v", got.Bounds())
	}

	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20"><rect width="40" height="20" fill="red"/></svg>`
	got, err = Decode([]byte(svg))
	if err != nil {
		t.Fatalf("Decode(svg) error = %v", err)
	}
	if got.Bounds().Dx() != 40 || got.Bounds().Dy() != 20 {
		t.Errorf("unexpected svg size %v", got.Bounds())
	}

	for _, bad := range [][]byte{nil, []byte("definitely not an image"), append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, 1, 2, 3)} {
		if _, err := Decode(bad); err == nil {
			t.Errorf("Decode(%q) expected error", bad)
		}
	}
}

func TestSources(t *testing.T) {
	names, err := fs.Glob(Sources, "*.go")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	for _, want := range []string{"ui.go", "widgets.go", "texture.go", "embed.go"} {
		if !slices.Contains(names, want) {
			t.Errorf("Sources missing %s: %v", want, names)
		}
	}
	data, err := fs.ReadFile(Sources, "ui.go")
	if err != nil || !strings.Contains(string(data), "package surface") {
		t.Errorf("unexpected ui.go content, err = %v", err)
	}
}
