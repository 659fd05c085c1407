package live

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap/zaptest"

	"deck/config"
	"deck/document"
	"deck/surface"
)

func fakeUpload(calls *int) func([]byte) (*surface.Texture, error) {
	return func(data []byte) (*surface.Texture, error) {
		*calls++
		if string(data) == "broken" {
			return nil, errors.New("bad image")
		}
		return &surface.Texture{Size: surface.Vec2{X: 40, Y: 20}}, nil
	}
}

func testSession(t *testing.T, doc *document.Document, baseDir string) (*Session, *int) {
	t.Helper()
	cfg := &config.PresentationConfig{FontSize: 16, Theme: config.ThemeLight}
	s, err := NewSession(context.Background(), doc, baseDir, cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	calls := new(int)
	s.textures.upload = fakeUpload(calls)
	return s, calls
}

func imageDoc(keys ...string) *document.Document {
	var marks []document.Mark
	for _, k := range keys {
		marks = append(marks, document.Image{Key: k, Title: k})
	}
	return &document.Document{Pages: []document.Page{{Transitions: []document.Transition{{Marks: marks}}}}}
}

func TestTextureTable(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pics"), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	for name, data := range map[string]string{"pics/cat.png": "png", "bad.png": "broken"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	calls := 0
	tt := newTextureTable(dir, zaptest.NewLogger(t))
	tt.upload = fakeUpload(&calls)

	for range 3 {
		tex, err := tt.get("pics/cat.png")
		if err != nil {
			t.Fatalf("get() error = %v", err)
		}
		if tex.Size.X != 40 {
			t.Errorf("unexpected texture %+v", tex)
		}
	}
	if calls != 1 {
		t.Errorf("image must be loaded once, loaded %d times", calls)
	}

	_, err := tt.get("missing.png")
	if err == nil || !strings.Contains(err.Error(), "missing.png") || !strings.Contains(err.Error(), dir) {
		t.Errorf("error must name key and path, got %v", err)
	}
	if _, err := tt.get("bad.png"); err == nil || !strings.Contains(err.Error(), "bad image") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestSession_Apply(t *testing.T) {
	doc := &document.Document{Pages: []document.Page{
		{Transitions: []document.Transition{{Order: 0}, {Order: 2}}},
		{},
	}}
	s, _ := testSession(t, doc, "")

	steps := []struct {
		action    surface.Action
		wantIndex int
		wantStep  int
	}{
		{surface.ActionNone, 0, 0},
		{surface.ActionNext, 0, 1},
		{surface.ActionNext, 0, 2},
		{surface.ActionNext, 1, 0},
		{surface.ActionPrev, 0, 2},
		{surface.ActionPrev, 0, 1},
	}
	for i, st := range steps {
		if err := s.apply(st.action); err != nil {
			t.Fatalf("step %d: apply() error = %v", i, err)
		}
		if s.nav.Index() != st.wantIndex || s.nav.Current().Step != st.wantStep {
			t.Errorf("step %d: got page %d step %d, want %d %d", i, s.nav.Index(), s.nav.Current().Step, st.wantIndex, st.wantStep)
		}
	}

	if err := s.apply(surface.ActionQuit); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit must terminate, got %v", err)
	}
}

func TestSession_Interrupted(t *testing.T) {
	s, _ := testSession(t, &document.Document{}, "")
	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = ctx
	cancel()
	if err := s.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("cancelled session must terminate, got %v", err)
	}
}

func TestSession_MissingImageIsFatal(t *testing.T) {
	s, calls := testSession(t, imageDoc("nope.png"), t.TempDir())

	s.frame(surface.Vec2{X: 800, Y: 600})
	if s.err == nil || !strings.Contains(s.err.Error(), "nope.png") {
		t.Fatalf("expected resource error, got %v", s.err)
	}
	if err := s.Update(); err != s.err {
		t.Errorf("Update() must return fatal error, got %v", err)
	}
	if *calls != 0 {
		t.Errorf("nothing must be uploaded, got %d", *calls)
	}
}

func TestSession_HiddenImagesStillLoaded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("png"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	doc := &document.Document{Pages: []document.Page{{Transitions: []document.Transition{
		{Order: 3, Marks: []document.Mark{document.Image{Key: "a.png"}}},
	}}}}
	s, calls := testSession(t, doc, dir)

	for range 2 {
		s.frame(surface.Vec2{X: 800, Y: 600})
	}
	if s.err != nil {
		t.Fatalf("unexpected error %v", s.err)
	}
	if *calls != 1 {
		t.Errorf("hidden image must reserve its space, so it is loaded once, got %d loads", *calls)
	}
}

func TestSession_Layout(t *testing.T) {
	s, _ := testSession(t, &document.Document{}, "")
	if w, h := s.Layout(640, 480); w != 640 || h != 480 {
		t.Errorf("Layout() = %d, %d", w, h)
	}
	if s.theme.Name != "light" {
		t.Errorf("theme = %s, want light", s.theme.Name)
	}
	if f := s.frame(surface.Vec2{X: 100, Y: 100}); f == nil {
		t.Error("frame of empty document must not be nil")
	}
}
