// Package live presents document in a window.
package live

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"deck/config"
	"deck/deck"
	"deck/document"
	"deck/render"
	"deck/surface"
)

// Session is a running presentation. It implements ebiten.Game, Update and
// Draw are called from a single goroutine.
type Session struct {
	ctx      context.Context
	nav      *deck.Navigator
	textures *textureTable
	theme    surface.Theme
	fonts    *surface.Fonts
	err      error
	log      *zap.Logger
}

// NewSession prepares presentation of doc. Relative image keys are resolved
// against baseDir.
func NewSession(ctx context.Context, doc *document.Document, baseDir string, cfg *config.PresentationConfig, log *zap.Logger) (*Session, error) {
	fonts, err := surface.LoadFonts(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare fonts: %w", err)
	}
	return &Session{
		ctx:      ctx,
		nav:      deck.NewNavigator(deck.Flatten(doc)),
		textures: newTextureTable(baseDir, log),
		theme:    surface.ThemeNamed(cfg.Theme.String()),
		fonts:    fonts,
		log:      log,
	}, nil
}

func (s *Session) Update() error {
	if s.err != nil {
		return s.err
	}
	if err := s.ctx.Err(); err != nil {
		s.log.Debug("Presentation interrupted", zap.Error(err))
		return ebiten.Termination
	}
	return s.apply(surface.PollAction())
}

// apply performs single navigation action.
func (s *Session) apply(a surface.Action) error {
	switch a {
	case surface.ActionNone:
		return nil
	case surface.ActionQuit:
		s.log.Debug("Quit requested")
		return ebiten.Termination
	case surface.ActionNext:
		s.nav.Next()
	case surface.ActionPrev:
		s.nav.Prev()
	}
	if cur := s.nav.Current(); cur != nil {
		s.log.Debug("Navigation", zap.Stringer("action", a), zap.Int("page", s.nav.Index()), zap.Int("step", cur.Step))
	}
	return nil
}

func (s *Session) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.frame(surface.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}).Paint(screen)
}

// frame lays out current page.
func (s *Session) frame(size surface.Vec2) *surface.Frame {
	f := surface.NewFrame(size, &s.theme, s.fonts)
	cur := s.nav.Current()
	if cur == nil || s.err != nil {
		return f
	}
	render.Walk(cur.Page, &target{ui: f.Ui(), step: cur.Step, textures: s.textures, fail: s.fail})
	return f
}

// fail remembers the first fatal error, session ends on the next Update.
func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run presents doc in a window until user quits, ctx is cancelled or fatal
// error happens.
func Run(ctx context.Context, doc *document.Document, baseDir string, cfg *config.PresentationConfig, log *zap.Logger) error {
	s, err := NewSession(ctx, doc, baseDir, cfg, log)
	if err != nil {
		return err
	}
	rc := surface.RunConfig{
		Title:      cfg.WindowTitle(doc.Meta.Title),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: doc.Meta.Fullscreen || cfg.Fullscreen,
	}
	log.Info("Presenting", zap.String("title", rc.Title), zap.Int("pages", s.nav.Len()), zap.Bool("fullscreen", rc.Fullscreen))
	return surface.Run(s, rc)
}
