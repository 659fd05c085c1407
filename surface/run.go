package surface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig describes the window.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Run opens window and runs game loop until game requests termination with
// ebiten.Termination or fails.
func Run(game ebiten.Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("presentation window failed: %w", err)
	}
	return nil
}
