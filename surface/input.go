package surface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a navigation request coming from the user.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// PollAction returns at most one action per frame: Escape quits, left click,
// Right or Down arrow moves forward, Left or Up arrow moves back. Keys are
// acted upon when released.
func PollAction() Action {
	return resolveAction(inpututil.IsKeyJustReleased, inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
}

func resolveAction(released func(ebiten.Key) bool, clicked bool) Action {
	switch {
	case released(ebiten.KeyEscape):
		return ActionQuit
	case clicked:
		return ActionNext
	case released(ebiten.KeyArrowRight), released(ebiten.KeyArrowDown):
		return ActionNext
	case released(ebiten.KeyArrowLeft), released(ebiten.KeyArrowUp):
		return ActionPrev
	}
	return ActionNone
}
