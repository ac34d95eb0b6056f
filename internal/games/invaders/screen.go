package invaders

import "github.com/vovakirdan/rogue-invaders/internal/core"

// Screen is the top-level state of a game session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return core.ScreenNameMenu
	case ScreenPlaying:
		return core.ScreenNamePlaying
	case ScreenGameOver:
		return core.ScreenNameGameOver
	default:
		return "unknown"
	}
}
