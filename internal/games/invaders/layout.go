package invaders

import "github.com/vovakirdan/rogue-invaders/internal/core"

// Button names a clickable region.
type Button int

const (
	ButtonStart Button = iota
	ButtonSound
	ButtonQuit
	ButtonRestart
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "start"
	case ButtonSound:
		return "sound"
	case ButtonQuit:
		return "quit"
	case ButtonRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Button geometry in playfield units.
const (
	buttonW = 200
	buttonH = 40
)

// ButtonRect returns the region of b on a playfield of the given width.
func ButtonRect(b Button, width int) core.Rect {
	x := width/2 - buttonW/2
	switch b {
	case ButtonStart:
		return core.NewRect(x, 280, buttonW, buttonH)
	case ButtonSound:
		return core.NewRect(x, 330, buttonW, buttonH)
	case ButtonQuit:
		return core.NewRect(x, 380, buttonW, buttonH)
	case ButtonRestart:
		return core.NewRect(x, 330, buttonW, buttonH)
	default:
		return core.Rect{}
	}
}

// ButtonView is a button as shown on the current screen.
type ButtonView struct {
	Button Button
	Label  string
	Rect   core.Rect
	Active bool // Highlighted, e.g. sound enabled
}

// Color returns the display color of the button.
func (b ButtonView) Color() core.Color {
	switch b.Button {
	case ButtonQuit:
		return core.ColorBrightRed
	case ButtonSound:
		if !b.Active {
			return core.ColorGray
		}
	}
	return core.ColorBrightGreen
}

// buttonsFor lists the buttons visible on a screen, in hit-test order.
func buttonsFor(s Screen) []Button {
	switch s {
	case ScreenMenu:
		return []Button{ButtonStart, ButtonSound, ButtonQuit}
	case ScreenGameOver:
		return []Button{ButtonRestart}
	case ScreenPlaying:
		return nil
	default:
		return nil
	}
}
