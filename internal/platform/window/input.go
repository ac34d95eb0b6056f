package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// inputSource reports the keyboard and mouse state of the current tick.
type inputSource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	// JustClicked returns the cursor position of a left click made this tick.
	JustClicked() (x, y int, ok bool)
}

// ebitenInput reads input from Ebiten.
type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenInput) IsKeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenInput) JustClicked() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}

// heldKeys are sampled every tick while pressed.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// pressKeys fire once on the tick they go down.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionRestart: {ebiten.KeyS, ebiten.KeyR},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionSound:   {ebiten.KeyM},
	core.ActionQuit:    {ebiten.KeyQ},
}

// readFrame builds the input frame for one tick. The logical screen is the
// playfield, so cursor positions are already playfield coordinates.
func readFrame(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()

	for action, keys := range heldKeys {
		for _, k := range keys {
			if src.IsKeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	for action, keys := range pressKeys {
		for _, k := range keys {
			if src.IsKeyJustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	if x, y, ok := src.JustClicked(); ok {
		frame.Click(core.Pt(x, y))
	}

	return frame
}
