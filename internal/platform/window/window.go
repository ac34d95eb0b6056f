// Package window runs the game in a desktop window with Ebiten.
// The logical screen is the playfield, so sprites and clicks use playfield
// coordinates directly and Ebiten scales the result to the window.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/games/invaders"
	"github.com/vovakirdan/rogue-invaders/internal/logging"
	"github.com/vovakirdan/rogue-invaders/internal/registry"
	"github.com/vovakirdan/rogue-invaders/internal/storage"
)

// Source is a game that exposes its drawable state.
type Source interface {
	registry.Game
	registry.Pointable
	View() invaders.View
}

var (
	background = color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}
	buttonFill = color.RGBA{R: 0x20, G: 0x20, B: 0x38, A: 0xff}
	dimOverlay = color.RGBA{A: 0xa0}
)

// Window is the ebiten.Game that drives a Source.
type Window struct {
	game    Source
	store   *storage.Store
	logger  *log.Logger
	input   inputSource
	sprites *spriteCache
	face    text.Face
	state   core.GameState
	summary string // Shown on the game over screen
}

// New creates a window front end for game. store and logger may be nil.
func New(game Source, store *storage.Store, logger *log.Logger) *Window {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Window{
		game:    game,
		store:   store,
		logger:  logger,
		input:   ebitenInput{},
		sprites: newSpriteCache(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	result := w.game.Step(readFrame(w.input))
	w.state = result.State

	if result.Ended {
		w.recordSession()
	}

	if w.state.Quit {
		w.logger.Info("quit", "game", w.game.ID(), "high_score", w.state.HighScore)
		return ebiten.Termination
	}
	return nil
}

// recordSession stores the session that just ended.
func (w *Window) recordSession() {
	st := w.state
	w.logger.Info("game over", "game", w.game.ID(), "score", st.Score, "wave", st.Wave)

	if w.store == nil {
		return
	}
	if _, err := w.store.RecordSession(w.game.ID(), st.Score, st.Wave); err != nil {
		w.logger.Warn("cannot record session", "err", err)
		return
	}
	stats, err := w.store.GameStats(w.game.ID())
	if err != nil {
		w.logger.Warn("cannot read session stats", "err", err)
		return
	}
	w.summary = fmt.Sprintf("THIS RUN: %d GAMES  BEST %d  AVG %.0f", stats.Sessions, stats.Best, stats.AvgScore)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	v := w.game.View()
	switch v.Screen {
	case invaders.ScreenMenu:
		w.drawCentered(screen, "ROGUE INVADERS", 150, core.ColorBrightWhite)
		w.drawButtons(screen, v.Buttons)
		w.drawCentered(screen, "ENTER start  M sound  Q quit", float64(v.Height-30), core.ColorGray)

	case invaders.ScreenPlaying:
		for _, s := range v.Sprites {
			w.sprites.draw(screen, s)
		}
		w.drawHUD(screen, v)
		if v.Paused {
			vector.DrawFilledRect(screen, 0, 0, float32(v.Width), float32(v.Height), dimOverlay, false)
			w.drawCentered(screen, "PAUSED", float64(v.Height)/2-10, core.ColorBrightWhite)
			w.drawCentered(screen, "Press P to resume", float64(v.Height)/2+10, core.ColorGray)
		}

	case invaders.ScreenGameOver:
		w.drawCentered(screen, "GAME OVER", 200, core.ColorBrightRed)
		w.drawCentered(screen, fmt.Sprintf("FINAL SCORE: %d", v.Score), 280, core.ColorBrightWhite)
		w.drawButtons(screen, v.Buttons)
		w.drawCentered(screen, fmt.Sprintf("HIGH SCORE: %d  WAVE: %d", v.HighScore, v.Wave), 440, core.ColorYellow)
		if w.summary != "" {
			w.drawCentered(screen, w.summary, 480, core.ColorGray)
		}
	}
}

func (w *Window) drawHUD(screen *ebiten.Image, v invaders.View) {
	w.drawText(screen, fmt.Sprintf("LIVES: %d", v.Lives), 10, 10, core.ColorBrightWhite)
	w.drawText(screen, fmt.Sprintf("SCORE: %d", v.Score), 10, 30, core.ColorBrightWhite)
	w.drawText(screen, fmt.Sprintf("WAVE: %d", v.Wave), 10, 50, core.ColorBrightWhite)

	hi := fmt.Sprintf("HI: %d", v.HighScore)
	w.drawText(screen, hi, float64(v.Width)-10-text.Advance(hi, w.face), 10, core.ColorYellow)
}

func (w *Window) drawButtons(screen *ebiten.Image, buttons []invaders.ButtonView) {
	for _, b := range buttons {
		r := b.Rect
		x, y := float32(r.X), float32(r.Y)
		bw, bh := float32(r.W), float32(r.H)
		c := toRGBA(b.Color())

		vector.DrawFilledRect(screen, x, y, bw, bh, buttonFill, false)
		vector.StrokeRect(screen, x, y, bw, bh, 2, c, false)

		center := r.Center()
		w.drawCentered(screen, b.Label, float64(center.Y)-float64(basicfont.Face7x13.Height)/2, b.Color())
	}
}

// drawText draws s with its top-left corner at (x, y).
func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(screen, s, w.face, op)
}

// drawCentered draws s centered horizontally on the screen.
func (w *Window) drawCentered(screen *ebiten.Image, s string, y float64, c core.Color) {
	x := (float64(screen.Bounds().Dx()) - text.Advance(s, w.face)) / 2
	w.drawText(screen, s, x, y, c)
}

// Layout returns the logical screen size, the playfield.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.game.Playfield()
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(game Source, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	w := New(game, store, logger)

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	if r, ok := game.(registry.ConfigReporter); ok && r.ConfigErr() != nil {
		w.logger.Warn("using default config", "game", game.ID(), "err", r.ConfigErr())
	}
	width, height := game.Playfield()
	w.logger.Info("game ready", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
