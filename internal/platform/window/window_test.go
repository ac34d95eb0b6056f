package window

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/games/invaders"
	"github.com/vovakirdan/rogue-invaders/internal/logging"
	"github.com/vovakirdan/rogue-invaders/internal/storage"
)

// fakeInput reports a fixed set of keys and an optional click.
type fakeInput struct {
	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	click   *core.Point
}

func (f *fakeInput) IsKeyPressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k ebiten.Key) bool { return f.pressed[k] }

func (f *fakeInput) JustClicked() (x, y int, ok bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return f.click.X, f.click.Y, true
}

// reset clears the per-tick presses.
func (f *fakeInput) reset() {
	f.pressed = map[ebiten.Key]bool{}
	f.click = nil
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, pressed: map[ebiten.Key]bool{}}
}

func newTestWindow(t *testing.T, store *storage.Store) (*Window, *invaders.Game, *fakeInput) {
	t.Helper()
	game := invaders.New(invaders.WithConfig(config.DefaultInvadersConfig()))
	game.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 7})

	in := newFakeInput()
	w := &Window{
		game:    game,
		store:   store,
		logger:  logging.Discard(),
		input:   in,
		sprites: newSpriteCache(),
	}
	return w, game, in
}

func TestReadFrame(t *testing.T) {
	in := newFakeInput()
	in.held[ebiten.KeyA] = true
	in.pressed[ebiten.KeySpace] = true
	in.pressed[ebiten.KeyR] = true
	in.click = &core.Point{X: 400, Y: 300}

	frame := readFrame(in)

	for _, a := range []core.Action{core.ActionLeft, core.ActionFire, core.ActionRestart} {
		if !frame.Has(a) {
			t.Errorf("frame missing %v", a)
		}
	}
	for _, a := range []core.Action{core.ActionRight, core.ActionQuit, core.ActionConfirm} {
		if frame.Has(a) {
			t.Errorf("frame has unexpected %v", a)
		}
	}
	if len(frame.Clicks) != 1 || frame.Clicks[0] != core.Pt(400, 300) {
		t.Errorf("clicks = %v", frame.Clicks)
	}
}

func TestReadFrameHeldFireIsIgnored(t *testing.T) {
	in := newFakeInput()
	in.held[ebiten.KeySpace] = true

	if readFrame(in).Has(core.ActionFire) {
		t.Error("fire should trigger on press only")
	}
}

func TestUpdateStartsAndMoves(t *testing.T) {
	w, game, in := newTestWindow(t, nil)

	in.pressed[ebiten.KeyEnter] = true
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w.state.Screen != core.ScreenNamePlaying {
		t.Fatalf("screen = %q, want playing", w.state.Screen)
	}

	in.reset()
	in.held[ebiten.KeyArrowRight] = true
	startX := game.Player().Pos.X
	for range 5 {
		if err := w.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if game.Player().Pos.X <= startX {
		t.Errorf("player x = %f, want more than %f", game.Player().Pos.X, startX)
	}
}

func TestUpdateClickStart(t *testing.T) {
	w, _, in := newTestWindow(t, nil)

	in.click = &core.Point{X: 400, Y: 300}
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w.state.Screen != core.ScreenNamePlaying {
		t.Errorf("screen = %q, want playing", w.state.Screen)
	}
}

func TestUpdateQuitTerminates(t *testing.T) {
	w, _, in := newTestWindow(t, nil)

	in.pressed[ebiten.KeyQ] = true
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

// endingGame ends the session on the next step.
type endingGame struct {
	*invaders.Game
	endNext bool
}

func (g *endingGame) Step(in core.InputFrame) core.StepResult {
	res := g.Game.Step(in)
	if g.endNext {
		g.endNext = false
		res.Ended = true
		res.State.Score = 90
		res.State.Wave = 2
	}
	return res
}

func TestUpdateRecordsEndedSession(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	w, game, _ := newTestWindow(t, store)
	eg := &endingGame{Game: game, endNext: true}
	w.game = eg

	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	sessions, err := store.TopSessions(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Score != 90 || sessions[0].Wave != 2 {
		t.Errorf("sessions = %+v", sessions)
	}
	if !strings.Contains(w.summary, "BEST 90") {
		t.Errorf("summary = %q", w.summary)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	w, _, _ := newTestWindow(t, nil)
	if gw, gh := w.Layout(1920, 1080); gw != 800 || gh != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", gw, gh)
	}
}

func TestRasterize(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img := rasterize([]string{"#.", ".#"}, 3, c)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	if got := img.RGBAAt(1, 1); got != c {
		t.Errorf("lit pixel = %v, want %v", got, c)
	}
	if got := img.RGBAAt(4, 1); got.A != 0 {
		t.Errorf("unlit pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(5, 5); got != c {
		t.Errorf("lit pixel = %v, want %v", got, c)
	}
}

func TestArtForEverySprite(t *testing.T) {
	kinds := []invaders.SpriteKind{
		invaders.KindPlayer, invaders.KindEnemy, invaders.KindPlayerBullet, invaders.KindEnemyBullet,
	}
	for _, k := range kinds {
		for frame := range 2 {
			s := invaders.Sprite{Kind: k, Frame: frame}
			if len(artFor(s)) == 0 {
				t.Errorf("no art for kind %d frame %d", k, frame)
			}
		}
	}

	a := artFor(invaders.Sprite{Kind: invaders.KindEnemy, Frame: 0})
	b := artFor(invaders.Sprite{Kind: invaders.KindEnemy, Frame: 1})
	if strings.Join(a, "") == strings.Join(b, "") {
		t.Error("enemy frames should differ")
	}
}

func TestToRGBA(t *testing.T) {
	if got := toRGBA(core.ColorBrightRed); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("toRGBA(BrightRed) = %v", got)
	}
}
