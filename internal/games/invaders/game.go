// Package invaders implements the Rogue Invaders shooter: a ship at the
// bottom of a fixed playfield against waves of descending enemies.
package invaders

import (
	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Option configures a Game at construction time.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration from disk.
// The variant preset is still applied on top of it.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgSet = true
	}
}

// WithVariant selects the rule variant. Without it the configuration is
// used as loaded.
func WithVariant(v config.Variant) Option {
	return func(g *Game) {
		g.variant = v
	}
}

// WithAudio routes sound effects to sink.
func WithAudio(sink core.AudioSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.audio = sink
		}
	}
}

// WithSound sets the initial state of the sound flag.
func WithSound(on bool) Option {
	return func(g *Game) {
		g.soundOn = on
	}
}

// Game is one process-lifetime game: the screen state machine plus the
// entities of the current session. High score and the sound flag survive
// session restarts.
type Game struct {
	variant config.Variant
	cfg     config.InvadersConfig
	cfgSet  bool
	cfgErr  error
	runtime core.RuntimeConfig
	audio   core.AudioSink
	rng     *RNG

	// Screen state
	screen  Screen
	paused  bool
	soundOn bool
	quit    bool
	ended   bool // Session ended during the current step

	// Session state
	tick         uint64
	wave         int
	highScore    int
	player       *Player
	enemies      []*Enemy
	bullets      []*Bullet // Fired by the player
	enemyBullets []*Bullet
}

// New creates a game in the menu screen. Configuration from disk is loaded
// by the first Reset; until then the built-in defaults apply.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultInvadersConfig(),
		audio:   core.NopAudio{},
		soundOn: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	config.ApplyVariant(&g.cfg, g.variant)
	g.rng = NewRNG(0)
	g.player = NewPlayer(g.cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	switch g.variant {
	case config.VariantClassic:
		return "invaders_classic"
	case config.VariantRapid:
		return "invaders_rapid"
	default:
		return "invaders"
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.variant {
	case config.VariantClassic:
		return "Rogue Invaders (Classic)"
	case config.VariantRapid:
		return "Rogue Invaders (Rapid)"
	default:
		return "Rogue Invaders"
	}
}

// Variant returns the active rule variant.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Config returns the effective configuration.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Reset returns to the menu with an empty session.
// High score and the sound flag are kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.resolveConfig()

	g.rng = NewRNG(runtime.Seed)
	g.screen = ScreenMenu
	g.paused = false
	g.quit = false
	g.ended = false
	g.tick = 0
	g.wave = 0
	g.player = NewPlayer(g.cfg)
	g.enemies = nil
	g.bullets = nil
	g.enemyBullets = nil
}

// resolveConfig loads configuration from disk unless WithConfig supplied it,
// applies the variant and validates the result. An unreadable or invalid
// configuration falls back to the built-in defaults for the variant; the
// error is kept for ConfigErr so the front end can report it.
func (g *Game) resolveConfig() {
	var (
		cfg config.InvadersConfig
		err error
	)
	if g.cfgSet {
		cfg = g.cfg
		config.ApplyVariant(&cfg, g.variant)
		err = cfg.Validate()
	} else {
		cfg, err = config.LoadVariant(configPath, g.variant)
	}

	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultInvadersConfig()
		config.ApplyVariant(&cfg, g.variant)
	}
	g.cfg = cfg
	g.cfgSet = true
}

// ConfigErr returns the error that made the last Reset fall back to the
// default configuration, or nil.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Start begins a fresh session from the menu or the game-over screen.
// It is a no-op while playing.
func (g *Game) Start() bool {
	if g.screen == ScreenPlaying {
		return false
	}
	g.newSession()
	return true
}

// newSession allocates a fresh player, spawns the first wave and clears both
// bullet collections.
func (g *Game) newSession() {
	g.player = NewPlayer(g.cfg)
	g.wave = 1
	g.enemies = SpawnFormation(g.cfg, g.rng)
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.paused = false
	g.screen = ScreenPlaying
}

// endSession moves to the game-over screen and records the high score.
func (g *Game) endSession() {
	g.screen = ScreenGameOver
	g.paused = false
	g.ended = true
	if g.player.Score > g.highScore {
		g.highScore = g.player.Score
	}
}

// Step advances the game by one tick.
// Input is dispatched against the screen at the start of the tick, so one
// tick never chains two transitions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ended = false
	from := g.screen

	g.handleKeys(from, in)
	g.handleClicks(from, in)

	if from == ScreenPlaying && g.screen == ScreenPlaying {
		if in.Has(core.ActionFire) {
			g.Shoot()
		}
		g.Update(Intent{
			Left:  in.Has(core.ActionLeft),
			Right: in.Has(core.ActionRight),
		})
	}

	return core.StepResult{State: g.State(), Ended: g.ended}
}

// handleKeys applies discrete key actions valid on screen from.
func (g *Game) handleKeys(from Screen, in core.InputFrame) {
	switch from {
	case ScreenMenu:
		switch {
		case in.Has(core.ActionConfirm):
			g.Start()
		case in.Has(core.ActionQuit):
			g.quit = true
		case in.Has(core.ActionSound):
			g.ToggleSound()
		}

	case ScreenPlaying:
		switch {
		case in.Has(core.ActionBack):
			g.screen = ScreenMenu
			g.paused = false
		case in.Has(core.ActionPause):
			g.paused = !g.paused
		}

	case ScreenGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Start()
		}
	}
}

// handleClicks hit-tests clicks against the buttons of screen from.
// Clicks after a transition in the same tick are dropped.
func (g *Game) handleClicks(from Screen, in core.InputFrame) {
	for _, p := range in.Clicks {
		if g.screen != from || g.quit {
			return
		}
		g.Click(p)
	}
}

// Click handles a pointer click at p in playfield coordinates.
// Returns the button hit, if any.
func (g *Game) Click(p core.Point) (Button, bool) {
	for _, b := range buttonsFor(g.screen) {
		if !ButtonRect(b, g.cfg.Playfield.Width).Contains(p) {
			continue
		}
		switch b {
		case ButtonStart, ButtonRestart:
			g.Start()
		case ButtonSound:
			g.ToggleSound()
		case ButtonQuit:
			g.quit = true
		}
		return b, true
	}
	return 0, false
}

// ToggleSound flips the sound flag. Only available in the menu.
func (g *Game) ToggleSound() {
	if g.screen != ScreenMenu {
		return
	}
	g.soundOn = !g.soundOn
}

// SoundOn reports whether sound effects are enabled.
func (g *Game) SoundOn() bool {
	return g.soundOn
}

// Shoot fires a player bullet if the cooldown allows it.
// Returns true if a bullet was fired.
func (g *Game) Shoot() bool {
	if g.screen != ScreenPlaying || g.paused {
		return false
	}
	b := g.player.Shoot()
	if b == nil {
		return false
	}
	g.bullets = append(g.bullets, b)
	g.play(core.SoundShoot)
	return true
}

// Update advances the simulation by one frame. It is a no-op unless a session
// is playing and not paused.
func (g *Game) Update(in Intent) {
	if g.screen != ScreenPlaying || g.paused {
		return
	}
	g.tick++

	g.player.Update(in)

	pf := g.cfg.Playfield
	minX := float64(pf.Margin)
	maxX := float64(pf.Width - pf.Margin)
	for _, e := range g.enemies {
		e.Update(minX, maxX, g.cfg.Enemy.Descent, g.cfg.Enemy.AnimPeriod)
		if b := e.Shoot(g.rng, g.cfg); b != nil {
			g.enemyBullets = append(g.enemyBullets, b)
		}
	}

	height := float64(pf.Height)
	for _, b := range g.bullets {
		b.Update(height)
	}
	for _, b := range g.enemyBullets {
		b.Update(height)
	}

	g.resolveCollisions()

	g.bullets = purgeBullets(g.bullets)
	g.enemyBullets = purgeBullets(g.enemyBullets)
	g.enemies = purgeEnemies(g.enemies)

	if g.screen == ScreenPlaying && len(g.enemies) == 0 {
		g.wave++
		g.enemies = SpawnFormation(g.cfg, g.rng)
	}
}

// play emits a sound effect if sound is enabled.
func (g *Game) play(s core.Sound) {
	if g.soundOn && g.audio != nil {
		g.audio.Play(s)
	}
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Paused reports whether the session is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Wave returns the current wave number (0 before the first session).
func (g *Game) Wave() int {
	return g.wave
}

// HighScore returns the best final score in this process.
func (g *Game) HighScore() int {
	return g.highScore
}

// Player returns the current player.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the active enemies.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Bullets returns the active player bullets.
func (g *Game) Bullets() []*Bullet {
	return g.bullets
}

// EnemyBullets returns the active enemy bullets.
func (g *Game) EnemyBullets() []*Bullet {
	return g.enemyBullets
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.player.Score,
		HighScore: g.highScore,
		Wave:      g.wave,
		Screen:    g.screen.String(),
		GameOver:  g.screen == ScreenGameOver,
		Paused:    g.paused,
		Quit:      g.quit,
	}
}

// Register the variants with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return New(WithVariant(config.VariantClassic))
	})
	registry.Register("invaders_rapid", func() registry.Game {
		return New(WithVariant(config.VariantRapid))
	})
}
