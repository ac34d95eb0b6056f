package invaders

import (
	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// Intent is the horizontal movement requested for one frame.
// Both flags may be set; the moves then cancel out.
type Intent struct {
	Left  bool
	Right bool
}

// Player is the ship at the bottom of the playfield.
type Player struct {
	Pos      core.Vec
	Speed    float64
	Lives    int
	Score    int
	Cooldown int // Frames until the next shot is allowed

	Frame     int // Animation frame (0 or 1)
	animTimer int

	cfg        config.PlayerConfig
	minX, maxX float64
	bulletV    float64
}

// NewPlayer creates a player centered on the bottom row.
func NewPlayer(cfg config.InvadersConfig) *Player {
	pf := cfg.Playfield
	return &Player{
		Pos:     core.V(float64(pf.Width)/2, float64(pf.Height-cfg.Player.BottomOffset)),
		Speed:   cfg.Player.Speed,
		Lives:   cfg.Player.Lives,
		cfg:     cfg.Player,
		minX:    float64(pf.Margin),
		maxX:    float64(pf.Width - pf.Margin),
		bulletV: cfg.Bullet.Speed,
	}
}

// Update moves the player according to the intent, ticks the cooldown
// and advances the animation.
func (p *Player) Update(in Intent) {
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}
	p.Pos.X = core.ClampF(p.Pos.X, p.minX, p.maxX)

	if p.Cooldown > 0 {
		p.Cooldown--
	}

	p.animTimer++
	if p.cfg.AnimPeriod > 0 && p.animTimer >= p.cfg.AnimPeriod {
		p.animTimer = 0
		p.Frame = 1 - p.Frame
	}
}

// CanShoot reports whether the cooldown has elapsed.
func (p *Player) CanShoot() bool {
	return p.Cooldown <= 0
}

// Shoot fires an upward bullet above the ship and restarts the cooldown.
// Returns nil while the cooldown is running.
func (p *Player) Shoot() *Bullet {
	if !p.CanShoot() {
		return nil
	}
	p.Cooldown = p.cfg.AttackCooldown
	muzzle := core.V(p.Pos.X, p.Pos.Y-p.cfg.MuzzleOffset)
	return NewBullet(muzzle, -1, p.bulletV, SidePlayer)
}
