package invaders

import (
	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// Enemy is a single invader. Enemies move independently: each one flips
// and descends when it crosses a horizontal bound.
type Enemy struct {
	Pos     core.Vec
	VX      float64 // Horizontal speed, sign is the direction
	Health  int
	Variant int // Cosmetic only

	Frame     int // Animation frame (0 or 1)
	animTimer int
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Update moves the enemy one frame. On crossing minX or maxX the horizontal
// speed is inverted and the enemy steps down by descent.
func (e *Enemy) Update(minX, maxX, descent float64, animPeriod int) {
	e.Pos.X += e.VX
	if e.Pos.X > maxX || e.Pos.X < minX {
		e.VX = -e.VX
		e.Pos.Y += descent
	}

	e.animTimer++
	if animPeriod > 0 && e.animTimer >= animPeriod {
		e.animTimer = 0
		e.Frame = 1 - e.Frame
	}
}

// Shoot fires a downward bullet below the enemy with the configured probability.
func (e *Enemy) Shoot(rng *RNG, cfg config.InvadersConfig) *Bullet {
	if rng.Float64() >= cfg.Enemy.ShootChance {
		return nil
	}
	muzzle := core.V(e.Pos.X, e.Pos.Y+cfg.Enemy.MuzzleOffset)
	return NewBullet(muzzle, 1, cfg.Bullet.Speed, SideEnemy)
}

// Hit applies damage and reports whether this hit destroyed the enemy.
func (e *Enemy) Hit(damage int) bool {
	if !e.Alive() {
		return false
	}
	e.Health -= damage
	return e.Health <= 0
}

// purgeEnemies drops destroyed enemies in place, keeping order.
func purgeEnemies(enemies []*Enemy) []*Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
