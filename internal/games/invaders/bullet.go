package invaders

import "github.com/vovakirdan/rogue-invaders/internal/core"

// Side identifies who fired a bullet.
type Side int

const (
	SidePlayer Side = iota // Fired upward by the player
	SideEnemy              // Fired downward by an enemy
)

// Bullet is a projectile moving vertically at a fixed speed.
type Bullet struct {
	Pos    core.Vec
	Dir    float64 // -1 = up, +1 = down
	Speed  float64
	Active bool // false once out of bounds or after a hit
	Side   Side
}

// NewBullet creates an active bullet.
func NewBullet(pos core.Vec, dir, speed float64, side Side) *Bullet {
	return &Bullet{
		Pos:    pos,
		Dir:    dir,
		Speed:  speed,
		Active: true,
		Side:   side,
	}
}

// Update advances the bullet one frame and deactivates it once it leaves [0, height].
func (b *Bullet) Update(height float64) {
	if !b.Active {
		return
	}
	b.Pos.Y += b.Speed * b.Dir
	if b.Pos.Y < 0 || b.Pos.Y > height {
		b.Active = false
	}
}

// purgeBullets drops inactive bullets in place, keeping order.
func purgeBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	// Release pointers held by the tail
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}
