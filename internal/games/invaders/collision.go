package invaders

import "github.com/vovakirdan/rogue-invaders/internal/core"

// resolveCollisions runs both hit checks for the current frame.
// Bullets and enemies are only flagged here; removal happens after the pass
// so every entity alive at the start of the pass is evaluated exactly once.
func (g *Game) resolveCollisions() {
	g.resolvePlayerBullets()
	g.resolveEnemyBullets()
}

// resolvePlayerBullets checks player bullets against enemies.
// Each bullet hits at most one enemy: the first in formation order.
func (g *Game) resolvePlayerBullets() {
	threshold := g.cfg.Collision.Threshold

	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		for _, e := range g.enemies {
			if !e.Alive() || !core.Near(b.Pos, e.Pos, threshold) {
				continue
			}
			b.Active = false
			if e.Hit(g.cfg.Bullet.Damage) {
				g.player.Score += g.cfg.Enemy.KillScore
				g.play(core.SoundEnemyKilled)
			}
			break
		}
	}
}

// resolveEnemyBullets checks enemy bullets against the player and ends the
// session as soon as the last life is lost.
func (g *Game) resolveEnemyBullets() {
	threshold := g.cfg.Collision.Threshold

	for _, b := range g.enemyBullets {
		if !b.Active || !core.Near(b.Pos, g.player.Pos, threshold) {
			continue
		}
		b.Active = false
		g.player.Lives--
		g.play(core.SoundPlayerHit)

		if g.player.Lives <= 0 {
			g.endSession()
			return
		}
	}
}
