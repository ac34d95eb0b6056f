package invaders

import (
	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// SpawnFormation creates the rows x cols grid of enemies for a new wave.
// The grid is centered horizontally with its first row at Formation.Top.
// A 1x1 formation places its single enemy at (width/2, top).
func SpawnFormation(cfg config.InvadersConfig, rng *RNG) []*Enemy {
	f := cfg.Formation
	enemies := make([]*Enemy, 0, f.Rows*f.Cols)

	left := float64(cfg.Playfield.Width)/2 - float64(f.Cols-1)*f.SpacingX/2
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			enemies = append(enemies, &Enemy{
				Pos:     core.V(left+float64(col)*f.SpacingX, f.Top+float64(row)*f.SpacingY),
				VX:      cfg.Enemy.Speed,
				Health:  cfg.Enemy.Health,
				Variant: rng.Intn(cfg.Enemy.Variants),
			})
		}
	}
	return enemies
}
