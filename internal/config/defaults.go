package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default configuration (the formation variant).
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
			Margin: 40,
		},
		Player: PlayerConfig{
			Speed:          5,
			Lives:          3,
			AttackCooldown: 30,
			BottomOffset:   60,
			MuzzleOffset:   20,
			AnimPeriod:     10,
		},
		Enemy: EnemyConfig{
			Speed:        2,
			Descent:      30,
			Health:       100,
			ShootChance:  0.01,
			KillScore:    30,
			MuzzleOffset: 20,
			Variants:     3,
			AnimPeriod:   20,
		},
		Formation: FormationConfig{
			Rows:     2,
			Cols:     3,
			Top:      100,
			SpacingX: 100,
			SpacingY: 60,
		},
		Bullet: BulletConfig{
			Speed:  10,
			Damage: 50,
		},
		Collision: CollisionConfig{
			Threshold: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
