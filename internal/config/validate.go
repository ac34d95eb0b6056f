package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
// Checks:
//   - Playfield dimensions are positive and the margin leaves room to move
//   - Speeds, lives, health and damage are positive
//   - Shoot chance is a probability
//   - The formation fits between the horizontal bounds
func (c InvadersConfig) Validate() error {
	pf := c.Playfield
	if pf.Width <= 0 || pf.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYFIELD",
			Message: fmt.Sprintf("playfield must be positive, got %dx%d", pf.Width, pf.Height),
		}
	}
	if pf.Margin < 0 || 2*pf.Margin >= pf.Width {
		return ValidationError{
			Code:    "INVALID_MARGIN",
			Message: fmt.Sprintf("margin %d leaves no room in width %d", pf.Margin, pf.Width),
		}
	}

	if c.Player.Speed <= 0 || c.Enemy.Speed <= 0 || c.Bullet.Speed <= 0 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: "player, enemy and bullet speeds must be positive",
		}
	}
	if c.Player.Lives <= 0 {
		return ValidationError{
			Code:    "INVALID_LIVES",
			Message: fmt.Sprintf("lives must be positive, got %d", c.Player.Lives),
		}
	}
	if c.Player.AttackCooldown < 0 {
		return ValidationError{
			Code:    "INVALID_COOLDOWN",
			Message: fmt.Sprintf("attack cooldown must not be negative, got %d", c.Player.AttackCooldown),
		}
	}
	if c.Enemy.Health <= 0 || c.Bullet.Damage <= 0 {
		return ValidationError{
			Code:    "INVALID_DAMAGE",
			Message: "enemy health and bullet damage must be positive",
		}
	}
	if c.Enemy.ShootChance < 0 || c.Enemy.ShootChance > 1 {
		return ValidationError{
			Code:    "INVALID_CHANCE",
			Message: fmt.Sprintf("shoot chance must be within [0, 1], got %g", c.Enemy.ShootChance),
		}
	}
	if c.Collision.Threshold <= 0 {
		return ValidationError{
			Code:    "INVALID_THRESHOLD",
			Message: fmt.Sprintf("collision threshold must be positive, got %g", c.Collision.Threshold),
		}
	}

	f := c.Formation
	if f.Rows <= 0 || f.Cols <= 0 {
		return ValidationError{
			Code:    "INVALID_FORMATION",
			Message: fmt.Sprintf("formation must have at least one enemy, got %dx%d", f.Rows, f.Cols),
		}
	}
	span := float64(f.Cols-1) * f.SpacingX
	if span > float64(pf.Width-2*pf.Margin) {
		return ValidationError{
			Code:    "FORMATION_TOO_WIDE",
			Message: fmt.Sprintf("formation span %g exceeds playable width %d", span, pf.Width-2*pf.Margin),
		}
	}

	return nil
}
