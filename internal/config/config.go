// Package config provides YAML-based game configuration loading and
// variant presets for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
// Every value is a fixed constant for the lifetime of a session.
type InvadersConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Formation FormationConfig `yaml:"formation"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Collision CollisionConfig `yaml:"collision"`
}

// PlayfieldConfig defines the logical playfield.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"` // Horizontal bound inset for the player and enemies
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`           // Units per frame
	Lives          int     `yaml:"lives"`           // Lives at session start
	AttackCooldown int     `yaml:"attack_cooldown"` // Frames between shots
	BottomOffset   int     `yaml:"bottom_offset"`   // Distance of the ship from the bottom edge
	MuzzleOffset   float64 `yaml:"muzzle_offset"`   // Bullet spawn distance above the ship
	AnimPeriod     int     `yaml:"anim_period"`     // Frames per animation frame
}

// EnemyConfig defines enemy behavior.
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`         // Units per frame
	Descent      float64 `yaml:"descent"`       // Vertical step on wall contact
	Health       int     `yaml:"health"`        // Health at spawn
	ShootChance  float64 `yaml:"shoot_chance"`  // Per-frame probability of firing
	KillScore    int     `yaml:"kill_score"`    // Score awarded on destruction
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Bullet spawn distance below the enemy
	Variants     int     `yaml:"variants"`      // Number of cosmetic variants
	AnimPeriod   int     `yaml:"anim_period"`   // Frames per animation frame
}

// FormationConfig defines the grid spawned at the start of each wave.
type FormationConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Top      float64 `yaml:"top"`       // Y of the first row
	SpacingX float64 `yaml:"spacing_x"` // Distance between columns
	SpacingY float64 `yaml:"spacing_y"` // Distance between rows
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`  // Units per frame
	Damage int     `yaml:"damage"` // Damage dealt to an enemy per hit
}

// CollisionConfig defines hit detection.
type CollisionConfig struct {
	Threshold float64 `yaml:"threshold"` // Per-axis center distance that counts as a hit
}

// Variant represents a named revision of the game rules.
type Variant string

const (
	VariantClassic   Variant = "classic"   // Single enemy, slow fire rate
	VariantFormation Variant = "formation" // 2x3 formation, slow fire rate
	VariantRapid     Variant = "rapid"     // 2x5 formation, fast fire rate
)

// Variants lists all known variants in display order.
func Variants() []Variant {
	return []Variant{VariantFormation, VariantClassic, VariantRapid}
}

// ParseVariant converts a string to a Variant.
// Unknown names map to the empty variant, which leaves the config untouched.
func ParseVariant(s string) Variant {
	switch Variant(s) {
	case VariantClassic, VariantFormation, VariantRapid:
		return Variant(s)
	default:
		return ""
	}
}
