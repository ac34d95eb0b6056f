package invaders

import (
	"fmt"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// SpriteKind is the kind of entity a sprite represents.
type SpriteKind int

const (
	KindPlayer SpriteKind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
)

// SpriteID is an opaque asset identifier. Front ends use it as a lookup key
// and never derive behavior from its contents.
type SpriteID string

// SpriteKey returns the asset identifier for an entity kind, cosmetic variant
// and animation frame. It is a pure function of its arguments.
func SpriteKey(kind SpriteKind, variant, frame int) SpriteID {
	switch kind {
	case KindPlayer:
		return SpriteID(fmt.Sprintf("hero_%d", frame+1))
	case KindEnemy:
		return SpriteID(fmt.Sprintf("enemy%d_%d", variant+1, frame+1))
	case KindPlayerBullet:
		return "laser"
	case KindEnemyBullet:
		return "enemylaser"
	default:
		return "unknown"
	}
}

// Sprite is one drawable entity in playfield coordinates.
type Sprite struct {
	ID      SpriteID
	Kind    SpriteKind
	Variant int
	Frame   int
	Pos     core.Vec
}

func newSprite(kind SpriteKind, variant, frame int, pos core.Vec) Sprite {
	return Sprite{
		ID:      SpriteKey(kind, variant, frame),
		Kind:    kind,
		Variant: variant,
		Frame:   frame,
		Pos:     pos,
	}
}

// Terminal glyphs per sprite kind.
var (
	playerGlyphs      = [2]string{"/A\\", "/^\\"}
	enemyGlyphs       = [2]string{"<o>", ">o<"}
	playerBulletGlyph = '|'
	enemyBulletGlyph  = '!'
)

// enemyColors cycles through cosmetic enemy variants.
var enemyColors = []core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightYellow}

func enemyColor(variant int) core.Color {
	if variant < 0 {
		variant = 0
	}
	return enemyColors[variant%len(enemyColors)]
}

// Color returns the display color of the sprite.
func (s Sprite) Color() core.Color {
	switch s.Kind {
	case KindPlayer:
		return core.ColorBrightGreen
	case KindEnemy:
		return enemyColor(s.Variant)
	case KindPlayerBullet:
		return core.ColorBrightYellow
	case KindEnemyBullet:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}
