package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/games/invaders"
)

// pixelScale is the size of one art pixel on screen.
const pixelScale = 3

// Placeholder pixel art, '#' is lit.
var (
	heroArt = [2][]string{
		{
			"....#....",
			"...###...",
			".#######.",
			"#########",
			"#.#.#.#.#",
		},
		{
			"....#....",
			"...###...",
			".#######.",
			"#########",
			".#.#.#.#.",
		},
	}

	enemyArt = [2][]string{
		{
			"..#.....#..",
			"...#...#...",
			"..#######..",
			".##.###.##.",
			"###########",
			"#.#######.#",
			"#.#.....#.#",
			"...##.##...",
		},
		{
			"..#.....#..",
			"#..#...#..#",
			"#.#######.#",
			"###.###.###",
			"###########",
			".#########.",
			"..#.....#..",
			".#.......#.",
		},
	}

	laserArt      = []string{"#", "#", "#", "#"}
	enemyLaserArt = []string{"#.", ".#", "#.", ".#"}
)

// artFor returns the pixel art of a sprite.
func artFor(s invaders.Sprite) []string {
	switch s.Kind {
	case invaders.KindPlayer:
		return heroArt[s.Frame&1]
	case invaders.KindEnemy:
		return enemyArt[s.Frame&1]
	case invaders.KindPlayerBullet:
		return laserArt
	case invaders.KindEnemyBullet:
		return enemyLaserArt
	default:
		return nil
	}
}

// rasterize paints pixel art into an image, scale pixels per art pixel.
func rasterize(art []string, scale int, c color.RGBA) *image.RGBA {
	w := 0
	for _, row := range art {
		w = core.Max(w, len(row))
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, len(art)*scale))

	for y, row := range art {
		for x, px := range row {
			if px != '#' {
				continue
			}
			for dy := range scale {
				for dx := range scale {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// toRGBA converts a palette color for drawing.
func toRGBA(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// spriteCache keeps one image per sprite ID.
type spriteCache struct {
	images map[invaders.SpriteID]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{images: make(map[invaders.SpriteID]*ebiten.Image)}
}

// image returns the sprite image, building it on first use.
func (c *spriteCache) image(s invaders.Sprite) *ebiten.Image {
	if img, ok := c.images[s.ID]; ok {
		return img
	}
	art := artFor(s)
	if art == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(rasterize(art, pixelScale, toRGBA(s.Color())))
	c.images[s.ID] = img
	return img
}

// draw draws the sprite centered on its position.
func (c *spriteCache) draw(dst *ebiten.Image, s invaders.Sprite) {
	img := c.image(s)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.Pos.X-float64(b.Dx())/2, s.Pos.Y-float64(b.Dy())/2)
	dst.DrawImage(img, op)
}
