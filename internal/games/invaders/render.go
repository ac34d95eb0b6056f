package invaders

import (
	"fmt"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// Render draws the current frame into a cell grid, scaling the playfield to
// the screen size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := g.View()
	vp := core.Viewport{FieldW: v.Width, FieldH: v.Height, Cols: dst.Width(), Rows: dst.Height()}

	switch v.Screen {
	case ScreenMenu:
		renderMenu(dst, vp, v)
	case ScreenPlaying:
		renderPlaying(dst, vp, v)
	case ScreenGameOver:
		renderGameOver(dst, vp, v)
	}
}

func renderMenu(dst *core.Screen, vp core.Viewport, v View) {
	titleRow := vp.ToCell(core.V(0, 150)).Y
	dst.DrawTextCentered(titleRow, "ROGUE INVADERS", core.ColorBrightWhite)
	renderButtons(dst, vp, v.Buttons)
	dst.DrawTextCentered(dst.Height()-1, "enter start  m sound  h history  q quit", core.ColorGray)
}

func renderPlaying(dst *core.Screen, vp core.Viewport, v View) {
	renderHUD(dst, v)

	for _, s := range v.Sprites {
		c := vp.ToCell(s.Pos)
		switch s.Kind {
		case KindPlayer:
			drawGlyph(dst, c, playerGlyphs[s.Frame&1], s.Color())
		case KindEnemy:
			drawGlyph(dst, c, enemyGlyphs[s.Frame&1], s.Color())
		case KindPlayerBullet:
			dst.SetColored(c.X, c.Y, playerBulletGlyph, s.Color())
		case KindEnemyBullet:
			dst.SetColored(c.X, c.Y, enemyBulletGlyph, s.Color())
		}
	}

	if v.Paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws lives, score, wave and high score.
func renderHUD(dst *core.Screen, v View) {
	left := fmt.Sprintf("LIVES: %d  SCORE: %d  WAVE: %d", v.Lives, v.Score, v.Wave)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	hi := fmt.Sprintf("HI: %d", v.HighScore)
	dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorYellow)
}

func renderGameOver(dst *core.Screen, vp core.Viewport, v View) {
	dst.DrawTextCentered(vp.ToCell(core.V(0, 200)).Y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(vp.ToCell(core.V(0, 280)).Y, fmt.Sprintf("FINAL SCORE: %d", v.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(vp.ToCell(core.V(0, 440)).Y, fmt.Sprintf("HIGH SCORE: %d  WAVE: %d", v.HighScore, v.Wave), core.ColorYellow)
	renderButtons(dst, vp, v.Buttons)
}

// renderButtons draws each button label on the row of its center.
func renderButtons(dst *core.Screen, vp core.Viewport, buttons []ButtonView) {
	for _, b := range buttons {
		center := b.Rect.Center()
		row := vp.ToCell(core.V(float64(center.X), float64(center.Y))).Y
		dst.DrawTextCentered(row, "[ "+b.Label+" ]", b.Color())
	}
}

// drawGlyph draws a multi-cell glyph centered on c.
func drawGlyph(dst *core.Screen, c core.Point, glyph string, color core.Color) {
	dst.DrawTextColored(c.X-len(glyph)/2, c.Y, glyph, color)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
