package invaders

// View is the read-only state a front end needs to draw one frame.
type View struct {
	Screen  Screen
	Paused  bool
	SoundOn bool

	Width, Height int // Playfield size

	Lives     int
	Score     int
	Wave      int
	HighScore int

	Sprites []Sprite     // Back to front
	Buttons []ButtonView // Clickable regions of the current screen
}

// View returns the drawable state of the current frame.
func (g *Game) View() View {
	v := View{
		Screen:    g.screen,
		Paused:    g.paused,
		SoundOn:   g.soundOn,
		Width:     g.cfg.Playfield.Width,
		Height:    g.cfg.Playfield.Height,
		Lives:     g.player.Lives,
		Score:     g.player.Score,
		Wave:      g.wave,
		HighScore: g.highScore,
	}

	if g.screen == ScreenPlaying {
		v.Sprites = make([]Sprite, 0, len(g.enemies)+len(g.bullets)+len(g.enemyBullets)+1)
		for _, e := range g.enemies {
			v.Sprites = append(v.Sprites, newSprite(KindEnemy, e.Variant, e.Frame, e.Pos))
		}
		for _, b := range g.bullets {
			v.Sprites = append(v.Sprites, newSprite(KindPlayerBullet, 0, 0, b.Pos))
		}
		for _, b := range g.enemyBullets {
			v.Sprites = append(v.Sprites, newSprite(KindEnemyBullet, 0, 0, b.Pos))
		}
		v.Sprites = append(v.Sprites, newSprite(KindPlayer, 0, g.player.Frame, g.player.Pos))
	}

	for _, b := range buttonsFor(g.screen) {
		bv := ButtonView{
			Button: b,
			Rect:   ButtonRect(b, v.Width),
		}
		switch b {
		case ButtonStart:
			bv.Label = "START GAME"
		case ButtonSound:
			bv.Active = g.soundOn
			if g.soundOn {
				bv.Label = "SOUND: ON"
			} else {
				bv.Label = "SOUND: OFF"
			}
		case ButtonQuit:
			bv.Label = "QUIT"
		case ButtonRestart:
			bv.Label = "PRESS S TO RESTART"
		}
		v.Buttons = append(v.Buttons, bv)
	}

	return v
}

// Playfield returns the logical playfield size.
func (g *Game) Playfield() (width, height int) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}
