package invaders

import (
	"math"
	"testing"

	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
)

func TestPlayerBoundsClamp(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg)

	minX := float64(cfg.Playfield.Margin)
	maxX := float64(cfg.Playfield.Width - cfg.Playfield.Margin)

	for i := 0; i < 500; i++ {
		p.Update(Intent{Left: true})
		if p.Pos.X < minX || p.Pos.X > maxX {
			t.Fatalf("frame %d: player x %.1f out of [%.0f, %.0f]", i, p.Pos.X, minX, maxX)
		}
	}
	if p.Pos.X != minX {
		t.Errorf("holding left: x = %.1f, want %.0f", p.Pos.X, minX)
	}

	for i := 0; i < 500; i++ {
		p.Update(Intent{Right: true})
		if p.Pos.X < minX || p.Pos.X > maxX {
			t.Fatalf("frame %d: player x %.1f out of [%.0f, %.0f]", i, p.Pos.X, minX, maxX)
		}
	}
	if p.Pos.X != maxX {
		t.Errorf("holding right: x = %.1f, want %.0f", p.Pos.X, maxX)
	}
}

func TestPlayerOpposingIntentCancels(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig())
	start := p.Pos.X

	p.Update(Intent{Left: true, Right: true})
	if p.Pos.X != start {
		t.Errorf("x = %.1f, want %.1f", p.Pos.X, start)
	}
}

func TestPlayerStartPosition(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig())
	if p.Pos != core.V(400, 540) {
		t.Errorf("start position = %v, want (400, 540)", p.Pos)
	}
	if p.Lives != 3 || p.Score != 0 || p.Cooldown != 0 {
		t.Errorf("start state lives=%d score=%d cooldown=%d", p.Lives, p.Score, p.Cooldown)
	}
}

func TestPlayerCooldownGate(t *testing.T) {
	for _, cooldown := range []int{10, 30} {
		cfg := config.DefaultInvadersConfig()
		cfg.Player.AttackCooldown = cooldown
		p := NewPlayer(cfg)

		b := p.Shoot()
		if b == nil {
			t.Fatalf("cooldown %d: first shot should fire", cooldown)
		}
		if b.Pos != core.V(400, 520) || b.Dir != -1 || b.Side != SidePlayer {
			t.Errorf("cooldown %d: bullet = %+v", cooldown, *b)
		}

		for i := 0; i < cooldown-1; i++ {
			p.Update(Intent{})
			if p.Shoot() != nil {
				t.Fatalf("cooldown %d: shot fired after %d frames", cooldown, i+1)
			}
		}

		p.Update(Intent{})
		if p.Shoot() == nil {
			t.Errorf("cooldown %d: shot should fire after %d frames", cooldown, cooldown)
		}
	}
}

func TestPlayerCooldownFloor(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig())
	for i := 0; i < 100; i++ {
		p.Update(Intent{})
	}
	if p.Cooldown != 0 {
		t.Errorf("cooldown = %d, want 0", p.Cooldown)
	}
}

func TestPlayerAnimation(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg)

	for i := 0; i < cfg.Player.AnimPeriod-1; i++ {
		p.Update(Intent{})
	}
	if p.Frame != 0 {
		t.Fatalf("frame toggled early")
	}
	p.Update(Intent{})
	if p.Frame != 1 {
		t.Errorf("frame = %d after %d updates, want 1", p.Frame, cfg.Player.AnimPeriod)
	}
}

func TestEnemyTwoHitsToDestroy(t *testing.T) {
	e := &Enemy{Health: 100}

	if e.Hit(50) {
		t.Fatal("first hit should not destroy")
	}
	if !e.Alive() {
		t.Fatal("enemy should survive one hit")
	}
	if !e.Hit(50) {
		t.Fatal("second hit should destroy")
	}
	if e.Alive() {
		t.Error("enemy should be dead after two hits")
	}
	if e.Hit(50) {
		t.Error("hitting a dead enemy should not report a kill")
	}
}

func TestEnemyFlipAndDescend(t *testing.T) {
	e := &Enemy{Pos: core.V(757, 100), VX: 2, Health: 100}

	e.Update(40, 760, 30, 20)
	if e.Pos != core.V(759, 100) || e.VX != 2 {
		t.Fatalf("before bound: pos=%v vx=%.0f", e.Pos, e.VX)
	}

	e.Update(40, 760, 30, 20)
	if e.VX != -2 {
		t.Errorf("vx = %.0f, want -2", e.VX)
	}
	if e.Pos.Y != 130 {
		t.Errorf("y = %.0f, want 130", e.Pos.Y)
	}

	e = &Enemy{Pos: core.V(41, 100), VX: -2, Health: 100}
	e.Update(40, 760, 30, 20)
	if e.VX != 2 || e.Pos.Y != 130 {
		t.Errorf("left bound: vx=%.0f y=%.0f", e.VX, e.Pos.Y)
	}
}

func TestEnemyShoot(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	e := &Enemy{Pos: core.V(300, 100), Health: 100}

	cfg.Enemy.ShootChance = 0
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if e.Shoot(rng, cfg) != nil {
			t.Fatal("enemy fired with zero chance")
		}
	}

	cfg.Enemy.ShootChance = 1
	b := e.Shoot(rng, cfg)
	if b == nil {
		t.Fatal("enemy should always fire with chance 1")
	}
	if b.Pos != core.V(300, 120) || b.Dir != 1 || b.Side != SideEnemy {
		t.Errorf("bullet = %+v", *b)
	}
}

func TestBulletLifetime(t *testing.T) {
	const height = 600.0

	tests := []struct {
		name  string
		y     float64
		dir   float64
		speed float64
	}{
		{"up from player", 520, -1, 10},
		{"up on boundary", 50, -1, 10},
		{"up off grid", 55, -1, 10},
		{"down from enemy", 120, 1, 10},
		{"down slow", 590, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(core.V(100, tt.y), tt.dir, tt.speed, SidePlayer)

			dist := tt.y
			if tt.dir > 0 {
				dist = height - tt.y
			}
			bound := int(math.Floor(dist/tt.speed)) + 1

			frames := 0
			for b.Active {
				b.Update(height)
				frames++
				if frames > bound {
					t.Fatalf("still active after %d frames, bound %d", frames, bound)
				}
			}

			last := b.Pos
			for i := 0; i < 5; i++ {
				b.Update(height)
				if b.Active {
					t.Fatal("bullet reactivated")
				}
			}
			if b.Pos != last {
				t.Error("inactive bullet kept moving")
			}
		})
	}
}

func TestPurgeKeepsOrder(t *testing.T) {
	a := NewBullet(core.V(1, 1), -1, 10, SidePlayer)
	b := NewBullet(core.V(2, 2), -1, 10, SidePlayer)
	c := NewBullet(core.V(3, 3), -1, 10, SidePlayer)
	b.Active = false

	got := purgeBullets([]*Bullet{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("purgeBullets = %v", got)
	}

	enemies := []*Enemy{{Health: 0}, {Health: 50}, {Health: 100}}
	alive := purgeEnemies(enemies)
	if len(alive) != 2 || alive[0].Health != 50 || alive[1].Health != 100 {
		t.Errorf("purgeEnemies kept %d enemies", len(alive))
	}
}

func TestSpawnFormation(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	enemies := SpawnFormation(cfg, NewRNG(7))

	want := []core.Vec{
		core.V(300, 100), core.V(400, 100), core.V(500, 100),
		core.V(300, 160), core.V(400, 160), core.V(500, 160),
	}
	if len(enemies) != len(want) {
		t.Fatalf("got %d enemies, want %d", len(enemies), len(want))
	}
	for i, e := range enemies {
		if e.Pos != want[i] {
			t.Errorf("enemy %d at %v, want %v", i, e.Pos, want[i])
		}
		if e.Health != 100 || e.VX != cfg.Enemy.Speed {
			t.Errorf("enemy %d: health=%d vx=%.0f", i, e.Health, e.VX)
		}
		if e.Variant < 0 || e.Variant >= cfg.Enemy.Variants {
			t.Errorf("enemy %d: variant %d out of range", i, e.Variant)
		}
	}
}

func TestSpawnFormationSingle(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	config.ApplyVariant(&cfg, config.VariantClassic)

	enemies := SpawnFormation(cfg, NewRNG(1))
	if len(enemies) != 1 {
		t.Fatalf("got %d enemies, want 1", len(enemies))
	}
	if enemies[0].Pos != core.V(400, 100) {
		t.Errorf("single enemy at %v, want (400, 100)", enemies[0].Pos)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}

	r := NewRNG(0)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %f out of [0, 1)", f)
		}
		if n := r.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestSpriteKey(t *testing.T) {
	tests := []struct {
		kind    SpriteKind
		variant int
		frame   int
		want    SpriteID
	}{
		{KindPlayer, 0, 0, "hero_1"},
		{KindPlayer, 0, 1, "hero_2"},
		{KindEnemy, 0, 0, "enemy1_1"},
		{KindEnemy, 2, 1, "enemy3_2"},
		{KindPlayerBullet, 0, 0, "laser"},
		{KindEnemyBullet, 1, 1, "enemylaser"},
	}

	for _, tt := range tests {
		if got := SpriteKey(tt.kind, tt.variant, tt.frame); got != tt.want {
			t.Errorf("SpriteKey(%d, %d, %d) = %q, want %q", tt.kind, tt.variant, tt.frame, got, tt.want)
		}
	}
}

func TestButtonRects(t *testing.T) {
	tests := []struct {
		b    Button
		want core.Rect
	}{
		{ButtonStart, core.NewRect(300, 280, 200, 40)},
		{ButtonSound, core.NewRect(300, 330, 200, 40)},
		{ButtonQuit, core.NewRect(300, 380, 200, 40)},
		{ButtonRestart, core.NewRect(300, 330, 200, 40)},
	}

	for _, tt := range tests {
		if got := ButtonRect(tt.b, 800); got != tt.want {
			t.Errorf("ButtonRect(%s) = %+v, want %+v", tt.b, got, tt.want)
		}
	}
}

func TestDisplayColors(t *testing.T) {
	if c := newSprite(KindPlayer, 0, 0, core.Vec{}).Color(); c != core.ColorBrightGreen {
		t.Errorf("player color = %d", c)
	}
	if a, b := newSprite(KindEnemy, 0, 0, core.Vec{}).Color(), newSprite(KindEnemy, 1, 0, core.Vec{}).Color(); a == b {
		t.Error("enemy variants should differ in color")
	}
	if c := newSprite(KindEnemy, 3, 0, core.Vec{}).Color(); c != enemyColor(0) {
		t.Errorf("variant colors should cycle, got %d", c)
	}

	on := ButtonView{Button: ButtonSound, Active: true}
	off := ButtonView{Button: ButtonSound}
	if on.Color() == off.Color() {
		t.Error("sound button color should follow its state")
	}
	if (ButtonView{Button: ButtonQuit}).Color() != core.ColorBrightRed {
		t.Error("quit button should be red")
	}
}
