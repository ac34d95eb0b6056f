package invaders

import "math"

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Screen    int
	Paused    bool
	SoundOn   bool
	Wave      int
	HighScore int

	// Player state
	PlayerX  float64
	PlayerY  float64
	Lives    int
	Score    int
	Cooldown int

	// Each enemy is 5 values: X, Y, VX, Health, Variant
	EnemyCount int
	EnemyData  []float64

	// Each bullet is 3 values: X, Y, Dir
	BulletCount      int
	BulletData       []float64
	EnemyBulletCount int
	EnemyBulletData  []float64

	// RNG state for enemy fire and variants
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		enemyData = append(enemyData, e.Pos.X, e.Pos.Y, e.VX, float64(e.Health), float64(e.Variant))
	}

	return Snapshot{
		Tick:             g.tick,
		Screen:           int(g.screen),
		Paused:           g.paused,
		SoundOn:          g.soundOn,
		Wave:             g.wave,
		HighScore:        g.highScore,
		PlayerX:          g.player.Pos.X,
		PlayerY:          g.player.Pos.Y,
		Lives:            g.player.Lives,
		Score:            g.player.Score,
		Cooldown:         g.player.Cooldown,
		EnemyCount:       len(g.enemies),
		EnemyData:        enemyData,
		BulletCount:      len(g.bullets),
		BulletData:       flattenBullets(g.bullets),
		EnemyBulletCount: len(g.enemyBullets),
		EnemyBulletData:  flattenBullets(g.enemyBullets),
		RNGState:         g.rng.state,
	}
}

func flattenBullets(bullets []*Bullet) []float64 {
	data := make([]float64, 0, len(bullets)*3)
	for _, b := range bullets {
		data = append(data, b.Pos.X, b.Pos.Y, b.Dir)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.SoundOn)
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyBulletData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
