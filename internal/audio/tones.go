// Package audio plays the game's sound effects as synthesized tones
// through the system speaker.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// SampleRate is the output sample rate.
const SampleRate = beep.SampleRate(44100)

// Note is one sine tone of a sound effect.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Effect is a sequence of notes played at a fixed volume.
type Effect struct {
	Notes  []Note
	Volume float64 // Linear gain in (0, 1]
}

// Duration returns the total length of the effect.
func (e Effect) Duration() time.Duration {
	var d time.Duration
	for _, n := range e.Notes {
		d += n.Duration
	}
	return d
}

// soundEffects maps each game sound to its tones.
var soundEffects = map[core.Sound]Effect{
	core.SoundShoot: {
		Notes:  []Note{{Freq: 880, Duration: 40 * time.Millisecond}, {Freq: 660, Duration: 30 * time.Millisecond}},
		Volume: 0.3,
	},
	core.SoundEnemyKilled: {
		Notes:  []Note{{Freq: 440, Duration: 50 * time.Millisecond}, {Freq: 330, Duration: 50 * time.Millisecond}, {Freq: 220, Duration: 80 * time.Millisecond}},
		Volume: 0.4,
	},
	core.SoundPlayerHit: {
		Notes:  []Note{{Freq: 160, Duration: 120 * time.Millisecond}, {Freq: 90, Duration: 200 * time.Millisecond}},
		Volume: 0.6,
	},
}

// EffectFor returns the effect definition of a sound.
func EffectFor(s core.Sound) (Effect, bool) {
	e, ok := soundEffects[s]
	return e, ok
}

// Streamer builds a finite streamer for the sound at sample rate sr.
func Streamer(sr beep.SampleRate, s core.Sound) (beep.Streamer, error) {
	e, ok := soundEffects[s]
	if !ok {
		return nil, fmt.Errorf("audio: no effect for sound %s", s)
	}

	parts := make([]beep.Streamer, 0, len(e.Notes))
	for _, n := range e.Notes {
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), tone))
	}

	return newVolume(beep.Seq(parts...), e.Volume), nil
}

// newVolume scales a streamer by a linear gain.
// math.Log2(0) is -Inf, so zero gain is rendered silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
