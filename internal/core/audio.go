package core

// Sound identifies a fire-and-forget sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundEnemyKilled
	SoundPlayerHit
)

// String returns the asset name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundEnemyKilled:
		return "invaderkilled"
	case SoundPlayerHit:
		return "shipexplosion"
	default:
		return "unknown"
	}
}

// AudioSink plays sound effects. Implementations must not block the caller.
type AudioSink interface {
	Play(s Sound)
}

// NopAudio discards every sound.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(Sound) {}

// SoundRecorder records played sounds in order. Useful in tests.
type SoundRecorder struct {
	Played []Sound
}

// Play implements AudioSink.
func (r *SoundRecorder) Play(s Sound) {
	r.Played = append(r.Played, s)
}

// Count returns how many times s was played.
func (r *SoundRecorder) Count(s Sound) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}
