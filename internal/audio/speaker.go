package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

// ErrUnavailable is returned when no audio device can be opened.
var ErrUnavailable = errors.New("audio: output unavailable")

// Speaker is a core.AudioSink that mixes effects into the system speaker.
// Play never blocks on playback.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// OpenSpeaker initializes the speaker and starts the mixer.
func OpenSpeaker(logger *log.Logger) (*Speaker, error) {
	s := &Speaker{
		mixer:  &beep.Mixer{},
		logger: logger,
	}

	// Speaker buffer of 100ms
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play implements core.AudioSink.
func (s *Speaker) Play(snd core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st, err := Streamer(SampleRate, snd)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("cannot build sound", "sound", snd.String(), "err", err)
		}
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	s.initialized = false
}

// NewSink returns a speaker sink, or a silent sink when audio is disabled or
// the device cannot be opened. The returned close function is always safe to call.
func NewSink(enabled bool, logger *log.Logger) (core.AudioSink, func()) {
	if !enabled {
		return core.NopAudio{}, func() {}
	}

	spk, err := OpenSpeaker(logger)
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "err", err)
		}
		return core.NopAudio{}, func() {}
	}
	return spk, spk.Close
}
