// Package audio plays the crossing game's sound effects through the
// system speaker. Every effect is synthesised on demand, so the package
// ships no sample files.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ErrNoDevice is returned by Init when the speaker cannot be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Player mixes short effects onto a single speaker stream.
// Play never blocks on playback and is a no-op until Init succeeds.
type Player struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// New creates a player. A nil logger falls back to the default logger.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialised", "sample_rate", int(sampleRate))
	return nil
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetVolume sets the gain in halvings: 0 is unchanged, -1 is half as loud.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = v
}

// Play starts the effect named id and returns immediately.
func (p *Player) Play(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s, ok := Effect(id)
	if !ok {
		p.logger.Warn("unknown sound", "id", id)
		return
	}

	v := &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}

	speaker.Lock()
	p.mixer.Add(v)
	speaker.Unlock()
}

// Close drops any effect still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
