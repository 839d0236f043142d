package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bug-crossing/internal/crossing"
)

// note is a single pitch of an effect.
type note struct {
	freq float64
	dur  time.Duration
}

// Effect layouts. Frequencies are in Hz.
var (
	cheerNotes = []note{{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 80 * time.Millisecond}, {1046.50, 220 * time.Millisecond}}
	biteNotes  = []note{{220, 70 * time.Millisecond}, {146.83, 180 * time.Millisecond}}
	blipNotes  = []note{{1318.51, 60 * time.Millisecond}}
)

// Effect builds a fresh streamer for the sound id. Streamers are single-use.
func Effect(id string) (beep.Streamer, bool) {
	switch id {
	case crossing.SoundCheer:
		return sequence(cheerNotes, 0.25), true
	case crossing.SoundBite:
		return sequence(biteNotes, 0.35), true
	case crossing.SoundBlip:
		return sequence(blipNotes, 0.2), true
	default:
		return nil, false
	}
}

// Duration returns how long the effect for id plays.
func Duration(id string) time.Duration {
	var notes []note
	switch id {
	case crossing.SoundCheer:
		notes = cheerNotes
	case crossing.SoundBite:
		notes = biteNotes
	case crossing.SoundBlip:
		notes = blipNotes
	}

	var d time.Duration
	for _, n := range notes {
		d += n.dur
	}
	return d
}

func sequence(notes []note, gain float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(sampleRate.N(n.dur), newTone(sampleRate, n.freq, gain, n.dur)))
	}
	return beep.Seq(parts...)
}

// tone is a sine voice with a short attack and an exponential tail.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	gain  float64
	decay float64
	pos   int
}

func newTone(sr beep.SampleRate, freq, gain float64, dur time.Duration) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		gain:  gain,
		decay: 4 / dur.Seconds(),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := float64(t.pos) / float64(t.sr)

		// 5ms attack avoids a click at note boundaries.
		envelope := math.Min(at/0.005, 1) * math.Exp(-at*t.decay)
		sample := t.gain * envelope * math.Sin(2*math.Pi*t.freq*at)

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
