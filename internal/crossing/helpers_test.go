package crossing

import (
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// scriptedRand replays fixed draws. Once a queue is exhausted it keeps
// returning its last value, or zero if the queue is empty.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	i := min(r.fi, len(r.floats)-1)
	r.fi++
	return r.floats[i]
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := min(r.ii, len(r.ints)-1)
	r.ii++
	return r.ints[i] % n
}

// still returns a config whose enemies never move.
func still() config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	for i := range cfg.Enemies {
		cfg.Enemies[i].Speed = 0
	}
	return cfg
}

// drawCall is one call recorded by recordingRenderer.
type drawCall struct {
	sprite string
	x, y   float64
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) Draw(sprite string, x, y float64) {
	r.calls = append(r.calls, drawCall{sprite: sprite, x: x, y: y})
}

func (r *recordingRenderer) count(sprite string) int {
	n := 0
	for _, c := range r.calls {
		if c.sprite == sprite {
			n++
		}
	}
	return n
}

// sounds returns the sound ids drained from the session.
func sounds(t *testing.T, s *Session) []string {
	t.Helper()
	var out []string
	for _, e := range s.Drain() {
		if e.Sound != "" {
			out = append(out, e.Sound)
		}
	}
	return out
}
