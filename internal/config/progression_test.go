package config

import (
	"math/rand"
	"testing"
)

func TestProgressionMilestone(t *testing.T) {
	p := NewProgression(ProgressionConfig{Enabled: true, MilestoneEvery: 5, MaxSpawnSpeed: 100})

	tests := []struct {
		score    int
		expected bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{4, false},
		{5, true},
		{6, false},
		{10, true},
		{15, true},
	}

	for _, tc := range tests {
		if got := p.Milestone(tc.score); got != tc.expected {
			t.Errorf("Milestone(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestProgressionDisabled(t *testing.T) {
	p := NewProgression(ProgressionConfig{Enabled: false, MilestoneEvery: 5, MaxSpawnSpeed: 100})
	if p.IsEnabled() {
		t.Error("progression should be disabled")
	}
	if p.Milestone(5) {
		t.Error("disabled progression should never reach a milestone")
	}
}

func TestProgressionSpawnSpeedRange(t *testing.T) {
	p := NewProgression(ProgressionConfig{Enabled: true, MilestoneEvery: 5, MaxSpawnSpeed: 100})
	rng := rand.New(rand.NewSource(7))

	seenMin, seenMax := false, false
	for i := 0; i < 20000; i++ {
		s := p.SpawnSpeed(rng)
		if s < 1 || s > 100 {
			t.Fatalf("SpawnSpeed() = %v, expected within [1, 100]", s)
		}
		if s != float64(int(s)) {
			t.Fatalf("SpawnSpeed() = %v, expected an integer value", s)
		}
		seenMin = seenMin || s == 1
		seenMax = seenMax || s == 100
	}
	if !seenMin || !seenMax {
		t.Errorf("both ends of the range should be reachable (min=%v max=%v)", seenMin, seenMax)
	}
}
