package tui

import (
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		last time.Time
		want time.Duration
	}{
		{"first tick", base, time.Time{}, 0},
		{"normal frame", base.Add(16 * time.Millisecond), base, 16 * time.Millisecond},
		{"at the cap", base.Add(maxFrameDelta), base, maxFrameDelta},
		{"stall is clamped", base.Add(3 * time.Second), base, maxFrameDelta},
		{"clock went backwards", base, base.Add(time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.now, tc.last); got != tc.want {
				t.Errorf("frameDelta = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestTickCmdProducesTick(t *testing.T) {
	cmd := tickCmd(1000)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Error("expected a TickMsg")
	}
}
