// Package tui runs the crossing game in a terminal with Bubble Tea.
// It owns the frame clock, maps keys to actions, renders the cell buffer
// with lipgloss and serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of one tick so a stalled terminal
// does not teleport enemies across the board.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the wall-clock time between two ticks, clamped to
// maxFrameDelta. The first tick has no predecessor and reports zero,
// which the game treats as one nominal tick.
func frameDelta(now, last time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	switch {
	case d <= 0:
		return 0
	case d > maxFrameDelta:
		return maxFrameDelta
	default:
		return d
	}
}
