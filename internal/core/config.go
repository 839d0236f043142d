package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the nominal duration of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the counters a game exposes to the presentation layer.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current difficulty level
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies the type of a game event.
type EventKind int

const (
	// EventSound asks the audio collaborator to play a sound. Fire and forget.
	EventSound EventKind = iota
	// EventGameOver asks the presentation layer to show the end-of-game overlay.
	EventGameOver
)

// Event is a notification emitted by a game during a tick.
type Event struct {
	Kind  EventKind
	Sound string // Sound identifier for EventSound
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Sounds returns the identifiers of all sound events in the result, in order.
func (r StepResult) Sounds() []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == EventSound {
			out = append(out, e.Sound)
		}
	}
	return out
}

// EndedGame reports whether the result carries the game-over transition.
func (r StepResult) EndedGame() bool {
	for _, e := range r.Events {
		if e.Kind == EventGameOver {
			return true
		}
	}
	return false
}
