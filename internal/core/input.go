package core

import (
	"strings"
	"time"
)

// Action is a game intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionHelp
	ActionRestart
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionPause:   "pause",
	ActionHelp:    "help",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether a moves the player.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input gathered for one simulation tick. It is a plain
// value; copying it copies the whole frame.
type InputFrame struct {
	actions uint16

	// Elapsed is the wall-clock time since the previous tick.
	// Zero means one nominal tick at the configured rate.
	Elapsed time.Duration
}

// NewInputFrame returns a frame with no actions.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.actions |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.actions&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame { return f }

// String lists the triggered actions, e.g. "[pause help]".
func (f InputFrame) String() string {
	var names []string
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
