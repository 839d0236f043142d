package crossing

// State holds the counters the presentation layer displays.
// Only the owning Session mutates it.
type State struct {
	Score    int
	Lives    int
	Level    int
	GameOver bool // Latches true; never reset within a session
}

// NewState creates the state of a fresh game with the given lives.
func NewState(lives int) State {
	return State{Lives: lives, Level: 1}
}

// end latches GameOver and reports whether this call made the transition.
func (s *State) end() bool {
	if s.GameOver {
		return false
	}
	s.GameOver = true
	return true
}
