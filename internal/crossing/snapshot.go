package crossing

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Level    int
	GameOver bool
	PlayerX  float64
	PlayerY  float64
	Enemies  []Enemy
	Tokens   []Token
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	st := g.session.State()
	p := g.session.Player()
	return Snapshot{
		Tick:     uint64(max(0, g.tickCount)), //nolint:gosec // tickCount is never negative
		Score:    st.Score,
		Lives:    st.Lives,
		Level:    st.Level,
		GameOver: st.GameOver,
		PlayerX:  p.X,
		PlayerY:  p.Y,
		Enemies:  g.session.Enemies(),
		Tokens:   g.session.Tokens(),
	}
}
