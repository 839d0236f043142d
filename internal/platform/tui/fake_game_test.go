package tui

import (
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	handled []core.Action
	renders int
	state   core.GameState
	pending []core.Event
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 3, Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.renders++
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) HandleAction(a core.Action) {
	g.handled = append(g.handled, a)
}

// lastFrame returns the most recent frame passed to Step.
func (g *fakeGame) lastFrame() core.InputFrame {
	if len(g.frames) == 0 {
		return core.NewInputFrame()
	}
	return g.frames[len(g.frames)-1]
}

type fakeSound struct {
	played []string
}

func (s *fakeSound) Play(id string) {
	s.played = append(s.played, id)
}

type savedRun struct {
	gameID, player string
	score, level   int
}

type fakeSaver struct {
	runs []savedRun
}

func (s *fakeSaver) SaveScore(gameID, player string, score, level int) (int64, error) {
	s.runs = append(s.runs, savedRun{gameID, player, score, level})
	return int64(len(s.runs)), nil
}
