package crossing

import (
	"math/rand"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

// GameID is the registry and score-storage identifier of the game.
const GameID = "crossing"

// Game adapts a Session to the platform's frame loop.
type Game struct {
	session   *Session
	cfg       config.CrossingConfig
	runtime   core.RuntimeConfig
	paused    bool
	showHelp  bool
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.CrossingConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.session = NewSession(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
	g.showHelp = false
	g.tickCount = 0
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// HandleAction applies a directional action as soon as it arrives.
func (g *Game) HandleAction(a core.Action) {
	if g.paused {
		return
	}
	if d, ok := directionFor(a); ok {
		g.session.HandleInput(d)
	}
}

// directionFor maps a platform action onto a board direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Step applies the frame's input and advances the session by the elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionPause) && !g.session.State().GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.HandleAction(a)
		}
	}

	g.tickCount++
	g.session.Update(g.elapsedSeconds(in))

	return core.StepResult{State: g.State(), Events: g.session.Drain()}
}

// elapsedSeconds returns the frame's dt, defaulting to one nominal tick.
func (g *Game) elapsedSeconds(in core.InputFrame) float64 {
	if in.Elapsed > 0 {
		return in.Elapsed.Seconds()
	}
	return g.runtime.TickDuration().Seconds()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		Level:    st.Level,
		GameOver: st.GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
