package crossing

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

func newTestGame(seed int64) *Game {
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	g := New()
	g.ResetWith(runtime, config.DefaultCrossingConfig())
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runScript steps the game through a fixed input pattern.
func runScript(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		switch {
		case i%40 == 0:
			in.Set(core.ActionUp)
		case i%55 == 0:
			in.Set(core.ActionRight)
		case i%70 == 0:
			in.Set(core.ActionLeft)
		}
		g.Step(in)
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Bug Crossing" {
		t.Errorf("unexpected title %q", g.Title())
	}
	if _, ok := g.(registry.InputHandler); !ok {
		t.Error("game should accept immediate input")
	}
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(42)
	b := newTestGame(42)

	runScript(a, 600)
	runScript(b, 600)

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("snapshots diverged with the same seed:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
	if a.Snapshot().Tick != 600 {
		t.Errorf("tick = %d, expected 600", a.Snapshot().Tick)
	}
}

func TestGameSeedsDiffer(t *testing.T) {
	a := newTestGame(1)
	b := newTestGame(2)

	runScript(a, 60)
	runScript(b, 60)

	if reflect.DeepEqual(a.Snapshot().Enemies, b.Snapshot().Enemies) {
		t.Error("different seeds produced identical enemy positions")
	}
}

func TestStepUsesElapsedTime(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantX   float64
	}{
		{"explicit elapsed", 100 * time.Millisecond, 20},
		{"nominal tick", 0, 200.0 / 60.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			g.session = NewSession(config.DefaultCrossingConfig(), &scriptedRand{floats: []float64{0.5}})

			in := core.NewInputFrame()
			in.Elapsed = tc.elapsed
			g.Step(in)

			// Speed 100 with u=0.5 moves 200px per second.
			if x := g.Session().Enemies()[0].X; math.Abs(x-tc.wantX) > 1e-6 {
				t.Errorf("enemy x = %v, expected %v", x, tc.wantX)
			}
		})
	}
}

func TestStepAppliesDirections(t *testing.T) {
	g := newTestGame(1)

	g.Step(frameWith(core.ActionUp))

	if p := g.Session().Player(); p.Y != 320 {
		t.Errorf("player y = %v, expected 320", p.Y)
	}
}

func TestHandleActionMovesImmediately(t *testing.T) {
	g := newTestGame(1)

	g.HandleAction(core.ActionLeft)
	g.HandleAction(core.ActionPause)

	if p := g.Session().Player(); p.X != 100 || p.Y != 400 {
		t.Errorf("player at (%v, %v), expected (100, 400)", p.X, p.Y)
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := newTestGame(7)

	res := g.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	g.HandleAction(core.ActionUp)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("session changed while paused")
	}

	res = g.Step(frameWith(core.ActionPause))
	if res.State.Paused {
		t.Error("expected second pause to resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("tick = %d, expected %d", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	g.Session().EndGame()
	g.Step(core.NewInputFrame())

	res := g.Step(frameWith(core.ActionPause))
	if res.State.Paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestHelpDoesNotPause(t *testing.T) {
	g := newTestGame(1)

	g.Step(frameWith(core.ActionHelp))
	if !g.showHelp {
		t.Fatal("expected help overlay")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected the session to keep running", g.Snapshot().Tick)
	}

	g.Step(frameWith(core.ActionHelp))
	if g.showHelp {
		t.Error("expected help overlay to close")
	}
}

func TestStepForwardsEvents(t *testing.T) {
	g := newTestGame(1)
	g.session = NewSession(still(), &scriptedRand{})
	g.session.player.Y = 15

	res := g.Step(core.NewInputFrame())
	if got := res.Sounds(); !reflect.DeepEqual(got, []string{SoundCheer}) {
		t.Errorf("sounds = %v, expected [cheer]", got)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}

	g.session.state.Lives = 1
	g.session.enemies[0] = Enemy{X: 200, Y: 400}

	res = g.Step(core.NewInputFrame())
	if !res.EndedGame() || !res.State.GameOver {
		t.Error("expected the game-over transition in this step")
	}
	res = g.Step(core.NewInputFrame())
	if res.EndedGame() {
		t.Error("game over reported twice")
	}
}

func TestCellFor(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{200, 400, 19, 16},
		{200, 20, 19, 1},
		{0, 50, 0, 4},
		{0, 150, 0, 7},
		{403, 240, 39, 10},
		{200, 320, 19, 13},
		{200, 0, 19, 1},
	}

	for _, tc := range tests {
		x, y := CellFor(tc.x, tc.y)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("CellFor(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestRenderBoardAndHUD(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Lives: 3") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
	if !strings.Contains(out, "~{ooo}>") {
		t.Errorf("enemies missing from render:\n%s", out)
	}

	// Board origin is (15, 2); the player glyph starts 4 cells into its tile.
	if c := screen.GetCell(15+19+4, 2+16); c.Rune != '\\' || c.Color != core.ColorBrightYellow {
		t.Errorf("expected player glyph, got %q", c.Rune)
	}
	if c := screen.GetCell(15, 2); c.Rune != '~' || c.Color != core.ColorBlue {
		t.Errorf("expected water at the top-left of the board, got %q", c.Rune)
	}
}

func TestRenderClipsWrappingEnemy(t *testing.T) {
	g := newTestGame(1)
	g.session = NewSession(still(), &scriptedRand{})
	g.session.enemies[0].X = -50
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	row := 2 + 4
	if c := screen.GetCell(15, row); c.Rune != 'o' {
		t.Errorf("expected tail of the clipped enemy at the board edge, got %q", c.Rune)
	}
	if c := screen.GetCell(17, row); c.Rune != '>' {
		t.Errorf("expected enemy head, got %q", c.Rune)
	}
	if c := screen.GetCell(14, row); c.Rune != ' ' {
		t.Errorf("enemy drawn outside the board: %q", c.Rune)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Step(frameWith(core.ActionHelp))
	g.Render(screen)
	if !strings.Contains(screen.String(), "HOW TO PLAY") {
		t.Error("help overlay missing")
	}

	g.Step(frameWith(core.ActionHelp, core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Step(frameWith(core.ActionPause))
	g.Session().EndGame()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if strings.Contains(out, "~{ooo}>") {
		t.Error("enemies should be hidden after game over")
	}
}
