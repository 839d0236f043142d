package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegistryCreateReturnsFreshGames(t *testing.T) {
	r := New()
	r.Register("b", stub("b"))
	r.Register("a", stub("a"))

	g1, err := r.Create("a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g2, _ := r.Create("a")
	if g1 == g2 {
		t.Error("Create() should build a new instance each call")
	}
	if g1.ID() != "a" {
		t.Errorf("ID() = %q, expected a", g1.ID())
	}

	if got := r.IDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v, expected [a b]", got)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := New()
	_, err := r.Create("nope")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if r.Exists("nope") {
		t.Error("Exists() should be false for an unknown game")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", stub("dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	r.Register("dup", stub("dup"))
}

func TestDefaultRegistryDelegates(t *testing.T) {
	Register("zz-stub", stub("zz-stub"))

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	if !slices.Contains(IDs(), "zz-stub") {
		t.Errorf("IDs() = %v, missing zz-stub", IDs())
	}
	if _, err := Create("zz-stub"); err != nil {
		t.Errorf("Create() failed: %v", err)
	}
}
