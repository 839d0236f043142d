// Package registry maps game IDs to factories so drivers (the local
// terminal and the SSH server) can build a fresh game per player without
// importing the game package directly. Games add themselves from init.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Game is what a driver steps once per frame. Implementations hold pure
// logic; input mapping, timing, audio and terminal output belong to the driver.
type Game interface {
	// ID is the stable identifier used on the command line and in the score store.
	ID() string
	Title() string

	// Reset starts a new run. Drivers call it before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick and reports the counters and the events of that tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// InputHandler is implemented by games that apply input the moment it
// arrives instead of waiting for the next tick.
type InputHandler interface {
	HandleAction(a core.Action)
}

// Factory builds a new, not yet reset, game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Registry is a concurrency-safe set of factories keyed by game ID.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds f under id. Registering an ID twice is a programming error and panics.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.factories[id] = f
}

// Create builds a new instance of the game registered as id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id has a factory.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Default is the process-wide registry games add themselves to.
var Default = New()

// Register adds f to Default.
func Register(id string, f Factory) { Default.Register(id, f) }

// Create builds a game from Default.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether Default knows id.
func Exists(id string) bool { return Default.Exists(id) }

// IDs lists the games in Default.
func IDs() []string { return Default.IDs() }
