package crossing

import (
	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Sound identifiers emitted for the audio collaborator.
const (
	SoundCheer = "cheer" // Player reached the water
	SoundBite  = "bite"  // Player hit by a bug
	SoundBlip  = "blip"  // Token collected
)

// Renderer draws a sprite at a board position.
type Renderer interface {
	Draw(sprite string, x, y float64)
}

// Session owns one game from start to game over: the player, the enemy
// and token collections, the counters and the random source.
// It is not safe for concurrent use; the driver serialises update,
// render and input on one goroutine.
type Session struct {
	rng         Rand
	progression *config.Progression

	player  Player
	enemies []Enemy
	tokens  []Token
	state   State

	events []core.Event
}

// NewSession creates a session laid out from cfg.
func NewSession(cfg config.CrossingConfig, rng Rand) *Session {
	s := &Session{
		rng:         rng,
		progression: config.NewProgression(cfg.Progression),
		player:      NewPlayer(cfg.Gameplay.StartX, cfg.Gameplay.StartY),
		state:       NewState(cfg.Gameplay.Lives),
		enemies:     make([]Enemy, 0, len(cfg.Enemies)+4),
	}

	for _, e := range cfg.Enemies {
		s.enemies = append(s.enemies, Enemy{X: e.X, Y: e.Y, Speed: e.Speed})
	}
	s.tokens = []Token{NewToken(cfg.Token.X, cfg.Token.Y, rng)}

	return s
}

// Update advances the session by dt seconds: enemies move, the player is
// checked for the goal row, then enemy and token collisions are resolved.
// Update keeps running after game over; only input and enemy drawing stop.
func (s *Session) Update(dt float64) {
	for i := range s.enemies {
		s.enemies[i].Update(dt, s.rng)
	}
	s.updatePlayer()
	s.checkCollisions()
	s.checkTokenCollisions()
}

// updatePlayer scores a crossing and applies the level milestone.
func (s *Session) updatePlayer() {
	if !s.player.Update() {
		return
	}

	s.emitSound(SoundCheer)
	s.state.Score++

	if s.progression.Milestone(s.state.Score) {
		x := LaneX(s.rng)
		y := LaneY(s.rng)
		speed := s.progression.SpawnSpeed(s.rng)
		s.enemies = append(s.enemies, Enemy{X: x, Y: y, Speed: speed})
		s.state.Level++
	}
}

// HandleInput moves the player one step. It does nothing once the game is over.
func (s *Session) HandleInput(d Direction) {
	if s.state.GameOver {
		return
	}
	s.player.Move(d)
}

// Up moves the player up. Up, Down, Left and Right are entry points for
// touch or click sources and behave exactly like HandleInput.
func (s *Session) Up() { s.HandleInput(DirUp) }

// Down moves the player down.
func (s *Session) Down() { s.HandleInput(DirDown) }

// Left moves the player left.
func (s *Session) Left() { s.HandleInput(DirLeft) }

// Right moves the player right.
func (s *Session) Right() { s.HandleInput(DirRight) }

// Render reports every visible entity to r. Enemies are hidden after game
// over; tokens and the player are always drawn.
func (s *Session) Render(r Renderer) {
	for _, t := range s.tokens {
		r.Draw(t.Kind.Sprite(), t.X, t.Y)
	}
	if !s.state.GameOver {
		for _, e := range s.enemies {
			r.Draw(SpriteEnemy, e.X, e.Y)
		}
	}
	r.Draw(SpritePlayer, s.player.X, s.player.Y)
}

// EndGame forces the game-over transition.
func (s *Session) EndGame() {
	s.endGame()
}

// endGame latches game over and notifies the presentation layer once.
func (s *Session) endGame() {
	if s.state.end() {
		s.events = append(s.events, core.Event{Kind: core.EventGameOver})
	}
}

// removeLastEnemy drops the most recently added enemy. Empty lists are left alone.
func (s *Session) removeLastEnemy() {
	if len(s.enemies) == 0 {
		return
	}
	s.enemies = s.enemies[:len(s.enemies)-1]
}

func (s *Session) emitSound(id string) {
	s.events = append(s.events, core.Event{Kind: core.EventSound, Sound: id})
}

// Drain returns the events emitted since the last call and clears the queue.
func (s *Session) Drain() []core.Event {
	events := s.events
	s.events = nil
	return events
}

// State returns the current counters.
func (s *Session) State() State {
	return s.state
}

// Player returns the player.
func (s *Session) Player() Player {
	return s.player
}

// Enemies returns a copy of the active enemies in spawn order.
func (s *Session) Enemies() []Enemy {
	return append([]Enemy(nil), s.enemies...)
}

// Tokens returns a copy of the live tokens.
func (s *Session) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}
