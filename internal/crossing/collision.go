package crossing

import "github.com/vovakirdan/bug-crossing/internal/core"

// Hit box extents. The player's box is shorter than the box of the entity
// it is tested against, matching where the artwork sits inside each tile.
const (
	hitWidth         = 50.0
	playerHitHeight  = 60.0
	subjectHitHeight = 80.0
)

// playerBox returns the player's hit box.
func playerBox(p Player) core.Box {
	return core.NewBox(p.X, p.Y, hitWidth, playerHitHeight)
}

// subjectBox returns the hit box of an enemy or token at (x, y).
func subjectBox(x, y float64) core.Box {
	return core.NewBox(x, y, hitWidth, subjectHitHeight)
}

// HitsEnemy reports whether the player overlaps the enemy.
func HitsEnemy(p Player, e Enemy) bool {
	return playerBox(p).Overlaps(subjectBox(e.X, e.Y))
}

// HitsToken reports whether the player overlaps the token.
func HitsToken(p Player, t Token) bool {
	return playerBox(p).Overlaps(subjectBox(t.X, t.Y))
}

// checkCollisions resolves player-vs-enemy hits. Every overlapping enemy
// costs a life, so two bugs on the player in the same tick cost two. The
// player is reset on each hit and later enemies are tested against the
// reset position. The game ends once lives run out.
func (s *Session) checkCollisions() {
	for _, e := range s.enemies {
		if HitsEnemy(s.player, e) {
			s.emitSound(SoundBite)
			s.player.Reset()
			s.state.Lives--
		}
	}

	if s.state.Lives <= 0 {
		s.endGame()
	}
}

// checkTokenCollisions collects every token the player overlaps. Each
// collected token is replaced by a new one at a random lane position;
// replacements are not tested until the next tick.
func (s *Session) checkTokenCollisions() {
	if len(s.tokens) == 0 {
		return
	}

	remaining := make([]Token, 0, len(s.tokens))
	var spawned []Token
	for _, t := range s.tokens {
		if !HitsToken(s.player, t) {
			remaining = append(remaining, t)
			continue
		}
		s.applyToken(t.Kind)
		s.emitSound(SoundBlip)
		x := LaneX(s.rng)
		y := LaneY(s.rng)
		spawned = append(spawned, NewToken(x, y, s.rng))
	}

	s.tokens = append(remaining, spawned...)
}

// applyToken applies the effect of a collected token. The checks are
// independent so a kind matching several rules would get all of them.
func (s *Session) applyToken(kind TokenKind) {
	if kind.IsGem() {
		s.state.Score += 2
	}
	if kind == TokenHeart {
		s.state.Lives++
	}
	if kind == TokenRock {
		s.state.Score++
	}
	if kind == TokenKey {
		if n := len(s.enemies); n > 3 && n >= s.state.Level {
			s.removeLastEnemy()
		}
		s.state.Score += 5
	}
	if kind == TokenStar {
		s.state.Score += 10
	}
}
