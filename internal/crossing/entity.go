package crossing

// Board geometry in pixels.
const (
	StartX = 200.0 // Player start column
	StartY = 400.0 // Player start row
	GoalY  = 20.0  // Rows above this line are the water

	WrapX      = 550.0 // Enemies past this x leave the board
	WrapResetX = -50.0 // and re-enter here, same lane

	StepY = 80.0  // Vertical move per key press
	StepX = 100.0 // Horizontal move per key press

	jitterScale = 4.0
)

// Sprite identifiers handed to the renderer.
const (
	SpriteEnemy  = "enemy-bug"
	SpritePlayer = "char-boy"
)

// Direction is a discrete player move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Enemy is a bug travelling left to right along a lane.
type Enemy struct {
	X, Y  float64
	Speed float64
}

// Update moves the enemy by speed*u*4*dt, where u is a fresh uniform draw
// taken on every call, so movement jitters from tick to tick. An enemy past
// the right edge wraps to the left of the board on the same lane.
func (e *Enemy) Update(dt float64, rng Rand) {
	e.X += e.Speed * rng.Float64() * jitterScale * dt
	if e.X > WrapX {
		e.X = WrapResetX
	}
}

// Player is the character crossing the board.
type Player struct {
	X, Y float64

	startX, startY float64
}

// NewPlayer creates a player standing on its start point.
func NewPlayer(startX, startY float64) Player {
	return Player{X: startX, Y: startY, startX: startX, startY: startY}
}

// Reset returns the player to its start point.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.startY
}

// Update checks for the goal row. A player that reached the water is sent
// back to the start and Update reports true.
func (p *Player) Update() bool {
	if p.Y < GoalY {
		p.Reset()
		return true
	}
	return false
}

// Move applies one step in the given direction. Each direction has its own
// edge threshold; the left/right and up/down limits are not symmetric
// because sprites are drawn offset from their tiles.
func (p *Player) Move(d Direction) {
	switch d {
	case DirUp:
		if p.Y > 0 {
			p.Y -= StepY
		}
	case DirDown:
		if p.Y < 350 {
			p.Y += StepY
		}
	case DirLeft:
		if p.X > 80 {
			p.X -= StepX
		}
	case DirRight:
		if p.X < 350 {
			p.X += StepX
		}
	}
}
