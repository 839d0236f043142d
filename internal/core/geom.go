// Package core holds the platform-neutral types shared by the crossing game
// and its drivers: hit boxes, the cell screen, input frames and step results.
// Nothing here imports a terminal or UI library.
package core

// Rect is a rectangle of screen cells, half-open on its right and bottom edges.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the cell rectangle with top-left (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Box is an axis-aligned hit box in board (pixel) coordinates.
// Sprites are not pixel-registered to their tiles, so two boxes tested
// against each other usually have different extents.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a hit box at (x, y) with extent w x h.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Overlaps reports whether b reaches into other. Touching edges do not count.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.X+other.W &&
		b.X+b.W > other.X &&
		b.Y < other.Y+other.H &&
		b.Y+b.H > other.Y
}
