// Package crossing implements Bug Crossing, a frogger-style arcade game.
// The player crosses a board of enemy lanes to reach the water, dodging
// bugs that move with random jitter and collecting bonus tokens.
//
// All logic runs in board pixel coordinates: five columns 101 units wide
// and a start row at y=400 below three enemy lanes.
package crossing

// Rand is the random source used for spawns and enemy jitter.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Enemy lanes and token columns.
var (
	laneYs = [...]float64{50, 150, 240}
	laneXs = [...]float64{0, 101, 202, 303, 403}
)

// LaneY returns one of the three enemy lane rows with equal probability.
func LaneY(rng Rand) float64 {
	return laneYs[partition(rng.Float64(), len(laneYs))]
}

// LaneX returns one of the five board columns with equal probability.
func LaneX(rng Rand) float64 {
	return laneXs[partition(rng.Float64(), len(laneXs))]
}

// partition maps a draw in [0, 1) onto n equal slices of the unit interval.
// Draws outside the interval are clamped to the first or last slice.
func partition(u float64, n int) int {
	i := int(u * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
