package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
		empty         bool
	}{
		{"board row", NewRect(15, 2, 50, 3), 65, 5, false},
		{"single cell", NewRect(0, 0, 1, 1), 1, 1, false},
		{"zero width", NewRect(4, 4, 0, 3), 4, 7, true},
		{"negative height", NewRect(4, 4, 3, -1), 7, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Right(); got != tc.right {
				t.Errorf("Right() = %d, expected %d", got, tc.right)
			}
			if got := tc.r.Bottom(); got != tc.bottom {
				t.Errorf("Bottom() = %d, expected %d", got, tc.bottom)
			}
			if got := tc.r.Empty(); got != tc.empty {
				t.Errorf("Empty() = %v, expected %v", got, tc.empty)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	// Player box is 50x60, enemy box is 50x80, matching sprite artwork.
	player := func(x, y float64) Box { return NewBox(x, y, 50, 60) }
	enemy := func(x, y float64) Box { return NewBox(x, y, 50, 80) }

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"same position", player(200, 400), enemy(200, 400), true},
		{"far apart", player(400, 400), enemy(0, 50), false},
		{"touching right edge", player(250, 400), enemy(200, 400), false},
		{"one unit inside right edge", player(249, 400), enemy(200, 400), true},
		{"enemy just above player reach", player(200, 400), enemy(200, 320), false},
		{"enemy tail overlapping player top", player(200, 400), enemy(200, 321), true},
		{"enemy below player foot", player(200, 240), enemy(200, 300), false},
		{"enemy just inside player foot", player(200, 240), enemy(200, 299), true},
		{"fractional enemy x", player(200, 50), enemy(150.5, 50), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsAsymmetricExtent(t *testing.T) {
	// With different extents the test is not symmetric in its operands.
	a := NewBox(0, 0, 50, 60)
	b := NewBox(0, 70, 50, 80)

	if a.Overlaps(b) {
		t.Error("a (height 60) should not reach b at y=70")
	}
	if !b.Overlaps(NewBox(0, 0, 50, 80)) {
		t.Error("b (height 80) at y=70 should overlap a box of height 80 at y=0")
	}
}
