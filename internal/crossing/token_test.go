package crossing

import (
	"math/rand"
	"testing"
)

func TestRandomTokenKindCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	counts := map[TokenKind]int{}

	const draws = 7000
	for i := 0; i < draws; i++ {
		k := RandomTokenKind(rng)
		if k < 0 || k >= tokenKindCount {
			t.Fatalf("kind %d outside the enumeration", k)
		}
		counts[k]++
	}

	for _, k := range TokenKinds() {
		n := counts[k]
		if n < 800 || n > 1200 {
			t.Errorf("kind %v drawn %d times out of %d, expected roughly a seventh", k, n, draws)
		}
	}
}

func TestRandomTokenKindEnds(t *testing.T) {
	if k := RandomTokenKind(&scriptedRand{ints: []int{0}}); k != TokenGemGreen {
		t.Errorf("draw 0 = %v, expected gem-green", k)
	}
	if k := RandomTokenKind(&scriptedRand{ints: []int{6}}); k != TokenStar {
		t.Errorf("draw 6 = %v, expected star", k)
	}
}

func TestTokenKinds(t *testing.T) {
	kinds := TokenKinds()
	if len(kinds) != 7 {
		t.Fatalf("expected 7 kinds, got %d", len(kinds))
	}

	gems := 0
	seen := map[string]bool{}
	for _, k := range kinds {
		if k.IsGem() {
			gems++
		}
		if seen[k.Sprite()] {
			t.Errorf("duplicate sprite %q", k.Sprite())
		}
		seen[k.Sprite()] = true
	}
	if gems != 3 {
		t.Errorf("expected 3 gem variants, got %d", gems)
	}
}
