package crossing

// TokenKind is the artwork, and therefore the effect, of a collectible.
type TokenKind int

const (
	TokenGemGreen TokenKind = iota
	TokenGemOrange
	TokenGemBlue
	TokenRock
	TokenKey
	TokenHeart
	TokenStar
	tokenKindCount
)

// TokenKinds lists every kind a token can be drawn as.
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, tokenKindCount)
	for k := TokenKind(0); k < tokenKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsGem reports whether the kind is one of the three gem variants.
func (k TokenKind) IsGem() bool {
	return k == TokenGemGreen || k == TokenGemOrange || k == TokenGemBlue
}

// Sprite returns the sprite identifier for the kind.
func (k TokenKind) Sprite() string {
	switch k {
	case TokenGemGreen:
		return "gem-green"
	case TokenGemOrange:
		return "gem-orange"
	case TokenGemBlue:
		return "gem-blue"
	case TokenRock:
		return "rock"
	case TokenKey:
		return "key"
	case TokenHeart:
		return "heart"
	case TokenStar:
		return "star"
	default:
		return "unknown"
	}
}

// String returns the sprite identifier.
func (k TokenKind) String() string {
	return k.Sprite()
}

// Token is a collectible resting on the board.
type Token struct {
	X, Y float64
	Kind TokenKind
}

// NewToken creates a token at (x, y) with a kind drawn uniformly from all kinds.
func NewToken(x, y float64, rng Rand) Token {
	return Token{X: x, Y: y, Kind: RandomTokenKind(rng)}
}

// RandomTokenKind draws one of the token kinds, each with equal probability.
func RandomTokenKind(rng Rand) TokenKind {
	return TokenKind(rng.Intn(int(tokenKindCount)))
}
