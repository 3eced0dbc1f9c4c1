package ddz

// Shape is the closed classification of a hand.
type Shape uint8

const (
	Mess Shape = iota
	Single
	Pair
	Triple
	TriplePlusSingle
	TriplePlusPair
	Straight
	PairStraight
	TripleStraight
	TripleStraightWithWings
	QuadPlusTwoSingles
	QuadPlusTwoPairs
	Bomb
	Rocket
)

// Shapes lists every shape in declaration order.
var Shapes = [...]Shape{
	Mess, Single, Pair, Triple, TriplePlusSingle, TriplePlusPair,
	Straight, PairStraight, TripleStraight, TripleStraightWithWings,
	QuadPlusTwoSingles, QuadPlusTwoPairs, Bomb, Rocket,
}

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case Mess:
		return "Mess"
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Triple:
		return "Triple"
	case TriplePlusSingle:
		return "Triple + Single"
	case TriplePlusPair:
		return "Triple + Pair"
	case Straight:
		return "Straight"
	case PairStraight:
		return "Pair Straight"
	case TripleStraight:
		return "Airplane"
	case TripleStraightWithWings:
		return "Airplane + Wings"
	case QuadPlusTwoSingles:
		return "Quad + Two Singles"
	case QuadPlusTwoPairs:
		return "Quad + Two Pairs"
	case Bomb:
		return "Bomb"
	case Rocket:
		return "Rocket"
	default:
		return "Unknown"
	}
}

// tracks returns the number of interleaved tracks of a straight-family
// shape, or 0 for any other shape.
func (s Shape) tracks() int {
	switch s {
	case Straight:
		return 1
	case PairStraight:
		return 2
	case TripleStraight:
		return 3
	default:
		return 0
	}
}
