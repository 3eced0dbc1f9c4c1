package ddz

import "fmt"

// Tier is the coarse ordering class used for cross-shape dominance.
type Tier int8

const (
	TierIncomparable Tier = iota
	TierOrdinary
	TierBomb
	TierRocket
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierIncomparable:
		return "incomparable"
	case TierOrdinary:
		return "ordinary"
	case TierBomb:
		return "bomb"
	case TierRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Value is the rank-value descriptor of a classified hand. Rank is the
// single rank used to order two hands of the same tier and length; it is
// meaningless when Tier is TierIncomparable.
type Value struct {
	Tier   Tier
	Length int
	Rank   Rank
}

// String returns a compact description such as "ordinary/5@8".
func (v Value) String() string {
	if v.Tier == TierIncomparable {
		return fmt.Sprintf("%s/%d", v.Tier, v.Length)
	}
	return fmt.Sprintf("%s/%d@%s", v.Tier, v.Length, v.Rank)
}

// valueOf derives the descriptor from a shape and its sorted cards.
func valueOf(shape Shape, cards []Card, b *Buckets) Value {
	v := Value{Length: len(cards)}
	if len(cards) == 0 {
		return v
	}
	top := cards[len(cards)-1].Rank()

	switch shape {
	case Mess:
		v.Tier = TierIncomparable
	case Rocket:
		v.Tier = TierRocket
		v.Rank = top
	case Bomb:
		v.Tier = TierBomb
		v.Rank = top
	case TriplePlusSingle, TriplePlusPair, TripleStraightWithWings:
		v.Tier = TierOrdinary
		v.Rank = dominantRank(b, 3)
	case QuadPlusTwoSingles, QuadPlusTwoPairs:
		v.Tier = TierOrdinary
		v.Rank = dominantRank(b, 4)
	case Single, Pair, Triple, Straight, PairStraight, TripleStraight:
		v.Tier = TierOrdinary
		v.Rank = top
	}
	return v
}

// dominantRank is the highest rank holding at least n cards.
func dominantRank(b *Buckets, n int) Rank {
	main, _ := b.split(n)
	if len(main) == 0 {
		return 0
	}
	return main[len(main)-1].Rank()
}
