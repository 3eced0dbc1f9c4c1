package ddz

import "slices"

// Straight runs may only use ranks 3..K.
const maxRunRank = RankK

// Minimum lengths of the straight family.
const (
	minStraightLen   = 5
	minMultiRunRanks = 3
)

// Classify returns the shape of an arbitrary card list. The input is not
// modified and its order does not matter.
func Classify(cards []Card) Shape {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, compareCards)
	b := newBuckets(sorted)
	return classify(sorted, &b)
}

// classify evaluates the shape predicates in priority order. Several
// predicates only become mutually exclusive once higher ones have failed,
// so the order is significant.
func classify(cards []Card, b *Buckets) Shape {
	switch {
	case isRocket(cards):
		return Rocket
	case isSameRank(cards, 4):
		return Bomb
	case len(cards) == 1:
		return Single
	case isSameRank(cards, 2):
		return Pair
	case isSameRank(cards, 3):
		return Triple
	case isTriplePlus(cards, b, 1):
		return TriplePlusSingle
	case isTriplePlus(cards, b, 2):
		return TriplePlusPair
	case isStraight(cards):
		return Straight
	case isMultiStraight(cards, 2):
		return PairStraight
	case isMultiStraight(cards, 3):
		return TripleStraight
	case isTripleStraightWithWings(b):
		return TripleStraightWithWings
	case isQuadPlus(cards, b, 1):
		return QuadPlusTwoSingles
	case isQuadPlus(cards, b, 2):
		return QuadPlusTwoPairs
	}
	return Mess
}

func isRocket(cards []Card) bool {
	return len(cards) == 2 &&
		cards[0].Rank() == RankLittleJoker &&
		cards[1].Rank() == RankBigJoker
}

func isSameRank(cards []Card, n int) bool {
	if len(cards) != n {
		return false
	}
	r := cards[0].Rank()
	for _, c := range cards[1:] {
		if c.Rank() != r {
			return false
		}
	}
	return true
}

// isTriplePlus matches a triple with an attachment of k cards of one rank.
func isTriplePlus(cards []Card, b *Buckets, k int) bool {
	if len(cards) != 3+k {
		return false
	}
	triples, attachments := 0, 0
	for _, r := range b.Ranks() {
		switch b.Count(r) {
		case 3:
			triples++
		case k:
			attachments++
		default:
			return false
		}
	}
	return triples == 1 && attachments == 1
}

// isQuadPlus matches four of a kind with two attachments of k cards, each
// from a distinct rank.
func isQuadPlus(cards []Card, b *Buckets, k int) bool {
	if len(cards) != 4+2*k {
		return false
	}
	quads, attachments := 0, 0
	for _, r := range b.Ranks() {
		switch b.Count(r) {
		case 4:
			quads++
		case k:
			attachments++
		default:
			return false
		}
	}
	return quads == 1 && attachments == 2
}

func isStraight(cards []Card) bool {
	if len(cards) < minStraightLen {
		return false
	}
	return isRun(cards)
}

// isRun reports whether the cards form strictly consecutive ranks within 3..K.
func isRun(cards []Card) bool {
	for i, c := range cards {
		r := c.Rank()
		if r > maxRunRank {
			return false
		}
		if i > 0 && r != cards[i-1].Rank()+1 {
			return false
		}
	}
	return len(cards) > 0
}

// isMultiStraight splits sorted cards into n interleaved tracks by position
// and requires every track to be the same run of at least three ranks.
func isMultiStraight(cards []Card, n int) bool {
	if len(cards)%n != 0 || len(cards) < minMultiRunRanks*n {
		return false
	}
	tracks := make([][]Card, n)
	for i, c := range cards {
		tracks[i%n] = append(tracks[i%n], c)
	}
	if !isRun(tracks[0]) {
		return false
	}
	for _, track := range tracks[1:] {
		for i, c := range track {
			if c.Rank() != tracks[0][i].Rank() {
				return false
			}
		}
	}
	return true
}

// isTripleStraightWithWings splits the hand into the first three cards of
// every rank holding three or more (the airplane) and the remainder (the
// wings). The airplane must be a triple straight; the wings must be one
// single or one pair per triple.
func isTripleStraightWithWings(b *Buckets) bool {
	body, wings := b.split(3)
	if len(wings) == 0 || !isMultiStraight(body, 3) {
		return false
	}
	units := len(body) / 3
	switch len(wings) {
	case units:
		return true
	case 2 * units:
		for i := 0; i < len(wings); i += 2 {
			if wings[i].Rank() != wings[i+1].Rank() {
				return false
			}
		}
		return true
	default:
		return false
	}
}
