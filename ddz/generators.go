package ddz

import "fmt"

// Generator produces every representative subset of pool that beats target
// within one shape family. Cards of equal rank are interchangeable, so each
// rank contributes its lowest-suited cards. Generators never deplete the
// pool: every candidate is drawn independently.
type Generator func(pool, target Hand) ([][]Card, error)

func checkShape(op string, target Hand, want ...Shape) error {
	for _, s := range want {
		if target.Shape() == s {
			return nil
		}
	}
	return fmt.Errorf("%s: %w: target is %s", op, ErrInvalidShape, target.Shape())
}

// FindSingles returns every higher single.
func FindSingles(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find singles", target, Single); err != nil {
		return nil, err
	}
	return findSame(pool, target, 1), nil
}

// FindPairs returns every higher pair.
func FindPairs(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find pairs", target, Pair); err != nil {
		return nil, err
	}
	return findSame(pool, target, 2), nil
}

// FindTriples returns every higher triple.
func FindTriples(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find triples", target, Triple); err != nil {
		return nil, err
	}
	return findSame(pool, target, 3), nil
}

// FindTriplePlusSingles returns every higher triple with one attached card.
func FindTriplePlusSingles(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find triple plus singles", target, TriplePlusSingle); err != nil {
		return nil, err
	}
	return findTriplePlus(pool, target, 1), nil
}

// FindTriplePlusPairs returns every higher triple with one attached pair.
func FindTriplePlusPairs(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find triple plus pairs", target, TriplePlusPair); err != nil {
		return nil, err
	}
	return findTriplePlus(pool, target, 2), nil
}

// FindStraights returns every higher straight of the target's length.
func FindStraights(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find straights", target, Straight); err != nil {
		return nil, err
	}
	return findStraightFamily(pool, target), nil
}

// FindPairStraights returns every higher pair straight of the target's length.
func FindPairStraights(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find pair straights", target, PairStraight); err != nil {
		return nil, err
	}
	return findStraightFamily(pool, target), nil
}

// FindTripleStraights returns every higher airplane without wings.
func FindTripleStraights(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find triple straights", target, TripleStraight); err != nil {
		return nil, err
	}
	return findStraightFamily(pool, target), nil
}

// FindTripleStraightsWithWings returns every higher airplane carrying the
// same number and kind of wings as the target. Wings come from distinct
// ranks; a rank inside the airplane can only lend the cards its triple
// leaves over.
func FindTripleStraightsWithWings(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find triple straights with wings", target, TripleStraightWithWings); err != nil {
		return nil, err
	}
	body, wings := target.bucketsRef().split(3)
	units := len(body) / 3
	if units == 0 || len(wings)%units != 0 {
		return nil, fmt.Errorf("find triple straights with wings: %w: %d wing cards for %d triples", ErrInvalidShape, len(wings), units)
	}
	wingSize := len(wings) / units

	var out [][]Card
	b := pool.bucketsRef()
	for _, run := range findRuns(pool, units, target.Value().Rank, 3) {
		low, high := run[0].Rank(), run[len(run)-1].Rank()

		// A rank inside the run only offers what is left above its triple.
		var sources [][]Card
		for r := MinRank; r <= MaxRank; r++ {
			cards := b[r]
			if r >= low && r <= high {
				cards = cards[3:]
			}
			if len(cards) >= wingSize {
				sources = append(sources, cards[:wingSize])
			}
		}
		combinations(len(sources), units, func(idx []int) {
			cand := make([]Card, 0, len(run)+units*wingSize)
			cand = append(cand, run...)
			for _, i := range idx {
				cand = append(cand, sources[i]...)
			}
			out = append(out, cand)
		})
	}
	return out, nil
}

// FindQuadPlusTwoSingles returns every higher four of a kind with two
// single cards of distinct ranks.
func FindQuadPlusTwoSingles(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find quad plus two singles", target, QuadPlusTwoSingles); err != nil {
		return nil, err
	}
	return findQuadPlus(pool, target, 1), nil
}

// FindQuadPlusTwoPairs returns every higher four of a kind with two pairs
// of distinct ranks.
func FindQuadPlusTwoPairs(pool, target Hand) ([][]Card, error) {
	if err := checkShape("find quad plus two pairs", target, QuadPlusTwoPairs); err != nil {
		return nil, err
	}
	return findQuadPlus(pool, target, 2), nil
}

// FindBombs returns every bomb in pool that beats target. Any bomb beats an
// ordinary hand; against a bomb only a higher rank wins; nothing but the
// rocket beats a rocket.
func FindBombs(pool, target Hand) [][]Card {
	v := target.Value()
	if v.Tier == TierIncomparable || v.Tier == TierRocket {
		return nil
	}
	var out [][]Card
	b := pool.bucketsRef()
	for r := MinRank; r <= MaxRank; r++ {
		if b.Count(r) != 4 {
			continue
		}
		if v.Tier == TierBomb && r <= v.Rank {
			continue
		}
		out = append(out, b.Take(r, 4))
	}
	return out
}

// FindRocket returns the rocket when pool holds both jokers and target is
// a legal play other than the rocket itself.
func FindRocket(pool, target Hand) []Card {
	v := target.Value()
	if v.Tier == TierIncomparable || v.Tier == TierRocket {
		return nil
	}
	if !pool.Contains(LittleJoker) || !pool.Contains(BigJoker) {
		return nil
	}
	return []Card{LittleJoker, BigJoker}
}

// findSame emits the first k cards of every rank above the target holding
// at least k cards.
func findSame(pool, target Hand, k int) [][]Card {
	var out [][]Card
	b := pool.bucketsRef()
	for r := target.Value().Rank + 1; r <= MaxRank; r++ {
		if cards := b.Take(r, k); cards != nil {
			out = append(out, cards)
		}
	}
	return out
}

// findTriplePlus crosses every higher triple with every other rank able to
// supply k cards. A rank holding four cards may supply the attachment.
func findTriplePlus(pool, target Hand, k int) [][]Card {
	var out [][]Card
	b := pool.bucketsRef()
	attachments := b.RanksWith(k)
	for r := target.Value().Rank + 1; r <= MaxRank; r++ {
		main := b.Take(r, 3)
		if main == nil {
			continue
		}
		for _, a := range attachments {
			if a == r {
				continue
			}
			cand := make([]Card, 0, 3+k)
			cand = append(cand, main...)
			cand = append(cand, b.Take(a, k)...)
			out = append(out, cand)
		}
	}
	return out
}

// findStraightFamily answers a straight, pair straight or triple straight
// with runs of the same number of ranks.
func findStraightFamily(pool, target Hand) [][]Card {
	tracks := target.Shape().tracks()
	return findRuns(pool, target.Len()/tracks, target.Value().Rank, tracks)
}

// findRuns emits every run of length consecutive ranks, tracks cards per
// rank, whose top rank is above floor. Runs are emitted by ascending top
// rank with cards low to high.
func findRuns(pool Hand, length int, floor Rank, tracks int) [][]Card {
	if length <= 0 {
		return nil
	}
	var out [][]Card
	b := pool.bucketsRef()
	first := max(int(floor)+1, int(MinRank)+length-1)
	for top := first; top <= int(maxRunRank); top++ {
		run := make([]Card, 0, length*tracks)
		for r := top - length + 1; r <= top; r++ {
			cards := b.Take(Rank(r), tracks)
			if cards == nil {
				run = nil
				break
			}
			run = append(run, cards...)
		}
		if run != nil {
			out = append(out, run)
		}
	}
	return out
}

// findQuadPlus crosses every higher four-card rank with every pair of
// distinct other ranks able to supply k cards each.
func findQuadPlus(pool, target Hand, k int) [][]Card {
	var out [][]Card
	b := pool.bucketsRef()
	for r := target.Value().Rank + 1; r <= MaxRank; r++ {
		if b.Count(r) != 4 {
			continue
		}
		main := b.Take(r, 4)
		var sources []Rank
		for _, a := range b.RanksWith(k) {
			if a != r {
				sources = append(sources, a)
			}
		}
		combinations(len(sources), 2, func(idx []int) {
			cand := make([]Card, 0, 4+2*k)
			cand = append(cand, main...)
			for _, i := range idx {
				cand = append(cand, b.Take(sources[i], k)...)
			}
			out = append(out, cand)
		})
	}
	return out
}

// combinations calls fn with every k-subset of 0..n-1 in lexicographic
// order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
