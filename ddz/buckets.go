package ddz

// Buckets groups a hand's cards by rank. Index r holds every card of rank r
// in (rank, suit) order. It is built once per Hand and shared read-only by
// the classifier and the response enumerator.
type Buckets [MaxRank + 1][]Card

// newBuckets groups cards, which must already be sorted.
func newBuckets(sorted []Card) Buckets {
	var b Buckets
	for _, c := range sorted {
		r := c.Rank()
		b[r] = append(b[r], c)
	}
	return b
}

// Count returns how many cards of rank r are present.
func (b *Buckets) Count(r Rank) int {
	if r > MaxRank {
		return 0
	}
	return len(b[r])
}

// Take returns the first n cards of rank r, or nil when fewer are present.
// The result is a fresh slice.
func (b *Buckets) Take(r Rank, n int) []Card {
	if b.Count(r) < n {
		return nil
	}
	out := make([]Card, n)
	copy(out, b[r][:n])
	return out
}

// Ranks returns the ranks present, ascending.
func (b *Buckets) Ranks() []Rank {
	var ranks []Rank
	for r := MinRank; r <= MaxRank; r++ {
		if len(b[r]) > 0 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// RanksWith returns the ranks holding at least n cards, ascending.
func (b *Buckets) RanksWith(n int) []Rank {
	var ranks []Rank
	for r := MinRank; r <= MaxRank; r++ {
		if len(b[r]) >= n {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// split separates the first size cards of every rank holding at least size
// cards (main) from everything else (rest). Both results stay sorted.
func (b *Buckets) split(size int) (main, rest []Card) {
	for r := MinRank; r <= MaxRank; r++ {
		cards := b[r]
		if len(cards) >= size {
			main = append(main, cards[:size]...)
			rest = append(rest, cards[size:]...)
			continue
		}
		rest = append(rest, cards...)
	}
	return main, rest
}
