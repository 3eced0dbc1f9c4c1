package ddz

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is an immutable, rank-sorted collection of cards with its shape and
// rank-value descriptor computed at construction. The zero Hand is empty
// and classifies as Mess.
type Hand struct {
	cards   []Card
	buckets *Buckets
	shape   Shape
	value   Value
}

var emptyBuckets Buckets

// NewHand builds a hand from integer card identifiers. Identifiers must be
// in 1..54 and unique.
func NewHand(ids ...int) (Hand, error) {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		c, err := NewCard(id)
		if err != nil {
			return Hand{}, err
		}
		cards[i] = c
	}
	return HandOf(cards...)
}

// HandOf builds a hand from cards. The cards must be valid and unique; the
// argument slice is copied.
func HandOf(cards ...Card) (Hand, error) {
	if err := validate(cards); err != nil {
		return Hand{}, err
	}
	return newHand(slices.Clone(cards)), nil
}

// MustHand builds a hand from identifiers and panics on error (for tests)
func MustHand(ids ...int) Hand {
	h, err := NewHand(ids...)
	if err != nil {
		panic(fmt.Sprintf("invalid hand %v: %v", ids, err))
	}
	return h
}

// ParseHand parses card tokens (see ParseCards) into a hand.
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return HandOf(cards...)
}

// newHand takes ownership of already validated cards.
func newHand(cards []Card) Hand {
	slices.SortFunc(cards, compareCards)
	b := newBuckets(cards)
	h := Hand{cards: cards, buckets: &b}
	h.shape = classify(cards, &b)
	h.value = valueOf(h.shape, cards, &b)
	return h
}

func validate(cards []Card) error {
	var seen [DeckSize + 1]bool
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: identifier %d outside 1..%d", ErrInvalidCard, c, DeckSize)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s (%d)", ErrDuplicateCard, c, c.ID())
		}
		seen[c] = true
	}
	return nil
}

// Cards returns a copy of the sorted cards.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// IDs returns the sorted card identifiers.
func (h Hand) IDs() []int {
	return IDs(h.cards)
}

// Values returns the rank of every card, ascending.
func (h Hand) Values() []Rank {
	ranks := make([]Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.Rank()
	}
	return ranks
}

// Len returns the number of cards.
func (h Hand) Len() int {
	return len(h.cards)
}

// Shape returns the classified shape.
func (h Hand) Shape() Shape {
	return h.shape
}

// Value returns the rank-value descriptor.
func (h Hand) Value() Value {
	return h.value
}

// Contains reports whether the hand holds card c.
func (h Hand) Contains(c Card) bool {
	return slices.Contains(h.bucketsRef()[c.Rank()], c)
}

// Buckets returns a deep copy of the rank buckets.
func (h Hand) Buckets() Buckets {
	var out Buckets
	for r, cards := range h.bucketsRef() {
		out[r] = slices.Clone(cards)
	}
	return out
}

func (h Hand) bucketsRef() *Buckets {
	if h.buckets == nil {
		return &emptyBuckets
	}
	return h.buckets
}

// Compare orders h against other.
func (h Hand) Compare(other Hand) Comparison {
	return Compare(h, other)
}

// Beats reports whether h is strictly greater than other.
func (h Hand) Beats(other Hand) bool {
	return Compare(h, other) == Greater
}

// String returns the cards and shape, e.g. "[3♣ 3♦ 3♥ 3♠] Bomb".
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("[%s] %s", strings.Join(parts, " "), h.shape)
}
