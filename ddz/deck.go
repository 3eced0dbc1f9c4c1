package ddz

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck is the full 54-card box. It only seeds hands; nothing in the
// classifier or enumerator depends on it.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG. A nil rng falls
// back to the runtime's global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(i + 1)
	}
	d.Shuffle()
	return d
}

// Shuffle restores every card and shuffles using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck. It returns nil when fewer
// than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Split deals every remaining card into hands of size cards; the final hand
// holds whatever is left over (three cards for a standard 17-card deal).
func (d *Deck) Split(size int) ([]Hand, error) {
	if size <= 0 || size > DeckSize {
		return nil, fmt.Errorf("hand size %d outside 1..%d", size, DeckSize)
	}
	var hands []Hand
	for d.CardsRemaining() > 0 {
		n := min(size, d.CardsRemaining())
		hands = append(hands, newHand(d.Deal(n)))
	}
	return hands, nil
}
