package ddz

import "fmt"

// Card is a physical card identified by an integer in [1,54].
// Identifiers 1..52 are four suits of thirteen faces (A,2,3..K), 53 is the
// little joker and 54 the big joker. The zero value is not a valid card.
type Card uint8

// Card identifiers for the two jokers.
const (
	LittleJoker Card = 53
	BigJoker    Card = 54
)

// DeckSize is the number of cards in a full deck including both jokers.
const DeckSize = 54

// Suit of a card. Jokers carry their own suits so that sorting by
// (rank, suit) stays total.
type Suit int8

const (
	SuitUndefined Suit = iota - 1
	Clubs
	Diamonds
	Hearts
	Spades
	SuitLittleJoker
	SuitBigJoker
)

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case SuitLittleJoker, SuitBigJoker:
		return "★"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is printed red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts || s == SuitBigJoker
}

// Rank is the comparison-only value of a card. It is monotonic in game
// significance: 3 is the lowest, then 4..K, A, 2 and the two jokers.
type Rank uint8

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	Rank2
	RankLittleJoker
	RankBigJoker
)

// MinRank and MaxRank bound every valid rank.
const (
	MinRank = Rank3
	MaxRank = RankBigJoker
)

// String returns the face of the rank.
func (r Rank) String() string {
	switch {
	case r >= Rank3 && r <= Rank10:
		return fmt.Sprintf("%d", int(r))
	case r == RankJ:
		return "J"
	case r == RankQ:
		return "Q"
	case r == RankK:
		return "K"
	case r == RankA:
		return "A"
	case r == Rank2:
		return "2"
	case r == RankLittleJoker:
		return "LJ"
	case r == RankBigJoker:
		return "BJ"
	default:
		return "?"
	}
}

// NewCard validates an integer identifier.
func NewCard(id int) (Card, error) {
	if id < 1 || id > DeckSize {
		return 0, fmt.Errorf("%w: identifier %d outside 1..%d", ErrInvalidCard, id, DeckSize)
	}
	return Card(id), nil
}

// CardOf returns the card with the given rank and suit. Jokers ignore the suit.
func CardOf(rank Rank, suit Suit) (Card, error) {
	switch rank {
	case RankLittleJoker:
		return LittleJoker, nil
	case RankBigJoker:
		return BigJoker, nil
	}
	if rank < Rank3 || rank > Rank2 {
		return 0, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if suit < Clubs || suit > Spades {
		return 0, fmt.Errorf("%w: suit %d for rank %s", ErrInvalidCard, suit, rank)
	}
	// Face index 0 is the ace, 1 the two, 2 the three and so on.
	face := int(rank) - 1
	if rank >= RankA {
		face = int(rank) - int(RankA)
	}
	return Card(int(suit)*13 + face + 1), nil
}

// ID returns the integer identifier.
func (c Card) ID() int {
	return int(c)
}

// Valid reports whether c is a card identifier in [1,54].
func (c Card) Valid() bool {
	return c >= 1 && c <= DeckSize
}

// Suit returns the card's suit, SuitUndefined for the zero card.
func (c Card) Suit() Suit {
	switch {
	case c == LittleJoker:
		return SuitLittleJoker
	case c == BigJoker:
		return SuitBigJoker
	case c == 0 || c > DeckSize:
		return SuitUndefined
	}
	return Suit((int(c) - 1) / 13)
}

// Rank returns the comparison rank of the card.
func (c Card) Rank() Rank {
	switch c {
	case LittleJoker:
		return RankLittleJoker
	case BigJoker:
		return RankBigJoker
	}
	n := int(c) % 13
	if n < 3 {
		n += 13
	}
	return Rank(n)
}

// Face returns the printed face without a suit (A, 2..10, J, Q, K, LJ, BJ).
func (c Card) Face() string {
	if !c.Valid() {
		return "?"
	}
	return c.Rank().String()
}

// String returns the face followed by the suit symbol; jokers print bare.
func (c Card) String() string {
	if c == LittleJoker || c == BigJoker || !c.Valid() {
		return c.Face()
	}
	return c.Face() + c.Suit().String()
}

// compareCards orders cards by (rank, suit).
func compareCards(a, b Card) int {
	if ra, rb := a.Rank(), b.Rank(); ra != rb {
		return int(ra) - int(rb)
	}
	return int(a.Suit()) - int(b.Suit())
}

// IDs converts cards to their integer identifiers.
func IDs(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID()
	}
	return ids
}
