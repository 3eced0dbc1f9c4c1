package ddz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   int
		rank Rank
		suit Suit
		str  string
	}{
		{1, RankA, Clubs, "A♣"},
		{2, Rank2, Clubs, "2♣"},
		{3, Rank3, Clubs, "3♣"},
		{10, Rank10, Clubs, "10♣"},
		{13, RankK, Clubs, "K♣"},
		{14, RankA, Diamonds, "A♦"},
		{16, Rank3, Diamonds, "3♦"},
		{29, Rank3, Hearts, "3♥"},
		{42, Rank3, Spades, "3♠"},
		{52, RankK, Spades, "K♠"},
		{53, RankLittleJoker, SuitLittleJoker, "LJ"},
		{54, RankBigJoker, SuitBigJoker, "BJ"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			c, err := NewCard(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.str, c.String())
			assert.Equal(t, tt.id, c.ID())
		})
	}
}

func TestCardZeroValue(t *testing.T) {
	t.Parallel()
	var c Card
	assert.False(t, c.Valid())
	assert.Equal(t, SuitUndefined, c.Suit())
	assert.Equal(t, "?", c.String())
}

func TestNewCardRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	for _, id := range []int{-1, 0, 55, 100} {
		_, err := NewCard(id)
		assert.True(t, errors.Is(err, ErrInvalidCard), "id %d", id)
	}
}

func TestRankIsMonotonicInSignificance(t *testing.T) {
	t.Parallel()
	order := []Rank{Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA, Rank2, RankLittleJoker, RankBigJoker}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1], order[i])
	}

	// Every rank 3..2 appears exactly four times in a deck; each joker once.
	var counts [MaxRank + 1]int
	for id := 1; id <= DeckSize; id++ {
		counts[Card(id).Rank()]++
	}
	for r := Rank3; r <= Rank2; r++ {
		assert.Equal(t, 4, counts[r], "rank %s", r)
	}
	assert.Equal(t, 1, counts[RankLittleJoker])
	assert.Equal(t, 1, counts[RankBigJoker])
}

func TestCardOfRoundTrip(t *testing.T) {
	t.Parallel()
	for id := 1; id <= 52; id++ {
		c := Card(id)
		got, err := CardOf(c.Rank(), c.Suit())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	lj, err := CardOf(RankLittleJoker, SuitUndefined)
	require.NoError(t, err)
	assert.Equal(t, LittleJoker, lj)

	_, err = CardOf(Rank(2), Clubs)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = CardOf(Rank5, SuitBigJoker)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "14", want: 14},
		{input: "3c", want: 3},
		{input: "3s", want: 42},
		{input: "10h", want: 36},
		{input: "th", want: 36},
		{input: "Ac", want: 1},
		{input: "2D", want: 15},
		{input: "Ks", want: 52},
		{input: "LJ", want: LittleJoker},
		{input: "bj", want: BigJoker},
		{input: "0", wantErr: true},
		{input: "55", wantErr: true},
		{input: "Xs", wantErr: true},
		{input: "3x", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("3c 3d, 3h\t3s")
	require.NoError(t, err)
	assert.Equal(t, []Card{3, 16, 29, 42}, cards)

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("3c zz")
	assert.ErrorIs(t, err, ErrInvalidCard)

	assert.Panics(t, func() { MustParseCards("nope") })
}
