package ddz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ddz/internal/randutil"
)

func mustParseHand(t *testing.T, s string) Hand {
	t.Helper()
	h, err := ParseHand(s)
	require.NoError(t, err, "parse %q", s)
	return h
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		shape Shape
		rank  Rank
	}{
		{"single three", "3c", Single, Rank3},
		{"single big joker", "BJ", Single, RankBigJoker},
		{"pair", "7c 7h", Pair, Rank7},
		{"mismatched pair", "7c 8h", Mess, 0},
		{"rocket", "LJ BJ", Rocket, RankBigJoker},
		{"triple", "Qc Qd Qs", Triple, RankQ},
		{"bomb of threes", "3c 3d 3h 3s", Bomb, Rank3},
		{"triple plus single", "5c 5d 5h 9s", TriplePlusSingle, Rank5},
		{"triple plus single uses triple rank", "Kc 9d 9h 9s", TriplePlusSingle, Rank9},
		{"triple plus joker", "5c 5d 5h BJ", TriplePlusSingle, Rank5},
		{"triple plus pair", "Kc Kd Kh 3s 3c", TriplePlusPair, RankK},
		{"triple plus two singles", "5c 5d 5h 9s 8s", Mess, 0},
		{"straight", "3c 4d 5h 6s 7c", Straight, Rank7},
		{"long straight", "3c 4d 5h 6s 7c 8c 9c 10c Jc Qc Kc", Straight, RankK},
		{"straight with ace", "10c Jd Qh Ks Ac", Mess, 0},
		{"straight with two", "2c 3d 4h 5s 6c", Mess, 0},
		{"four card run", "3c 4d 5h 6s", Mess, 0},
		{"gapped run", "3c 4d 5h 6s 8c", Mess, 0},
		{"pair straight", "3c 3d 4c 4d 5c 5d", PairStraight, Rank5},
		{"two pairs", "3c 3d 4c 4d", Mess, 0},
		{"pair straight with ace", "Qc Qd Kc Kd Ac Ad", Mess, 0},
		{"triple straight", "3c 3d 3h 4c 4d 4h 5c 5d 5h", TripleStraight, Rank5},
		{"two triples", "3c 3d 3h 4c 4d 4h", Mess, 0},
		{"wings of singles", "3c 3d 3h 4c 4d 4h 5c 5d 5h 9c Jd Kh", TripleStraightWithWings, Rank5},
		{"wings of jokers keep airplane rank", "3c 3d 3h 4c 4d 4h 5c 5d 5h 9c LJ BJ", TripleStraightWithWings, Rank5},
		{"wings of pairs", "3c 3d 3h 4c 4d 4h 5c 5d 5h 9c 9d Jc Jd Kc Kd", TripleStraightWithWings, Rank5},
		{"wings of broken pairs", "3c 3d 3h 4c 4d 4h 5c 5d 5h 9c 9d Jc Qd Kc Kd", Mess, 0},
		{"too few wings", "3c 3d 3h 4c 4d 4h 5c 5d 5h 9c Jd", Mess, 0},
		{"sixteen cards with single wings", "3c 3d 3h 4c 4d 4h 5c 5d 5h 6c 6d 6h 9s Jc Kc Qd", TripleStraightWithWings, Rank6},
		{"wing from a run rank", "4c 4d 4h 4s 5c 5d 5h 6c 6d 6h 9c Jc", TripleStraightWithWings, Rank6},
		{"twenty cards as four triples with pairs", "3c 3d 3h 4c 4d 4h 5c 5d 5h 6c 6d 6h 9s 9c Jc Jd Kc Kd Qc Qd", TripleStraightWithWings, Rank6},
		{"twenty cards as five triples with singles", "3c 3d 3h 4c 4d 4h 5c 5d 5h 6c 6d 6h 7c 7d 7h 9s Jc Kc Qc 2c", TripleStraightWithWings, Rank7},
		{"twenty cards with broken pair wings", "3c 3d 3h 4c 4d 4h 5c 5d 5h 6c 6d 6h 9s 9c Jc Jd Kc Kd Qc Ad", Mess, 0},
		{"quad plus two singles", "6c 6d 6h 6s 3c 9d", QuadPlusTwoSingles, Rank6},
		{"quad plus same-rank singles", "6c 6d 6h 6s 9c 9d", Mess, 0},
		{"quad plus two pairs", "6c 6d 6h 6s 3c 3d 9c 9d", QuadPlusTwoPairs, Rank6},
		{"two quads", "6c 6d 6h 6s 9c 9d 9h 9s", Mess, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustParseHand(t, tt.cards)
			assert.Equal(t, tt.shape, h.Shape(), "shape of %s", h)
			assert.Equal(t, tt.shape, Classify(h.Cards()))
			if tt.shape != Mess {
				assert.Equal(t, tt.rank, h.Value().Rank)
			}
		})
	}
}

func TestScenarioBombOfThrees(t *testing.T) {
	t.Parallel()
	h := MustHand(3, 16, 29, 42)
	assert.Equal(t, Bomb, h.Shape())
	assert.Equal(t, Value{Tier: TierBomb, Length: 4, Rank: Rank3}, h.Value())
}

func TestScenarioRocket(t *testing.T) {
	t.Parallel()
	h := MustHand(54, 53)
	assert.Equal(t, Rocket, h.Shape())
	assert.Equal(t, TierRocket, h.Value().Tier)
	assert.Equal(t, []int{53, 54}, h.IDs())
}

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	h, err := NewHand()
	require.NoError(t, err)
	assert.Equal(t, Mess, h.Shape())
	assert.Equal(t, TierIncomparable, h.Value().Tier)

	var zero Hand
	assert.Equal(t, Mess, zero.Shape())
	assert.False(t, zero.Contains(LittleJoker))
	assert.Empty(t, zero.Cards())
}

func TestNewHandValidation(t *testing.T) {
	t.Parallel()

	_, err := NewHand(1, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = NewHand(1, 55)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = NewHand(7, 8, 7)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = HandOf(LittleJoker, LittleJoker)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	assert.Panics(t, func() { MustHand(99) })
}

func TestHandIsSortedAndImmutable(t *testing.T) {
	t.Parallel()

	input := []Card{54, 13, 3, 1, 16}
	h, err := HandOf(input...)
	require.NoError(t, err)

	assert.Equal(t, []Card{3, 16, 13, 1, 54}, h.Cards())
	assert.Equal(t, []Rank{Rank3, Rank3, RankK, RankA, RankBigJoker}, h.Values())
	// The caller's slice is left alone.
	assert.Equal(t, []Card{54, 13, 3, 1, 16}, input)

	cards := h.Cards()
	cards[0] = 52
	assert.Equal(t, Card(3), h.Cards()[0])

	b := h.Buckets()
	b[Rank3][0] = 52
	assert.True(t, h.Contains(3))
	assert.Equal(t, 2, h.bucketsRef().Count(Rank3))
}

func TestHandString(t *testing.T) {
	t.Parallel()
	h := MustHand(3, 16, 29, 42)
	assert.Equal(t, "[3♣ 3♦ 3♥ 3♠] Bomb", h.String())
}

func TestClassificationIsTotal(t *testing.T) {
	t.Parallel()
	rng := randutil.New(7)

	for i := 0; i < 2000; i++ {
		n := 1 + rng.IntN(DeckSize)
		perm := rng.Perm(DeckSize)[:n]
		ids := make([]int, n)
		for j, p := range perm {
			ids[j] = p + 1
		}
		h, err := NewHand(ids...)
		require.NoError(t, err)
		assert.Contains(t, Shapes[:], h.Shape())
		assert.Equal(t, n, h.Value().Length)
		if h.Shape() == Mess {
			assert.Equal(t, TierIncomparable, h.Value().Tier)
		}
	}
}

func TestClassificationIsOrderInvariant(t *testing.T) {
	t.Parallel()
	rng := randutil.New(11)

	inputs := []string{
		"3c 3d 3h 4c 4d 4h 5c 5d 5h 9c Jd Kh",
		"6c 6d 6h 6s 3c 3d 9c 9d",
		"3c 4d 5h 6s 7c 8c",
		"Kc Kd Kh 3s 3c",
		"LJ BJ",
	}
	for _, in := range inputs {
		base := mustParseHand(t, in)
		cards := base.Cards()
		for i := 0; i < 20; i++ {
			rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
			h, err := HandOf(cards...)
			require.NoError(t, err)
			assert.Equal(t, base.Shape(), h.Shape(), in)
			assert.Equal(t, base.Value(), h.Value(), in)
		}
	}
}
