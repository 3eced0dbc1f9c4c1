package ddz

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCard parses a single card token. Accepted forms are a decimal
// identifier ("14"), a face with a suit letter ("10h", "Tc", "As", "2d") and
// the jokers ("LJ", "BJ"). Matching is case-insensitive.
func ParseCard(s string) (Card, error) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidCard)
	}

	if id, err := strconv.Atoi(tok); err == nil {
		return NewCard(id)
	}

	up := strings.ToUpper(tok)
	switch up {
	case "LJ", "SJ":
		return LittleJoker, nil
	case "BJ", "RJ":
		return BigJoker, nil
	}

	if len(up) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := parseRank(up[:len(up)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(up[len(up)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return CardOf(rank, suit)
}

// ParseCards parses a whitespace or comma separated list of card tokens.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "3", "4", "5", "6", "7", "8", "9":
		return Rank(s[0] - '0'), nil
	case "10", "T":
		return Rank10, nil
	case "J":
		return RankJ, nil
	case "Q":
		return RankQ, nil
	case "K":
		return RankK, nil
	case "A", "1":
		return RankA, nil
	case "2":
		return Rank2, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	default:
		return SuitUndefined, fmt.Errorf("unknown suit '%c'", c)
	}
}
