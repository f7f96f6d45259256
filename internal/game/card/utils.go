package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation is returned for malformed card input: an unknown suit, rank
// or color, or text that does not describe a card.
var ErrValidation = errors.New("invalid card")

type cardValidator func(*Card) error

func validateSuit(c *Card) error {
	if !c.suit.Valid() {
		return fmt.Errorf("%w: unknown suit %d", ErrValidation, int(c.suit))
	}
	return nil
}

func validateRank(c *Card) error {
	if !c.rank.Valid() {
		return fmt.Errorf("%w: unknown rank %d", ErrValidation, int(c.rank))
	}
	return nil
}

func validateColor(c *Card) error {
	if !c.color.Valid() {
		return fmt.Errorf("%w: unknown color %d", ErrValidation, int(c.color))
	}
	return nil
}

var suitLetters = map[Suit]string{Spades: "S", Hearts: "H", Diamonds: "D", Clubs: "C"}

var rankLetters = map[Rank]string{Ace: "A", Jack: "J", Knight: "C", Queen: "Q", King: "K"}

// ShortString is the compact text form of a card: rank then suit letter, such
// as "10H", "QS" or "CD" for the knight of diamonds. Jokers are "RJ" and "BJ".
func (c *Card) ShortString() string {
	if c.IsJoker() {
		return strings.ToUpper(c.color.String()[:1]) + "J"
	}
	r, ok := rankLetters[c.rank]
	if !ok {
		r = strconv.Itoa(int(c.rank))
	}
	return r + suitLetters[c.suit]
}

// ParseCard reads the ShortString form of a card of deck, face down.
func ParseCard(s string, deck *Deck) (*Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	switch s {
	case "RJ":
		return Joker(Red, deck, false)
	case "BJ":
		return Joker(Black, deck, false)
	}
	if len(s) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrValidation, s)
	}

	suit := SuitNone
	for st, l := range suitLetters {
		if l == s[len(s)-1:] {
			suit = st
		}
	}

	rankStr := s[:len(s)-1]
	rank := RankNone
	for r, l := range rankLetters {
		if l == rankStr {
			rank = r
		}
	}
	if rank == RankNone {
		v, err := strconv.Atoi(rankStr)
		if err != nil || v < 2 || v > 10 {
			return nil, fmt.Errorf("%w: rank %q", ErrValidation, rankStr)
		}
		rank = Rank(v)
	}
	return New(suit, rank, deck, false)
}
