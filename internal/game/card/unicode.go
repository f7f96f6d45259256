package card

import (
	"fmt"
	"unicode/utf8"
)

// Code points of the Unicode "Playing Cards" block used by the codec.
const (
	Back       rune = 0x1F0A0
	RedJoker   rune = 0x1F0BF
	BlackJoker rune = 0x1F0CF

	blockSize = 16
	jokerSlot = 0xF

	spadesBlock = Back / blockSize
	clubsBlock  = spadesBlock + 3
)

// Rune encodes the card as its code point in the Playing Cards block,
// regardless of the side it faces.
func (c *Card) Rune() rune {
	if c.IsJoker() {
		if c.color == Red {
			return RedJoker
		}
		return BlackJoker
	}
	return Back + rune(c.suit-Spades)*blockSize + rune(c.rank)
}

// Unicode returns the card's face as a one character string.
func (c *Card) Unicode() string { return string(c.Rune()) }

// FromUnicode decodes a single playing card character into a card of deck.
// It is the inverse of Unicode.
func FromUnicode(s string, deck *Deck, faceUp bool) (*Card, error) {
	if utf8.RuneCountInString(s) != 1 {
		return nil, fmt.Errorf("%w: %q is not a single character", ErrValidation, s)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrValidation, s)
	}
	return FromRune(r, deck, faceUp)
}

// FromRune decodes a playing card code point into a card of deck.
func FromRune(r rune, deck *Deck, faceUp bool) (*Card, error) {
	rankPart := r % blockSize
	suitPart := r / blockSize

	if rankPart == jokerSlot {
		switch r {
		case RedJoker:
			return Joker(Red, deck, faceUp)
		case BlackJoker:
			return Joker(Black, deck, faceUp)
		}
		return nil, notACard(r)
	}
	if rankPart == 0 || suitPart < spadesBlock || suitPart > clubsBlock {
		return nil, notACard(r)
	}
	return New(Spades+Suit(suitPart-spadesBlock), Rank(rankPart), deck, faceUp)
}

func notACard(r rune) error {
	return fmt.Errorf("%w: U+%04X is not a playing card", ErrValidation, r)
}
