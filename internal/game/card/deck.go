package card

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// DefaultBackColor is the back color of a deck created without one.
const DefaultBackColor = "red"

// Deck is one box of playing cards: the 52 standard cards and, optionally,
// two jokers. The backs of all its cards share the deck's color.
type Deck struct {
	id        string
	color     string
	hasJokers bool
	cards     []*Card
}

// NewDeck creates a deck with the given back color. The cards are ordered
// spades, hearts, diamonds, clubs, each from ace to king, followed by the
// black and the red joker when jokers are included.
func NewDeck(backColor string, jokers bool) *Deck {
	if backColor == "" {
		backColor = DefaultBackColor
	}
	d := &Deck{
		id:        uuid.NewString(),
		color:     backColor,
		hasJokers: jokers,
	}

	size := len(Suits) * len(StandardRanks)
	if jokers {
		size += 2
	}
	d.cards = make([]*Card, 0, size)
	for _, s := range Suits {
		for _, r := range StandardRanks {
			d.cards = append(d.cards, d.mustDecode(Back+rune(s-Spades)*blockSize+rune(r)))
		}
	}
	if jokers {
		d.cards = append(d.cards, d.mustDecode(BlackJoker), d.mustDecode(RedJoker))
	}
	return d
}

func (d *Deck) mustDecode(r rune) *Card {
	c, err := FromRune(r, d, false)
	if err != nil {
		panic(fmt.Sprintf("deck: %v", err))
	}
	return c
}

func (d *Deck) ID() string { return d.id }

// Color is the color of the back of the deck's cards.
func (d *Deck) Color() string { return d.color }

// Name is the deck's name, which is its color.
func (d *Deck) Name() string { return d.color }

func (d *Deck) HasJokers() bool { return d.hasJokers }

func (d *Deck) Len() int { return len(d.cards) }

// Cards returns the deck's cards in canonical order. The slice is a copy;
// the cards themselves are shared.
func (d *Deck) Cards() []*Card { return slices.Clone(d.cards) }

// Find returns the deck's card of suit and rank, or nil if the deck has none.
// Use SuitNone and RankNone with a color to find a joker.
func (d *Deck) Find(suit Suit, rank Rank, color Color) *Card {
	for _, c := range d.cards {
		if c.suit != suit || c.rank != rank {
			continue
		}
		if c.IsJoker() && c.color != color {
			continue
		}
		return c
	}
	return nil
}

// PileAdder is implemented by piles.
type PileAdder interface {
	Add(cards ...*Card) error
}

// AddToPile adds all cards of the deck to p in canonical order.
func (d *Deck) AddToPile(p PileAdder) error {
	return p.Add(d.Cards()...)
}

func (d *Deck) String() string {
	return fmt.Sprintf("deck %s (%d cards)", d.color, len(d.cards))
}
