package card

import (
	"fmt"
	"sync"

	"playingcards/internal/event"
)

// EventTurn is published each time a card is turned over.
const EventTurn event.Kind = "card:turn"

// Card is a playing card. Its suit, rank, color and deck never change; only
// the side it faces does.
type Card struct {
	*event.Model

	suit  Suit
	rank  Rank
	color Color
	deck  *Deck

	mu     sync.RWMutex
	faceUp bool
}

// New creates a card of suit and rank belonging to deck. Its color follows
// from the suit. Jokers are created with Joker.
func New(suit Suit, rank Rank, deck *Deck, faceUp bool) (*Card, error) {
	return newCard(suit, rank, suit.Color(), deck, faceUp, validateSuit, validateRank)
}

// Joker creates a joker of the given color belonging to deck.
func Joker(color Color, deck *Deck, faceUp bool) (*Card, error) {
	return newCard(SuitNone, RankNone, color, deck, faceUp, validateColor)
}

func newCard(suit Suit, rank Rank, color Color, deck *Deck, faceUp bool, validators ...cardValidator) (*Card, error) {
	c := &Card{suit: suit, rank: rank, color: color, deck: deck, faceUp: faceUp}
	for _, v := range validators {
		if err := v(c); err != nil {
			return nil, err
		}
	}
	c.Model = event.NewModel(c, EventTurn)
	return c, nil
}

func (c *Card) Suit() Suit   { return c.suit }
func (c *Card) Rank() Rank   { return c.rank }
func (c *Card) Color() Color { return c.color }
func (c *Card) Deck() *Deck  { return c.deck }

// Pips is the number of pips on the card: 1 to 10 for ace through ten, 0 for
// face cards and jokers.
func (c *Card) Pips() int { return c.rank.Pips() }

// BackColor is the color of the back of the card, which is its deck's color.
func (c *Card) BackColor() string {
	if c.deck == nil {
		return ""
	}
	return c.deck.Color()
}

// Name describes the card, e.g. "queen of hearts" or "red joker".
func (c *Card) Name() string {
	if c.IsJoker() {
		return c.color.String() + " joker"
	}
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

func (c *Card) IsJoker() bool { return c.suit == SuitNone && c.rank == RankNone }
func (c *Card) IsRed() bool   { return c.color == Red }
func (c *Card) IsBlack() bool { return c.color == Black }

func (c *Card) IsAce() bool    { return c.rank == Ace }
func (c *Card) IsJack() bool   { return c.rank == Jack }
func (c *Card) IsKnight() bool { return c.rank == Knight }
func (c *Card) IsQueen() bool  { return c.rank == Queen }
func (c *Card) IsKing() bool   { return c.rank == King }

// IsFaceCard reports whether the card is a jack, knight, queen or king.
func (c *Card) IsFaceCard() bool { return c.rank.IsFace() }

// IsPipsCard reports whether the card is an ace through ten.
func (c *Card) IsPipsCard() bool { return c.Pips() > 0 }

func (c *Card) IsSpades() bool   { return c.suit == Spades }
func (c *Card) IsHearts() bool   { return c.suit == Hearts }
func (c *Card) IsDiamonds() bool { return c.suit == Diamonds }
func (c *Card) IsClubs() bool    { return c.suit == Clubs }

func (c *Card) IsFacingUp() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.faceUp
}

func (c *Card) IsFacingDown() bool { return !c.IsFacingUp() }

// Turn flips the card and publishes EventTurn.
func (c *Card) Turn() {
	c.mu.Lock()
	c.faceUp = !c.faceUp
	c.mu.Unlock()
	// EventTurn is declared in newCard.
	_ = c.Publish(EventTurn)
}

// Equals reports whether other has the same suit, rank and color and belongs
// to the same deck. The side a card faces does not matter.
func (c *Card) Equals(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.suit == other.suit &&
		c.rank == other.rank &&
		c.color == other.color &&
		c.deck == other.deck
}

// String shows the card's face when it is facing up and its back otherwise.
func (c *Card) String() string {
	if c.IsFacingDown() {
		return string(Back)
	}
	return c.Unicode()
}
