package card

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"playingcards/internal/event"
)

type CardTestSuite struct {
	suite.Suite
	deck  *Deck
	cards []*Card
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

// SetupTest builds every card the codec knows: fourteen ranks in four suits
// plus the two jokers.
func (s *CardTestSuite) SetupTest() {
	s.deck = NewDeck("red", false)
	s.cards = nil
	for _, st := range Suits {
		for _, r := range Ranks {
			c, err := New(st, r, s.deck, false)
			s.Require().NoError(err)
			s.cards = append(s.cards, c)
		}
	}
	for _, col := range Colors {
		j, err := Joker(col, s.deck, false)
		s.Require().NoError(err)
		s.cards = append(s.cards, j)
	}
	s.Require().Len(s.cards, 58)
}

func (s *CardTestSuite) count(pred func(*Card) bool) int {
	n := 0
	for _, c := range s.cards {
		if pred(c) {
			n++
		}
	}
	return n
}

func (s *CardTestSuite) TestPredicateCounts() {
	testCases := []struct {
		name     string
		pred     func(*Card) bool
		expected int
	}{
		{"red", (*Card).IsRed, 29},
		{"black", (*Card).IsBlack, 29},
		{"spades", (*Card).IsSpades, 14},
		{"hearts", (*Card).IsHearts, 14},
		{"diamonds", (*Card).IsDiamonds, 14},
		{"clubs", (*Card).IsClubs, 14},
		{"face cards", (*Card).IsFaceCard, 16},
		{"pips cards", (*Card).IsPipsCard, 40},
		{"aces", (*Card).IsAce, 4},
		{"jacks", (*Card).IsJack, 4},
		{"knights", (*Card).IsKnight, 4},
		{"queens", (*Card).IsQueen, 4},
		{"kings", (*Card).IsKing, 4},
		{"jokers", (*Card).IsJoker, 2},
		{"facing up", (*Card).IsFacingUp, 0},
		{"facing down", (*Card).IsFacingDown, 58},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.count(tc.pred))
		})
	}
}

func (s *CardTestSuite) TestPips() {
	for pips := 1; pips <= 10; pips++ {
		s.Equal(4, s.count(func(c *Card) bool { return c.Pips() == pips }), "pips %d", pips)
	}
	s.Equal(18, s.count(func(c *Card) bool { return c.Pips() == 0 }))
}

func (s *CardTestSuite) TestBackColor() {
	for _, c := range s.cards {
		s.Equal("red", c.BackColor())
	}
}

func (s *CardTestSuite) TestNew_Invalid() {
	_, err := New(SuitNone, Ace, s.deck, false)
	s.ErrorIs(err, ErrValidation)

	_, err = New(Suit(9), Ace, s.deck, false)
	s.ErrorIs(err, ErrValidation)

	_, err = New(Hearts, RankNone, s.deck, false)
	s.ErrorIs(err, ErrValidation)

	_, err = New(Hearts, Rank(15), s.deck, false)
	s.ErrorIs(err, ErrValidation)

	_, err = Joker(ColorNone, s.deck, false)
	s.ErrorIs(err, ErrValidation)
}

func (s *CardTestSuite) TestColorFollowsSuit() {
	c, err := New(Diamonds, Seven, s.deck, true)
	s.Require().NoError(err)
	s.Equal(Red, c.Color())
	s.True(c.IsFacingUp())

	c, err = New(Clubs, Seven, s.deck, false)
	s.Require().NoError(err)
	s.Equal(Black, c.Color())
}

func (s *CardTestSuite) TestJoker() {
	j, err := Joker(Red, s.deck, false)
	s.Require().NoError(err)
	s.True(j.IsJoker())
	s.Equal(SuitNone, j.Suit())
	s.Equal(RankNone, j.Rank())
	s.True(j.IsRed())
	s.False(j.IsFaceCard())
	s.False(j.IsPipsCard())
	s.Equal("red joker", j.Name())
}

func (s *CardTestSuite) TestName() {
	c, err := New(Hearts, Queen, s.deck, false)
	s.Require().NoError(err)
	s.Equal("queen of hearts", c.Name())
}

func (s *CardTestSuite) TestEquals() {
	aceHearts, err := New(Hearts, Ace, s.deck, false)
	s.Require().NoError(err)
	aceClubs, err := New(Clubs, Ace, s.deck, false)
	s.Require().NoError(err)

	for _, c := range s.cards {
		s.True(c.Equals(c))
		if c.Equals(aceHearts) {
			s.False(c.Equals(aceClubs))
		} else {
			s.False(c.Equals(aceHearts))
		}
	}

	up, err := New(Hearts, Ace, s.deck, true)
	s.Require().NoError(err)
	s.True(aceHearts.Equals(up), "facing does not matter")

	other, err := New(Hearts, Ace, NewDeck("red", false), false)
	s.Require().NoError(err)
	s.False(aceHearts.Equals(other), "cards of different decks differ")
}

func (s *CardTestSuite) TestTurn() {
	c, err := FromUnicode("\U0001F0CA", s.deck, false)
	s.Require().NoError(err)

	s.True(c.IsFacingDown())
	s.Equal(string(Back), c.String())

	c.Turn()
	s.True(c.IsFacingUp())
	s.Equal("\U0001F0CA", c.String())

	c.Turn()
	s.True(c.IsFacingDown())
}

func (s *CardTestSuite) TestTurn_PublishesEvents() {
	c, err := New(Spades, King, s.deck, false)
	s.Require().NoError(err)

	turns := 0
	_, err = c.Subscribe(EventTurn, func(event.Event) { turns++ })
	s.Require().NoError(err)

	var changes []event.Change
	_, err = c.Subscribe(event.Changed, func(ev event.Event) {
		ch, ok := ev.Change()
		s.Require().True(ok)
		changes = append(changes, ch)
	})
	s.Require().NoError(err)

	c.Turn()

	s.Equal(1, turns)
	s.Require().Len(changes, 1)
	s.Same(c, changes[0].Model)
	s.Equal(EventTurn, changes[0].Kind)
	s.Empty(changes[0].Args)
}

func (s *CardTestSuite) TestString() {
	for _, c := range s.cards {
		s.Equal(string(Back), c.String())
		c.Turn()
		s.Equal(c.Unicode(), c.String())
	}
}

func (s *CardTestSuite) TestShortString() {
	testCases := []struct {
		suit     Suit
		rank     Rank
		expected string
	}{
		{Hearts, Ace, "AH"},
		{Diamonds, Ten, "10D"},
		{Clubs, King, "KC"},
		{Spades, Queen, "QS"},
		{Diamonds, Knight, "CD"},
		{Clubs, Two, "2C"},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			c, err := New(tc.suit, tc.rank, s.deck, false)
			s.Require().NoError(err)
			s.Equal(tc.expected, c.ShortString())

			parsed, err := ParseCard(tc.expected, s.deck)
			s.Require().NoError(err)
			s.True(parsed.Equals(c))
		})
	}
}

func (s *CardTestSuite) TestParseCard() {
	j, err := ParseCard("rj", s.deck)
	s.Require().NoError(err)
	s.True(j.IsJoker())
	s.True(j.IsRed())

	j, err = ParseCard("BJ", s.deck)
	s.Require().NoError(err)
	s.True(j.IsBlack())
	s.Equal("BJ", j.ShortString())

	for _, bad := range []string{"", "X", "1H", "11S", "QX", "ZZ"} {
		_, err := ParseCard(bad, s.deck)
		s.ErrorIs(err, ErrValidation, bad)
	}
}
