package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_Standard(t *testing.T) {
	d := NewDeck("", false)
	assert.Equal(t, DefaultBackColor, d.Color())
	assert.Equal(t, d.Color(), d.Name())
	assert.False(t, d.HasJokers())
	assert.NotEmpty(t, d.ID())

	cards := d.Cards()
	require.Len(t, cards, 52)
	assert.Equal(t, 52, d.Len())

	i := 0
	for _, s := range Suits {
		for _, r := range StandardRanks {
			assert.Equal(t, s, cards[i].Suit(), "index %d", i)
			assert.Equal(t, r, cards[i].Rank(), "index %d", i)
			assert.Same(t, d, cards[i].Deck())
			assert.True(t, cards[i].IsFacingDown())
			i++
		}
	}
	assert.True(t, cards[12].IsKing() && cards[12].IsSpades())
}

func TestNewDeck_WithJokers(t *testing.T) {
	d := NewDeck("navy", true)
	cards := d.Cards()
	require.Len(t, cards, 54)
	assert.True(t, d.HasJokers())

	red, jokers := 0, 0
	for _, c := range cards {
		if c.IsRed() {
			red++
		}
		if c.IsJoker() {
			jokers++
		}
		assert.Equal(t, "navy", c.BackColor())
	}
	assert.Equal(t, 27, red)
	assert.Equal(t, 2, jokers)

	assert.True(t, cards[52].IsJoker() && cards[52].IsBlack())
	assert.True(t, cards[53].IsJoker() && cards[53].IsRed())
}

func TestDeck_CardsIsSnapshot(t *testing.T) {
	d := NewDeck("red", false)
	cards := d.Cards()
	cards[0] = nil

	again := d.Cards()
	require.Len(t, again, 52)
	assert.NotNil(t, again[0])
	assert.Same(t, again[1], d.Cards()[1], "cards are shared, not copied")
}

func TestDeck_Find(t *testing.T) {
	d := NewDeck("red", true)

	c := d.Find(Hearts, Queen, ColorNone)
	require.NotNil(t, c)
	assert.Equal(t, "queen of hearts", c.Name())

	j := d.Find(SuitNone, RankNone, Red)
	require.NotNil(t, j)
	assert.True(t, j.IsRed())

	assert.Nil(t, d.Find(Hearts, Knight, ColorNone))
	assert.Nil(t, NewDeck("red", false).Find(SuitNone, RankNone, Black))
}

type sliceAdder struct{ cards []*Card }

func (a *sliceAdder) Add(cards ...*Card) error {
	a.cards = append(a.cards, cards...)
	return nil
}

func TestDeck_AddToPile(t *testing.T) {
	d := NewDeck("red", false)
	a := &sliceAdder{}
	require.NoError(t, d.AddToPile(a))
	assert.Equal(t, d.Cards(), a.cards)
}
