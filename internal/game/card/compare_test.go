package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	d := NewDeck("red", true)
	aceSpades := d.Find(Spades, Ace, Black)
	kingHearts := d.Find(Hearts, King, Red)
	twoClubs := d.Find(Clubs, Two, Black)
	twoHearts := d.Find(Hearts, Two, Red)
	joker := d.Find(SuitNone, RankNone, Red)

	assert.Equal(t, Card1Wins, Compare(aceSpades, kingHearts))
	assert.Equal(t, Card2Wins, Compare(twoClubs, kingHearts))
	assert.Equal(t, Tie, Compare(twoClubs, twoHearts))
	assert.Equal(t, Card1Wins, Compare(joker, aceSpades))
	assert.Equal(t, Tie, Compare(joker, d.Find(SuitNone, RankNone, Black)))
}

func TestHighest(t *testing.T) {
	d := NewDeck("red", false)
	assert.Equal(t, -1, Highest(nil))

	cards := []*Card{
		d.Find(Clubs, Nine, Black),
		d.Find(Hearts, Queen, Red),
		d.Find(Spades, Three, Black),
		d.Find(Diamonds, Queen, Red),
	}
	assert.Equal(t, 1, Highest(cards))
}
