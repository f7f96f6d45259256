package card

// Results of Compare.
const (
	Card1Wins = 1
	Card2Wins = -1
	Tie       = 0
)

// strength ranks a card for Compare: jokers beat every card, aces are high.
func (c *Card) strength() int {
	switch {
	case c.IsJoker():
		return int(King) + 2
	case c.rank == Ace:
		return int(King) + 1
	default:
		return int(c.rank)
	}
}

// Compare plays card1 against card2 by rank, aces high and jokers above all.
// Suits do not break ties.
func Compare(card1, card2 *Card) int {
	s1, s2 := card1.strength(), card2.strength()
	switch {
	case s1 > s2:
		return Card1Wins
	case s2 > s1:
		return Card2Wins
	default:
		return Tie
	}
}

// Highest returns the index of the first card no other card beats, or -1 if
// cards is empty.
func Highest(cards []*Card) int {
	best := -1
	for i, c := range cards {
		if best < 0 || Compare(c, cards[best]) == Card1Wins {
			best = i
		}
	}
	return best
}
