package pile

import (
	"playingcards/internal/game/card"
)

// Invariant decides whether a sequence of cards is an acceptable state for a
// pile. It receives a copy of the proposed sequence, bottom card first.
type Invariant func(cards []*card.Card) bool

// AcceptAll accepts every sequence. It is the default invariant.
func AcceptAll([]*card.Card) bool { return true }

// MaxCount accepts sequences of at most n cards.
func MaxCount(n int) Invariant {
	return func(cards []*card.Card) bool { return len(cards) <= n }
}

// MinCount accepts sequences of at least n cards.
func MinCount(n int) Invariant {
	return func(cards []*card.Card) bool { return len(cards) >= n }
}

// NoDuplicates rejects sequences holding two equal cards.
func NoDuplicates(cards []*card.Card) bool {
	for i, c := range cards {
		for _, o := range cards[i+1:] {
			if c.Equals(o) {
				return false
			}
		}
	}
	return true
}

// All accepts a sequence when every one of invs does.
func All(invs ...Invariant) Invariant {
	return func(cards []*card.Card) bool {
		for _, inv := range invs {
			if !inv(cards) {
				return false
			}
		}
		return true
	}
}
