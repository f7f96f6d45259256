package pile

import (
	"slices"

	"playingcards/internal/event"
	"playingcards/internal/game/card"
)

// proposal builds the sequence a mutation would leave behind from a copy of
// the current one, plus the arguments of the event announcing it.
type proposal func(cards []*card.Card) (next []*card.Card, args []any, err error)

// mutate validates the proposed sequence against the invariant and only then
// commits it. The event is published after the lock is released so handlers
// may use the pile.
func (p *Pile) mutate(op string, kind event.Kind, propose proposal) error {
	p.mu.Lock()
	next, args, err := propose(slices.Clone(p.cards))
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if !p.invariant(slices.Clone(next)) {
		p.mu.Unlock()
		return &InvariantError{Op: op, Pile: p.ID()}
	}
	p.cards = next
	p.mu.Unlock()

	// every kind a pile publishes is declared in New
	_ = p.Publish(kind, args...)
	return nil
}

// Add puts cards on top of the pile in the order given. All cards are added
// or none is.
func (p *Pile) Add(cards ...*card.Card) error {
	return p.mutate("add", EventAdd, func(cur []*card.Card) ([]*card.Card, []any, error) {
		return append(cur, cards...), []any{slices.Clone(cards)}, nil
	})
}

// Insert puts c at index, 0 being the bottom and Count the top.
func (p *Pile) Insert(c *card.Card, index int) error {
	return p.mutate("insert", EventInsert, func(cur []*card.Card) ([]*card.Card, []any, error) {
		if index < 0 || index > len(cur) {
			return nil, nil, outOfBounds(index, len(cur))
		}
		return slices.Insert(cur, index, c), []any{c, index}, nil
	})
}

// Take removes and returns the top card.
func (p *Pile) Take() (*card.Card, error) {
	return p.remove("take", EventTake, func(n int) int { return n - 1 })
}

// TakeAt removes and returns the card at index.
func (p *Pile) TakeAt(index int) (*card.Card, error) {
	return p.remove("take", EventTake, func(int) int { return index })
}

// Pick removes and returns a card chosen uniformly at random.
func (p *Pile) Pick() (*card.Card, error) {
	return p.remove("pick", EventPick, func(n int) int {
		if n == 0 {
			return 0
		}
		return p.rng.IntN(n)
	})
}

// remove takes out the card at the index chosen by at, which is called under
// the lock with the current count. The invariant is checked against what is
// left on the pile.
func (p *Pile) remove(op string, kind event.Kind, at func(n int) int) (*card.Card, error) {
	var taken *card.Card
	err := p.mutate(op, kind, func(cur []*card.Card) ([]*card.Card, []any, error) {
		index := at(len(cur))
		if index < 0 || index >= len(cur) {
			return nil, nil, outOfBounds(index, len(cur)-1)
		}
		taken = cur[index]
		return slices.Delete(cur, index, index+1), []any{taken, index}, nil
	})
	if err != nil {
		return nil, err
	}
	return taken, nil
}

// Shuffle puts the cards in a uniformly random order.
func (p *Pile) Shuffle() error {
	return p.mutate("shuffle", EventShuffle, func(cur []*card.Card) ([]*card.Card, []any, error) {
		for i := len(cur) - 1; i > 0; i-- {
			j := p.rng.IntN(i + 1)
			cur[i], cur[j] = cur[j], cur[i]
		}
		return cur, nil, nil
	})
}
