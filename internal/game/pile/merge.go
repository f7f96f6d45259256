package pile

import (
	"cmp"
	"fmt"
	"slices"

	"playingcards/internal/game/card"
)

// lockAll locks piles in ID order so that concurrent multi-pile operations
// cannot deadlock. It returns the matching unlock.
func lockAll(piles ...*Pile) (unlock func()) {
	sorted := slices.Clone(piles)
	slices.SortFunc(sorted, func(a, b *Pile) int { return cmp.Compare(a.ID(), b.ID()) })
	for _, p := range sorted {
		p.mu.Lock()
	}
	return func() {
		for _, p := range sorted {
			p.mu.Unlock()
		}
	}
}

// Merge moves all cards of others on top of this pile, keeping their order,
// others taken in argument order. It succeeds only if this pile accepts the
// merged sequence and every other pile accepts being empty; otherwise no
// pile changes.
func (p *Pile) Merge(others ...*Pile) error {
	if slices.Contains(others, nil) {
		return fmt.Errorf("%w: cannot merge", ErrNilPile)
	}
	all := append([]*Pile{p}, others...)
	for i, o := range all {
		if slices.Contains(all[i+1:], o) {
			return &InvariantError{Op: "merge", Pile: o.ID(), Reason: "pile takes part more than once"}
		}
	}

	unlock := lockAll(all...)
	merged := slices.Clone(p.cards)
	for _, o := range others {
		merged = append(merged, o.cards...)
	}
	if !p.invariant(slices.Clone(merged)) {
		unlock()
		return &InvariantError{Op: "merge", Pile: p.ID(), Reason: "merged pile rejected"}
	}
	for _, o := range others {
		if !o.invariant([]*card.Card{}) {
			unlock()
			return &InvariantError{Op: "merge", Pile: o.ID(), Reason: "pile cannot be emptied"}
		}
	}
	p.cards = merged
	for _, o := range others {
		o.cards = []*card.Card{}
	}
	unlock()

	_ = p.Publish(EventMerge, slices.Clone(others))
	for _, o := range others {
		_ = o.Publish(EventDrain, p)
	}
	return nil
}

// Split divides the pile into n piles whose sizes differ by at most one. This
// pile keeps the bottom block and is the first pile returned. Each new pile is
// dealt the next block card by card from the top, so the block ends up
// reversed. New piles accept any sequence unless opts say otherwise.
func (p *Pile) Split(n int, opts ...Option) ([]*Pile, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot split into %d piles", ErrInvalidSplit, n)
	}

	p.mu.Lock()
	count := len(p.cards)
	base, extra := count/n, count%n
	size := func(i int) int {
		if i < extra {
			return base + 1
		}
		return base
	}

	piles := make([]*Pile, n)
	piles[0] = p
	end := count
	for i := 1; i < n; i++ {
		start := end - size(i)
		block := slices.Clone(p.cards[start:end])
		slices.Reverse(block)
		np, err := New(append([]Option{WithCards(block...)}, opts...)...)
		if err != nil {
			p.mu.Unlock()
			return nil, err
		}
		piles[i] = np
		end = start
	}
	rest := slices.Clone(p.cards[:end])
	if !p.invariant(slices.Clone(rest)) {
		p.mu.Unlock()
		return nil, &InvariantError{Op: "split", Pile: p.ID()}
	}
	p.cards = rest
	p.mu.Unlock()

	_ = p.Publish(EventSplit, slices.Clone(piles[1:]))
	return piles, nil
}

// Transfer moves the card at index of from onto the top of to. Both
// invariants must accept the result or neither pile changes.
func Transfer(from, to *Pile, index int) (*card.Card, error) {
	return transfer(from, to, func(int) int { return index })
}

// TransferTop moves the top card of from onto the top of to. The top is
// resolved under the lock, so concurrent takes cannot make it stale.
func TransferTop(from, to *Pile) (*card.Card, error) {
	return transfer(from, to, func(n int) int { return n - 1 })
}

// transfer moves the card at the index chosen by at, which is called with
// both piles locked and the current count of from.
func transfer(from, to *Pile, at func(n int) int) (*card.Card, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: cannot transfer", ErrNilPile)
	}
	if from == to {
		return nil, ErrSamePile
	}

	unlock := lockAll(from, to)
	index := at(len(from.cards))
	if index < 0 || index >= len(from.cards) {
		unlock()
		return nil, outOfBounds(index, len(from.cards)-1)
	}
	c := from.cards[index]
	rest := slices.Delete(slices.Clone(from.cards), index, index+1)
	grown := append(slices.Clone(to.cards), c)

	if !from.invariant(slices.Clone(rest)) {
		unlock()
		return nil, &InvariantError{Op: "transfer", Pile: from.ID(), Reason: "source rejected"}
	}
	if !to.invariant(slices.Clone(grown)) {
		unlock()
		return nil, &InvariantError{Op: "transfer", Pile: to.ID(), Reason: "destination rejected"}
	}
	from.cards = rest
	to.cards = grown
	unlock()

	_ = from.Publish(EventTake, c, index)
	_ = to.Publish(EventAdd, []*card.Card{c})
	return c, nil
}
