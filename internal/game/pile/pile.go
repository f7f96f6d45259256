package pile

import (
	"iter"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"playingcards/internal/event"
	"playingcards/internal/game/card"
)

// Events published by a pile. Each is followed by event.Changed.
const (
	EventAdd     event.Kind = "pile:add"     // cards []*card.Card
	EventInsert  event.Kind = "pile:insert"  // card *card.Card, index int
	EventTake    event.Kind = "pile:take"    // card *card.Card, index int
	EventPick    event.Kind = "pile:pick"    // card *card.Card, index int
	EventShuffle event.Kind = "pile:shuffle"
	EventMerge   event.Kind = "pile:merge"   // others []*Pile
	EventDrain   event.Kind = "pile:drain"   // into *Pile
	EventSplit   event.Kind = "pile:split"   // piles []*Pile
)

var seedSeq atomic.Uint64

// Pile is an ordered sequence of cards guarded by an invariant. The last card
// is the top of the pile. Every mutation either leaves the pile in a state its
// invariant accepts or fails without changing anything.
type Pile struct {
	*event.Model

	mu        sync.Mutex
	cards     []*card.Card
	invariant Invariant
	rng       *rand.Rand
}

// Option configures a new pile.
type Option func(*Pile)

// WithInvariant guards the pile with inv.
func WithInvariant(inv Invariant) Option {
	return func(p *Pile) { p.invariant = inv }
}

// WithCards puts cards on the pile, bottom first.
func WithCards(cards ...*card.Card) Option {
	return func(p *Pile) { p.cards = append(p.cards, cards...) }
}

// WithDeck puts all cards of d on the pile in the deck's order.
func WithDeck(d *card.Deck) Option {
	return func(p *Pile) { p.cards = append(p.cards, d.Cards()...) }
}

// WithRand sets the source used by Pick and Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(p *Pile) { p.rng = r }
}

// New creates a pile. It fails with an *InvariantError when the initial cards
// do not satisfy the invariant.
func New(opts ...Option) (*Pile, error) {
	p := &Pile{cards: []*card.Card{}}
	for _, opt := range opts {
		opt(p)
	}
	if p.invariant == nil {
		p.invariant = AcceptAll
	}
	if p.rng == nil {
		seed := uint64(time.Now().UnixNano())
		p.rng = rand.New(rand.NewPCG(seed, seedSeq.Add(1)))
	}
	p.Model = event.NewModel(p,
		EventAdd, EventInsert, EventTake, EventPick, EventShuffle,
		EventMerge, EventDrain, EventSplit,
	)
	if !p.invariant(slices.Clone(p.cards)) {
		return nil, &InvariantError{Op: "new", Pile: p.ID()}
	}
	return p, nil
}

// Count returns the number of cards on the pile.
func (p *Pile) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cards)
}

func (p *Pile) IsEmpty() bool { return p.Count() == 0 }

// Cards returns a copy of the pile's cards, bottom first.
func (p *Pile) Cards() []*card.Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.cards)
}

func (p *Pile) Invariant() Invariant { return p.invariant }

// Inspect returns the top card without removing it.
func (p *Pile) Inspect() (*card.Card, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cards) == 0 {
		return nil, false
	}
	return p.cards[len(p.cards)-1], true
}

// InspectAt returns the card at index without removing it. ok is false when
// index is out of range.
func (p *Pile) InspectAt(index int) (*card.Card, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.cards) {
		return nil, false
	}
	return p.cards[index], true
}

// Each iterates over a snapshot of the pile taken when iteration starts.
func (p *Pile) Each() iter.Seq2[int, *card.Card] {
	return func(yield func(int, *card.Card) bool) {
		for i, c := range p.Cards() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ForEach calls fn for every card, bottom first, on a snapshot of the pile.
func (p *Pile) ForEach(fn func(index int, c *card.Card)) {
	for i, c := range p.Each() {
		fn(i, c)
	}
}

func (p *Pile) String() string {
	cards := p.Cards()
	if len(cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
