package table

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"playingcards/internal/event"
	"playingcards/internal/game/card"
	"playingcards/internal/game/pile"
)

var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrZoneExists   = errors.New("zone already exists")
)

// Events published by a table.
const (
	EventZoneAdded   event.Kind = "table:zone-added"   // name string, zone *pile.Pile
	EventZoneRemoved event.Kind = "table:zone-removed" // name string, zone *pile.Pile
	EventZoneChange  event.Kind = "table:zone-change"  // name string, change event.Change
)

// Table groups named piles, such as a stock, hands and a discard pile, and
// relays every change of its zones.
type Table struct {
	*event.Model

	mu    sync.RWMutex
	zones map[string]*zone
	order []string
}

type zone struct {
	pile  *pile.Pile
	relay event.Subscription
}

func New() *Table {
	t := &Table{zones: make(map[string]*zone)}
	t.Model = event.NewModel(t, EventZoneAdded, EventZoneRemoved, EventZoneChange)
	return t
}

// AddZone puts p on the table under name.
func (t *Table) AddZone(name string, p *pile.Pile) error {
	t.mu.Lock()
	if _, ok := t.zones[name]; ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrZoneExists, name)
	}
	sub, err := p.Subscribe(event.Changed, func(ev event.Event) {
		if c, ok := ev.Change(); ok {
			_ = t.Publish(EventZoneChange, name, c)
		}
	})
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.zones[name] = &zone{pile: p, relay: sub}
	t.order = append(t.order, name)
	t.mu.Unlock()

	_ = t.Publish(EventZoneAdded, name, p)
	return nil
}

// RemoveZone takes the zone off the table and stops relaying its changes.
// The pile keeps its cards.
func (t *Table) RemoveZone(name string) (*pile.Pile, error) {
	t.mu.Lock()
	z, ok := t.zones[name]
	if !ok {
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	delete(t.zones, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	t.mu.Unlock()

	if err := z.pile.Unsubscribe(event.Changed, z.relay); err != nil {
		return nil, err
	}
	_ = t.Publish(EventZoneRemoved, name, z.pile)
	return z.pile, nil
}

// Zone returns the pile of a zone.
func (t *Table) Zone(name string) (*pile.Pile, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	z, ok := t.zones[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	return z.pile, nil
}

// Zones returns zone names in the order they were added.
func (t *Table) Zones() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.order...)
}

func (t *Table) pair(from, to string) (*pile.Pile, *pile.Pile, error) {
	src, err := t.Zone(from)
	if err != nil {
		return nil, nil, err
	}
	dst, err := t.Zone(to)
	if err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

// Move moves the card at index of zone from onto zone to.
func (t *Table) Move(from, to string, index int) (*card.Card, error) {
	src, dst, err := t.pair(from, to)
	if err != nil {
		return nil, err
	}
	return pile.Transfer(src, dst, index)
}

// Draw moves the top card of zone from onto zone to.
func (t *Table) Draw(from, to string) (*card.Card, error) {
	src, dst, err := t.pair(from, to)
	if err != nil {
		return nil, err
	}
	return pile.TransferTop(src, dst)
}

// Deal draws n rounds from zone from, one card to each of the zones in to per
// round. It stops at the first failed draw.
func (t *Table) Deal(from string, n int, to ...string) error {
	for range n {
		for _, name := range to {
			if _, err := t.Draw(from, name); err != nil {
				return fmt.Errorf("deal to %q: %w", name, err)
			}
		}
	}
	return nil
}

// Gather merges every other zone, in table order, back into zone into.
func (t *Table) Gather(into string) error {
	dst, err := t.Zone(into)
	if err != nil {
		return err
	}
	var others []*pile.Pile
	for _, name := range t.Zones() {
		if name == into {
			continue
		}
		if p, err := t.Zone(name); err == nil {
			others = append(others, p)
		}
	}
	return dst.Merge(others...)
}

func (t *Table) String() string {
	var b strings.Builder
	for _, name := range t.Zones() {
		p, err := t.Zone(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s (%d): %s\n", name, p.Count(), p)
	}
	return b.String()
}
