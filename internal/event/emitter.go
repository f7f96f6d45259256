package event

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownEvent is returned when subscribing to, unsubscribing from or
// publishing a kind the emitter was not created with.
var ErrUnknownEvent = errors.New("unknown event")

// Kind identifies an event an emitter can publish.
type Kind string

// Event is what a handler receives. Args are the positional values given to
// Publish.
type Event struct {
	Kind Kind
	Args []any
}

// Handler reacts to a published event.
type Handler func(Event)

// Subscription identifies an installed handler so it can be removed later.
type Subscription uint64

type entry struct {
	sub     Subscription
	handler Handler
}

// Emitter is a synchronous publish/subscribe registry over a fixed set of
// event kinds declared at construction.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[Kind][]entry
	order    []Kind
	next     Subscription
}

// NewEmitter declares the kinds this emitter can publish. Declaring a kind
// twice has no effect.
func NewEmitter(kinds ...Kind) *Emitter {
	e := &Emitter{handlers: make(map[Kind][]entry, len(kinds))}
	for _, k := range kinds {
		if _, ok := e.handlers[k]; ok {
			continue
		}
		e.handlers[k] = nil
		e.order = append(e.order, k)
	}
	return e
}

// Emits reports whether kind was declared.
func (e *Emitter) Emits(kind Kind) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.handlers[kind]
	return ok
}

// Kinds returns the declared kinds in declaration order.
func (e *Emitter) Kinds() []Kind {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// Subscribe installs handler for kind. Handlers run in subscription order and
// the same function may be installed more than once.
func (e *Emitter) Subscribe(kind Kind, handler Handler) (Subscription, error) {
	if handler == nil {
		return 0, fmt.Errorf("subscribe %q: nil handler", kind)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	list, ok := e.handlers[kind]
	if !ok {
		return 0, unknown("subscribe to", kind)
	}
	e.next++
	e.handlers[kind] = append(list, entry{sub: e.next, handler: handler})
	return e.next, nil
}

// Unsubscribe removes the given subscriptions from kind. Without any
// subscription every handler of kind is removed. Subscriptions that are not
// installed are ignored.
func (e *Emitter) Unsubscribe(kind Kind, subs ...Subscription) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	list, ok := e.handlers[kind]
	if !ok {
		return unknown("unsubscribe from", kind)
	}
	if len(subs) == 0 {
		e.handlers[kind] = nil
		return nil
	}
	e.handlers[kind] = slices.DeleteFunc(slices.Clone(list), func(en entry) bool {
		return slices.Contains(subs, en.sub)
	})
	return nil
}

// Publish calls every handler currently installed for kind with args.
// Handlers are snapshotted first, so a handler may (un)subscribe freely.
func (e *Emitter) Publish(kind Kind, args ...any) error {
	e.mu.RLock()
	list, ok := e.handlers[kind]
	e.mu.RUnlock()
	if !ok {
		return unknown("publish", kind)
	}
	ev := Event{Kind: kind, Args: args}
	for _, en := range list {
		en.handler(ev)
	}
	return nil
}

func unknown(action string, kind Kind) error {
	return fmt.Errorf("%w: cannot %s %q", ErrUnknownEvent, action, kind)
}
