package event

import (
	"slices"

	"github.com/google/uuid"
)

// Changed is published by every model after any other event. Its arguments
// are the owning model, the original kind and the original arguments.
const Changed Kind = "model:change"

// Observable is anything handlers can be installed on.
type Observable interface {
	Subscribe(kind Kind, handler Handler) (Subscription, error)
	Unsubscribe(kind Kind, subs ...Subscription) error
}

// Change is the decoded payload of a Changed event.
type Change struct {
	Model any
	Kind  Kind
	Args  []any
}

// Change decodes a Changed event. ok is false for any other event or a
// malformed payload.
func (ev Event) Change() (c Change, ok bool) {
	if ev.Kind != Changed || len(ev.Args) != 3 {
		return Change{}, false
	}
	kind, ok := ev.Args[1].(Kind)
	if !ok {
		return Change{}, false
	}
	args, _ := ev.Args[2].([]any)
	return Change{Model: ev.Args[0], Kind: kind, Args: args}, true
}

// Model is the base of every stateful domain entity. Publishing any event on
// a model is followed by a Changed event so a single subscription observes
// all mutations.
type Model struct {
	*Emitter
	id    string
	owner any
}

// NewModel creates a model for owner. Changed is always declared in addition
// to kinds. owner is what Changed handlers receive as the model; nil means
// the Model itself.
func NewModel(owner any, kinds ...Kind) *Model {
	m := &Model{
		Emitter: NewEmitter(append(slices.Clone(kinds), Changed)...),
		id:      uuid.NewString(),
		owner:   owner,
	}
	if m.owner == nil {
		m.owner = m
	}
	return m
}

// ID returns the model's unique identifier.
func (m *Model) ID() string { return m.id }

// Publish publishes kind and then, unless kind is Changed itself, the
// Changed event describing it.
func (m *Model) Publish(kind Kind, args ...any) error {
	if err := m.publishDomainEvent(kind, args); err != nil {
		return err
	}
	if kind == Changed {
		return nil
	}
	return m.publishChanged(kind, args)
}

func (m *Model) publishDomainEvent(kind Kind, args []any) error {
	return m.Emitter.Publish(kind, args...)
}

func (m *Model) publishChanged(kind Kind, args []any) error {
	if args == nil {
		args = []any{}
	}
	return m.Emitter.Publish(Changed, m.owner, kind, args)
}
