package pile

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfBounds = errors.New("pile index out of bounds")
	ErrInvariant        = errors.New("pile invariant violated")
	ErrInvalidSplit     = errors.New("invalid split")
	ErrSamePile         = errors.New("source and destination are the same pile")
	ErrNilPile          = errors.New("nil pile")
)

// InvariantError reports an operation rejected because the resulting state
// would violate a pile's invariant. The pile is left unchanged.
type InvariantError struct {
	Op     string // operation that was attempted
	Pile   string // ID of the pile whose invariant failed
	Reason string
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("pile %s: %s violates invariant", e.Pile, e.Op)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

func outOfBounds(index, upper int) error {
	return fmt.Errorf("%w: index %d not in [0, %d]", ErrIndexOutOfBounds, index, upper)
}
