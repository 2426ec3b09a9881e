package dynarray

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrInvalidCapacity indicates a negative initial capacity.
	ErrInvalidCapacity = errors.New("dynarray: capacity must be non-negative")

	// ErrIndexOutOfRange indicates an index outside the valid range of an operation.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrCapacityOverflow indicates growth past the largest representable capacity.
	ErrCapacityOverflow = errors.New("dynarray: capacity overflow")
)

// IndexError wraps ErrIndexOutOfRange with the offending operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s [%d] with length %d", ErrIndexOutOfRange, e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
