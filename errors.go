package lists

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when an element is read or removed from an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrBadIndex is matched by every *BadIndexError.
	ErrBadIndex = errors.New("index out of range")

	// ErrFull is returned when an element is inserted into a block holding capacity elements.
	ErrFull = errors.New("block is full")

	// ErrUnimplemented is returned for operations or list kinds with no implementation.
	ErrUnimplemented = errors.New("not implemented")

	// ErrInvalidConfig is returned by constructors receiving invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// BadIndexError carries the index rejected by an operation.
type BadIndexError struct {
	Index int
}

func (e *BadIndexError) Error() string {
	return fmt.Sprintf("%s: %d", ErrBadIndex, e.Index)
}

// Is reports whether target is ErrBadIndex.
func (e *BadIndexError) Is(target error) bool {
	return target == ErrBadIndex
}

func errEmpty() error {
	return errors.WithStack(ErrEmpty)
}

func errBadIndex(index int) error {
	return errors.WithStack(&BadIndexError{Index: index})
}
