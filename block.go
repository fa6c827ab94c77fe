package lists

import (
	"github.com/pkg/errors"
)

// Block is a list holding at most a fixed number of elements in a single
// array. Chunked lists store their elements in blocks.
type Block[T any] struct {
	slots []T
	count int
}

// NewBlock returns an empty block able to hold capacity elements.
func NewBlock[T any](capacity int) (*Block[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "block capacity must be positive, got %d", capacity)
	}
	return newBlock[T](capacity), nil
}

func newBlock[T any](capacity int) *Block[T] {
	return &Block[T]{
		slots: make([]T, capacity),
	}
}

// Capacity returns the maximum number of elements the block holds.
func (b *Block[T]) Capacity() int {
	return len(b.slots)
}

// Full reports whether no more elements fit into the block.
func (b *Block[T]) Full() bool {
	return b.count == len(b.slots)
}

// Size returns the number of elements in the block.
func (b *Block[T]) Size() int {
	return b.count
}

// Empty reports whether the block holds no elements.
func (b *Block[T]) Empty() bool {
	return b.count == 0
}

// Front returns the first element.
func (b *Block[T]) Front() (T, error) {
	return b.Get(0)
}

// Back returns the last element.
func (b *Block[T]) Back() (T, error) {
	return b.Get(b.count - 1)
}

// Get returns the element at index.
func (b *Block[T]) Get(index int) (T, error) {
	if err := b.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	return b.slots[index], nil
}

// Set replaces the element at index.
func (b *Block[T]) Set(index int, value T) error {
	if err := b.checkExclusive(index); err != nil {
		return err
	}
	b.slots[index] = value
	return nil
}

// PushFront inserts value before the first element.
func (b *Block[T]) PushFront(value T) error {
	return b.Insert(0, value)
}

// PushBack inserts value after the last element.
func (b *Block[T]) PushBack(value T) error {
	return b.Insert(b.count, value)
}

// Insert places value at index, shifting elements at and after index toward
// the back. Valid indexes are in [0, Size()].
func (b *Block[T]) Insert(index int, value T) error {
	if b.Full() {
		return errors.WithStack(ErrFull)
	}
	if index < 0 || index > b.count {
		return errBadIndex(index)
	}
	copy(b.slots[index+1:b.count+1], b.slots[index:b.count])
	b.slots[index] = value
	b.count++
	return nil
}

// RemoveFront removes and returns the first element.
func (b *Block[T]) RemoveFront() (T, error) {
	return b.Remove(0)
}

// RemoveBack removes and returns the last element.
func (b *Block[T]) RemoveBack() (T, error) {
	return b.Remove(b.count - 1)
}

// Remove removes and returns the element at index, shifting later elements
// toward the front.
func (b *Block[T]) Remove(index int) (T, error) {
	var zero T
	if err := b.checkExclusive(index); err != nil {
		return zero, err
	}
	v := b.slots[index]
	copy(b.slots[index:b.count-1], b.slots[index+1:b.count])
	b.count--
	b.slots[b.count] = zero
	return v, nil
}

// Clear removes all elements.
func (b *Block[T]) Clear() {
	var zero T
	for i := 0; i < b.count; i++ {
		b.slots[i] = zero
	}
	b.count = 0
}

// Range calls f for each element from front to back.
func (b *Block[T]) Range(f func(index int, value T) bool) {
	for i := 0; i < b.count; i++ {
		if !f(i, b.slots[i]) {
			return
		}
	}
}

// Values returns all elements in order.
func (b *Block[T]) Values() []interface{} {
	return values[T](b)
}

func (b *Block[T]) String() string {
	return format[T]("Block", b)
}

func (b *Block[T]) checkExclusive(index int) error {
	if b.count == 0 {
		return errEmpty()
	}
	if index < 0 || index >= b.count {
		return errBadIndex(index)
	}
	return nil
}
