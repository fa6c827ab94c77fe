package lists

import (
	"github.com/emirpasic/gods/containers"
)

// List is the contract shared by every list in this package.
type List[T any] interface {
	containers.Container

	Front() (T, error)
	Back() (T, error)
	Get(index int) (T, error)
	Set(index int, value T) error

	PushFront(value T) error
	PushBack(value T) error
	Insert(index int, value T) error

	RemoveFront() (T, error)
	RemoveBack() (T, error)
	Remove(index int) (T, error)

	// Range calls f for each element from front to back. If f returns false,
	// iteration stops.
	Range(f func(index int, value T) bool)
}

var (
	_ List[int] = &Block[int]{}
	_ List[int] = &Growable[int]{}
	_ List[int] = &Chunked[int]{}
	_ List[int] = &Singly[int]{}
	_ List[int] = &Doubly[int]{}
)
