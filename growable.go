package lists

import (
	"go.uber.org/zap"
)

// Growable is a list backed by an array which doubles in size whenever an
// insertion finds it full.
type Growable[T any] struct {
	log   *zap.Logger
	slots []T
	fill  int
}

// NewGrowable returns an empty growable list.
func NewGrowable[T any](opts ...Option) (*Growable[T], error) {
	config, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newGrowable[T](config.InitialCapacity, config.Logger), nil
}

func newGrowable[T any](capacity int, log *zap.Logger) *Growable[T] {
	return &Growable[T]{
		log:   log,
		slots: make([]T, capacity),
	}
}

// Cap returns the size of the backing array.
func (g *Growable[T]) Cap() int {
	return len(g.slots)
}

// Size returns the number of elements in the list.
func (g *Growable[T]) Size() int {
	return g.fill
}

// Empty reports whether the list holds no elements.
func (g *Growable[T]) Empty() bool {
	return g.fill == 0
}

// Front returns the first element.
func (g *Growable[T]) Front() (T, error) {
	return g.Get(0)
}

// Back returns the last element.
func (g *Growable[T]) Back() (T, error) {
	return g.Get(g.fill - 1)
}

// Get returns the element at index.
func (g *Growable[T]) Get(index int) (T, error) {
	if err := g.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	return g.slots[index], nil
}

// Set replaces the element at index.
func (g *Growable[T]) Set(index int, value T) error {
	if err := g.checkExclusive(index); err != nil {
		return err
	}
	g.slots[index] = value
	return nil
}

// PushFront inserts value before the first element.
func (g *Growable[T]) PushFront(value T) error {
	return g.Insert(0, value)
}

// PushBack appends value.
func (g *Growable[T]) PushBack(value T) error {
	if g.fill == len(g.slots) {
		g.grow()
	}
	g.slots[g.fill] = value
	g.fill++
	return nil
}

// Insert places value at index, shifting elements at and after index toward
// the back. Valid indexes are in [0, Size()].
func (g *Growable[T]) Insert(index int, value T) error {
	if index < 0 || index > g.fill {
		return errBadIndex(index)
	}
	if g.fill == len(g.slots) {
		g.grow()
	}
	copy(g.slots[index+1:g.fill+1], g.slots[index:g.fill])
	g.slots[index] = value
	g.fill++
	return nil
}

// RemoveFront removes and returns the first element.
func (g *Growable[T]) RemoveFront() (T, error) {
	return g.Remove(0)
}

// RemoveBack removes and returns the last element.
func (g *Growable[T]) RemoveBack() (T, error) {
	return g.Remove(g.fill - 1)
}

// Remove removes and returns the element at index.
func (g *Growable[T]) Remove(index int) (T, error) {
	var zero T
	if err := g.checkExclusive(index); err != nil {
		return zero, err
	}
	v := g.slots[index]
	copy(g.slots[index:g.fill-1], g.slots[index+1:g.fill])
	g.fill--
	// Vacated slot must not keep the value reachable.
	g.slots[g.fill] = zero
	return v, nil
}

// Clear removes all elements. The backing array is kept.
func (g *Growable[T]) Clear() {
	var zero T
	for i := 0; i < g.fill; i++ {
		g.slots[i] = zero
	}
	g.fill = 0
}

// Range calls f for each element from front to back.
func (g *Growable[T]) Range(f func(index int, value T) bool) {
	for i := 0; i < g.fill; i++ {
		if !f(i, g.slots[i]) {
			return
		}
	}
}

// Values returns all elements in order.
func (g *Growable[T]) Values() []interface{} {
	return values[T](g)
}

func (g *Growable[T]) String() string {
	return format[T]("GrowableList", g)
}

func (g *Growable[T]) grow() {
	size := g.fill
	if size < 1 {
		size = 1
	}
	slots := make([]T, size*2)
	copy(slots, g.slots[:g.fill])
	g.log.Debug("storage grown", zap.Int("from", len(g.slots)), zap.Int("to", len(slots)))
	g.slots = slots
}

func (g *Growable[T]) checkExclusive(index int) error {
	if g.fill == 0 {
		return errEmpty()
	}
	if index < 0 || index >= g.fill {
		return errBadIndex(index)
	}
	return nil
}
