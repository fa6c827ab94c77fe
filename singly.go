package lists

// none terminates links between arena slots.
const none = -1

type singlyNode[T any] struct {
	value T
	next  int
}

// Singly is a singly linked list. Nodes live in an arena slice and are linked
// by slot index; released slots are reused.
type Singly[T any] struct {
	nodes []singlyNode[T]
	free  []int
	head  int
	tail  int
	size  int
}

// NewSingly returns an empty singly linked list.
func NewSingly[T any]() *Singly[T] {
	return &Singly[T]{
		head: none,
		tail: none,
	}
}

// Size returns the number of elements in the list.
func (l *Singly[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Singly[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element.
func (l *Singly[T]) Front() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.nodes[l.head].value, nil
}

// Back returns the last element.
func (l *Singly[T]) Back() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.nodes[l.tail].value, nil
}

// Get returns the element at index.
func (l *Singly[T]) Get(index int) (T, error) {
	if err := l.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	return l.nodes[l.slotAt(index)].value, nil
}

// Set replaces the element at index.
func (l *Singly[T]) Set(index int, value T) error {
	if err := l.checkExclusive(index); err != nil {
		return err
	}
	l.nodes[l.slotAt(index)].value = value
	return nil
}

// PushFront inserts value before the first element.
func (l *Singly[T]) PushFront(value T) error {
	slot := l.alloc(value, l.head)
	l.head = slot
	if l.tail == none {
		l.tail = slot
	}
	l.size++
	return nil
}

// PushBack appends value.
func (l *Singly[T]) PushBack(value T) error {
	slot := l.alloc(value, none)
	if l.tail == none {
		l.head = slot
	} else {
		l.nodes[l.tail].next = slot
	}
	l.tail = slot
	l.size++
	return nil
}

// Insert places value at index. Valid indexes are in [0, Size()].
func (l *Singly[T]) Insert(index int, value T) error {
	switch {
	case index < 0 || index > l.size:
		return errBadIndex(index)
	case index == 0:
		return l.PushFront(value)
	case index == l.size:
		return l.PushBack(value)
	}
	prev := l.slotAt(index - 1)
	slot := l.alloc(value, l.nodes[prev].next)
	l.nodes[prev].next = slot
	l.size++
	return nil
}

// RemoveFront removes and returns the first element.
func (l *Singly[T]) RemoveFront() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	slot := l.head
	l.head = l.nodes[slot].next
	if l.head == none {
		l.tail = none
	}
	l.size--
	return l.release(slot), nil
}

// RemoveBack removes and returns the last element.
func (l *Singly[T]) RemoveBack() (T, error) {
	return l.Remove(l.size - 1)
}

// Remove removes and returns the element at index.
func (l *Singly[T]) Remove(index int) (T, error) {
	if err := l.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	if index == 0 {
		return l.RemoveFront()
	}
	prev := l.slotAt(index - 1)
	slot := l.nodes[prev].next
	l.nodes[prev].next = l.nodes[slot].next
	if slot == l.tail {
		l.tail = prev
	}
	l.size--
	return l.release(slot), nil
}

// Clear removes all elements.
func (l *Singly[T]) Clear() {
	l.nodes = nil
	l.free = nil
	l.head = none
	l.tail = none
	l.size = 0
}

// Range calls f for each element from front to back.
func (l *Singly[T]) Range(f func(index int, value T) bool) {
	for i, slot := 0, l.head; slot != none; i, slot = i+1, l.nodes[slot].next {
		if !f(i, l.nodes[slot].value) {
			return
		}
	}
}

// Values returns all elements in order.
func (l *Singly[T]) Values() []interface{} {
	return values[T](l)
}

func (l *Singly[T]) String() string {
	return format[T]("SinglyLinkedList", l)
}

func (l *Singly[T]) slotAt(index int) int {
	slot := l.head
	for ; index > 0; index-- {
		slot = l.nodes[slot].next
	}
	return slot
}

func (l *Singly[T]) alloc(value T, next int) int {
	node := singlyNode[T]{value: value, next: next}
	if n := len(l.free); n > 0 {
		slot := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[slot] = node
		return slot
	}
	l.nodes = append(l.nodes, node)
	return len(l.nodes) - 1
}

func (l *Singly[T]) release(slot int) T {
	v := l.nodes[slot].value
	l.nodes[slot] = singlyNode[T]{next: none}
	l.free = append(l.free, slot)
	return v
}

func (l *Singly[T]) checkExclusive(index int) error {
	if l.size == 0 {
		return errEmpty()
	}
	if index < 0 || index >= l.size {
		return errBadIndex(index)
	}
	return nil
}
