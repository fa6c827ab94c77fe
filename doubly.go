package lists

type doublyNode[T any] struct {
	value T
	prev  int
	next  int
}

// Doubly is a doubly linked list backed by an arena of nodes linked by slot
// index.
type Doubly[T any] struct {
	nodes []doublyNode[T]
	free  []int
	head  int
	tail  int
	size  int
}

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T any]() *Doubly[T] {
	return &Doubly[T]{
		head: none,
		tail: none,
	}
}

// Size returns the number of elements in the list.
func (l *Doubly[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Doubly[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element.
func (l *Doubly[T]) Front() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.nodes[l.head].value, nil
}

// Back returns the last element.
func (l *Doubly[T]) Back() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.nodes[l.tail].value, nil
}

// Get returns the element at index.
func (l *Doubly[T]) Get(index int) (T, error) {
	if err := l.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	return l.nodes[l.slotAt(index)].value, nil
}

// Set replaces the element at index.
func (l *Doubly[T]) Set(index int, value T) error {
	if err := l.checkExclusive(index); err != nil {
		return err
	}
	l.nodes[l.slotAt(index)].value = value
	return nil
}

// PushFront inserts value before the first element.
func (l *Doubly[T]) PushFront(value T) error {
	l.link(none, l.head, value)
	return nil
}

// PushBack appends value.
func (l *Doubly[T]) PushBack(value T) error {
	l.link(l.tail, none, value)
	return nil
}

// Insert places value at index. Valid indexes are in [0, Size()].
func (l *Doubly[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return errBadIndex(index)
	}
	if index == l.size {
		return l.PushBack(value)
	}
	next := l.slotAt(index)
	l.link(l.nodes[next].prev, next, value)
	return nil
}

// RemoveFront removes and returns the first element.
func (l *Doubly[T]) RemoveFront() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.unlink(l.head), nil
}

// RemoveBack removes and returns the last element.
func (l *Doubly[T]) RemoveBack() (T, error) {
	if l.size == 0 {
		var v T
		return v, errEmpty()
	}
	return l.unlink(l.tail), nil
}

// Remove removes and returns the element at index.
func (l *Doubly[T]) Remove(index int) (T, error) {
	if err := l.checkExclusive(index); err != nil {
		var v T
		return v, err
	}
	return l.unlink(l.slotAt(index)), nil
}

// Clear removes all elements.
func (l *Doubly[T]) Clear() {
	l.nodes = nil
	l.free = nil
	l.head = none
	l.tail = none
	l.size = 0
}

// Range calls f for each element from front to back.
func (l *Doubly[T]) Range(f func(index int, value T) bool) {
	for i, slot := 0, l.head; slot != none; i, slot = i+1, l.nodes[slot].next {
		if !f(i, l.nodes[slot].value) {
			return
		}
	}
}

// Values returns all elements in order.
func (l *Doubly[T]) Values() []interface{} {
	return values[T](l)
}

func (l *Doubly[T]) String() string {
	return format[T]("DoublyLinkedList", l)
}

// slotAt walks from whichever end is closer to index.
func (l *Doubly[T]) slotAt(index int) int {
	if index < l.size/2 {
		slot := l.head
		for ; index > 0; index-- {
			slot = l.nodes[slot].next
		}
		return slot
	}
	slot := l.tail
	for i := l.size - 1; i > index; i-- {
		slot = l.nodes[slot].prev
	}
	return slot
}

// link stores value in a node placed between prev and next.
func (l *Doubly[T]) link(prev, next int, value T) {
	node := doublyNode[T]{value: value, prev: prev, next: next}
	var slot int
	if n := len(l.free); n > 0 {
		slot = l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[slot] = node
	} else {
		l.nodes = append(l.nodes, node)
		slot = len(l.nodes) - 1
	}

	if prev == none {
		l.head = slot
	} else {
		l.nodes[prev].next = slot
	}
	if next == none {
		l.tail = slot
	} else {
		l.nodes[next].prev = slot
	}
	l.size++
}

func (l *Doubly[T]) unlink(slot int) T {
	node := l.nodes[slot]
	if node.prev == none {
		l.head = node.next
	} else {
		l.nodes[node.prev].next = node.next
	}
	if node.next == none {
		l.tail = node.prev
	} else {
		l.nodes[node.next].prev = node.prev
	}
	l.nodes[slot] = doublyNode[T]{prev: none, next: none}
	l.free = append(l.free, slot)
	l.size--
	return node.value
}

func (l *Doubly[T]) checkExclusive(index int) error {
	if l.size == 0 {
		return errEmpty()
	}
	if index < 0 || index >= l.size {
		return errBadIndex(index)
	}
	return nil
}
