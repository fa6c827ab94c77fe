package lists

import (
	"github.com/ridge/must"
	"go.uber.org/zap"
)

// Chunked is a list storing elements in a growable sequence of blocks, each
// holding up to chunkSize consecutive elements.
//
// Every block present in the sequence holds at least one element. The list
// is the concatenation of blocks in sequence order.
type Chunked[T any] struct {
	log       *zap.Logger
	chunkSize int
	chunks    *Growable[*Block[T]]
}

// NewChunked returns an empty chunked list allocating blocks of chunkSize
// elements.
func NewChunked[T any](chunkSize int, opts ...Option) (*Chunked[T], error) {
	config, err := newConfig(append(append([]Option{}, opts...), WithChunkSize(chunkSize)))
	if err != nil {
		return nil, err
	}
	return &Chunked[T]{
		log:       config.Logger,
		chunkSize: config.ChunkSize,
		chunks:    newGrowable[*Block[T]](config.InitialCapacity, config.Logger),
	}, nil
}

// ChunkSize returns the capacity of every block.
func (c *Chunked[T]) ChunkSize() int {
	return c.chunkSize
}

// Chunks returns copies of the blocks' contents in sequence order.
func (c *Chunked[T]) Chunks() [][]T {
	result := make([][]T, 0, c.chunks.Size())
	c.chunks.Range(func(_ int, chunk *Block[T]) bool {
		result = append(result, append([]T(nil), chunk.slots[:chunk.count]...))
		return true
	})
	return result
}

// Size returns the number of elements in the list.
func (c *Chunked[T]) Size() int {
	total := 0
	c.chunks.Range(func(_ int, chunk *Block[T]) bool {
		total += chunk.Size()
		return true
	})
	return total
}

// Empty reports whether the list holds no elements.
func (c *Chunked[T]) Empty() bool {
	return c.chunks.Empty()
}

// Front returns the first element.
func (c *Chunked[T]) Front() (T, error) {
	chunk, err := c.chunks.Front()
	if err != nil {
		var v T
		return v, err
	}
	return chunk.Front()
}

// Back returns the last element.
func (c *Chunked[T]) Back() (T, error) {
	chunk, err := c.chunks.Back()
	if err != nil {
		var v T
		return v, err
	}
	return chunk.Back()
}

// Get returns the element at index.
func (c *Chunked[T]) Get(index int) (T, error) {
	var v T
	if c.Empty() {
		return v, errEmpty()
	}
	chunk, _, start, found := c.locate(index)
	if !found {
		return v, errBadIndex(index)
	}
	return chunk.Get(index - start)
}

// Set replaces the element at index. The index is validated before emptiness,
// so an empty list reports a bad index.
func (c *Chunked[T]) Set(index int, value T) error {
	if index < 0 || index >= c.Size() {
		return errBadIndex(index)
	}
	if c.Empty() {
		return errEmpty()
	}
	chunk, _, start, found := c.locate(index)
	if !found {
		return errBadIndex(index)
	}
	return chunk.Set(index-start, value)
}

// PushFront inserts value before the first element.
func (c *Chunked[T]) PushFront(value T) error {
	if c.chunks.Empty() {
		return c.attachFront().PushFront(value)
	}
	front, err := c.chunks.Front()
	if err != nil {
		return err
	}
	if front.Full() {
		front = c.attachFront()
	}
	return front.PushFront(value)
}

// PushBack appends value.
func (c *Chunked[T]) PushBack(value T) error {
	if c.chunks.Empty() {
		return c.attachBack().PushBack(value)
	}
	back, err := c.chunks.Back()
	if err != nil {
		return err
	}
	if back.Full() {
		back = c.attachBack()
	}
	return back.PushBack(value)
}

// Insert places value at index. Valid indexes are in [0, Size()].
//
// Inserting into a full block moves the block's last element (or value
// itself, when index is the block's end) to the front of the next block,
// allocating a new next block when there is none or it is full too.
func (c *Chunked[T]) Insert(index int, value T) error {
	if index == 0 && c.chunks.Empty() {
		return c.PushFront(value)
	}

	start := 0
	for pos := 0; pos < c.chunks.Size(); pos++ {
		chunk, err := c.chunks.Get(pos)
		if err != nil {
			return err
		}
		end := start + chunk.Size()
		if start <= index && index <= end {
			if !chunk.Full() {
				return chunk.Insert(index-start, value)
			}
			return c.split(pos, chunk, index-start, value)
		}
		start = end
	}
	return errBadIndex(index)
}

// RemoveFront removes and returns the first element.
func (c *Chunked[T]) RemoveFront() (T, error) {
	var v T
	if c.Empty() {
		return v, errEmpty()
	}
	front, err := c.chunks.Front()
	if err != nil {
		return v, err
	}
	v, err = front.RemoveFront()
	if err != nil {
		return v, err
	}
	if front.Empty() {
		if _, err := c.chunks.RemoveFront(); err != nil {
			return v, err
		}
		c.log.Debug("chunk detached", zap.Int("position", 0))
	}
	return v, nil
}

// RemoveBack removes and returns the last element.
func (c *Chunked[T]) RemoveBack() (T, error) {
	var v T
	if c.Empty() {
		return v, errEmpty()
	}
	back, err := c.chunks.Back()
	if err != nil {
		return v, err
	}
	v, err = back.RemoveBack()
	if err != nil {
		return v, err
	}
	if back.Empty() {
		if _, err := c.chunks.RemoveBack(); err != nil {
			return v, err
		}
		c.log.Debug("chunk detached", zap.Int("position", c.chunks.Size()))
	}
	return v, nil
}

// Remove removes and returns the element at index.
func (c *Chunked[T]) Remove(index int) (T, error) {
	var v T
	if c.Empty() {
		return v, errEmpty()
	}
	chunk, pos, start, found := c.locate(index)
	if !found {
		return v, errBadIndex(index)
	}
	v, err := chunk.Remove(index - start)
	if err != nil {
		return v, err
	}
	if chunk.Empty() {
		if _, err := c.chunks.Remove(pos); err != nil {
			return v, err
		}
		c.log.Debug("chunk detached", zap.Int("position", pos))
	}
	return v, nil
}

// Clear removes all elements and blocks.
func (c *Chunked[T]) Clear() {
	c.chunks.Clear()
}

// Range calls f for each element from front to back.
func (c *Chunked[T]) Range(f func(index int, value T) bool) {
	i := 0
	c.chunks.Range(func(_ int, chunk *Block[T]) bool {
		proceed := true
		chunk.Range(func(_ int, v T) bool {
			proceed = f(i, v)
			i++
			return proceed
		})
		return proceed
	})
}

// Values returns all elements in order.
func (c *Chunked[T]) Values() []interface{} {
	return values[T](c)
}

func (c *Chunked[T]) String() string {
	return format[T]("ChunkedList", c)
}

// locate finds the block holding index, its position in the sequence and the
// list index of its first element.
func (c *Chunked[T]) locate(index int) (chunk *Block[T], pos int, start int, found bool) {
	c.chunks.Range(func(i int, ch *Block[T]) bool {
		end := start + ch.Size()
		if start <= index && index < end {
			chunk, pos, found = ch, i, true
			return false
		}
		start = end
		return true
	})
	return chunk, pos, start, found
}

func (c *Chunked[T]) split(pos int, chunk *Block[T], local int, value T) error {
	var next *Block[T]
	if pos == c.chunks.Size()-1 {
		next = c.attach(pos + 1)
	} else {
		var err error
		next, err = c.chunks.Get(pos + 1)
		if err != nil {
			return err
		}
		if next.Full() {
			next = c.attach(pos + 1)
		}
	}

	if local == chunk.Size() {
		c.log.Debug("chunk split", zap.Int("position", pos), zap.Bool("displaced", false))
		return next.PushFront(value)
	}

	c.log.Debug("chunk split", zap.Int("position", pos), zap.Bool("displaced", true))
	last, err := chunk.RemoveBack()
	if err != nil {
		return err
	}
	if err := next.PushFront(last); err != nil {
		return err
	}
	return chunk.Insert(local, value)
}

func (c *Chunked[T]) attachFront() *Block[T] {
	return c.attach(0)
}

func (c *Chunked[T]) attachBack() *Block[T] {
	return c.attach(c.chunks.Size())
}

// attach inserts a new empty block at pos, which must be in [0, chunks.Size()].
func (c *Chunked[T]) attach(pos int) *Block[T] {
	chunk := newBlock[T](c.chunkSize)
	must.OK(c.chunks.Insert(pos, chunk))
	c.log.Debug("chunk allocated", zap.Int("position", pos))
	return chunk
}
