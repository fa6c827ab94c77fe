// Package lists implements one ordered-sequence contract on top of four
// representations: a singly linked list, a doubly linked list, a growable
// array and a chunked list storing elements in fixed-capacity blocks.
//
// None of the types is safe for concurrent use.
package lists

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind names a list representation.
type Kind string

// Available kinds.
const (
	KindSingly   Kind = "singly"
	KindDoubly   Kind = "doubly"
	KindGrowable Kind = "growable"
	KindChunked  Kind = "chunked"
)

// New creates an empty list of the requested kind.
func New[T any](kind Kind, opts ...Option) (List[T], error) {
	switch kind {
	case KindSingly:
		return NewSingly[T](), nil
	case KindDoubly:
		return NewDoubly[T](), nil
	case KindGrowable:
		l, err := NewGrowable[T](opts...)
		if err != nil {
			return nil, err
		}
		return l, nil
	case KindChunked:
		config, err := newConfig(opts)
		if err != nil {
			return nil, err
		}
		l, err := NewChunked[T](config.ChunkSize, opts...)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, errors.Wrapf(ErrUnimplemented, "list kind %q", kind)
	}
}

type ranger[T any] interface {
	Size() int
	Range(f func(index int, value T) bool)
}

func values[T any](r ranger[T]) []interface{} {
	vs := make([]interface{}, 0, r.Size())
	r.Range(func(_ int, v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func format[T any](name string, r ranger[T]) string {
	items := make([]string, 0, r.Size())
	r.Range(func(_ int, v T) bool {
		items = append(items, fmt.Sprintf("%v", v))
		return true
	})
	return name + "\n" + strings.Join(items, ", ")
}
