// Package iterator lets a client walk two menus stored in different
// collections through one interface, without seeing how either is stored.
package iterator

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by Next once every element has been returned.
var ErrExhausted = errors.New("iterator exhausted")

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Seq adapts an Iterator to a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v := range Seq(it) {
		out = append(out, v)
	}
	return out
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (s *sliceIterator[T]) HasNext() bool {
	return s.pos < len(s.items)
}

func (s *sliceIterator[T]) Next() (T, error) {
	if !s.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}

// FromSlice iterates over items in order.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}
