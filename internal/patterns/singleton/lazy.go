// Package singleton replaces the process-wide singleton with a value the
// composition root constructs once and hands to every client explicitly.
package singleton

import "sync"

// Lazy builds its value on the first Get and returns the same value after
// that. The owner of the Lazy, not a package variable, decides its lifetime.
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	value T
}

func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
	})
	return l.value
}
