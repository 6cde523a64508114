// Package observer keeps an ordered list of listeners and notifies each of
// them synchronously, in attachment order, when the subject's state changes.
package observer

import (
	"github.com/google/uuid"
)

// Observer is notified with the subject's new state.
type Observer[T any] interface {
	Update(state T)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc[T any] func(T)

func (f ObserverFunc[T]) Update(state T) { f(state) }

// Subscription identifies one attached observer.
type Subscription struct {
	ID string
}

type entry[T any] struct {
	sub      Subscription
	observer Observer[T]
}

// Subject owns the ordered observer list. It is not safe for concurrent use.
type Subject[T any] struct {
	observers []entry[T]
}

// Attach appends an observer and returns its subscription handle. The same
// observer may be attached more than once; each attachment is notified.
func (s *Subject[T]) Attach(o Observer[T]) Subscription {
	sub := Subscription{ID: uuid.NewString()}
	s.observers = append(s.observers, entry[T]{sub: sub, observer: o})
	return sub
}

// Detach removes the observer behind sub. It reports whether it was found.
func (s *Subject[T]) Detach(sub Subscription) bool {
	for i, e := range s.observers {
		if e.sub == sub {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify calls every observer in attachment order. The list is copied first:
// attaching or detaching from inside Update only affects later notifications.
func (s *Subject[T]) Notify(state T) {
	snapshot := make([]entry[T], len(s.observers))
	copy(snapshot, s.observers)

	for _, e := range snapshot {
		e.observer.Update(state)
	}
}

// Len returns the number of attached observers.
func (s *Subject[T]) Len() int {
	return len(s.observers)
}
