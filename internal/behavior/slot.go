package behavior

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnbound is returned when a subject delegates to a slot that has no
// collaborator attached.
var ErrUnbound = errors.New("no collaborator attached")

// Slot holds the current collaborator for one capability. The zero value is
// an unbound slot.
type Slot[C any] struct {
	name  string
	value C
	bound bool
}

// NewSlot returns a slot bound to c.
func NewSlot[C any](c C) Slot[C] {
	var s Slot[C]
	s.Set(c)
	return s
}

// Named returns an unbound slot whose errors mention the capability name.
func Named[C any](name string) Slot[C] {
	return Slot[C]{name: name}
}

// Set rebinds the slot. A nil collaborator unbinds it.
func (s *Slot[C]) Set(c C) {
	if isNil(c) {
		s.Clear()
		return
	}
	s.value = c
	s.bound = true
}

// Clear detaches the current collaborator.
func (s *Slot[C]) Clear() {
	var zero C
	s.value = zero
	s.bound = false
}

// Bound reports whether a collaborator is attached.
func (s *Slot[C]) Bound() bool {
	return s.bound
}

// Get returns the attached collaborator or ErrUnbound.
func (s *Slot[C]) Get() (C, error) {
	if !s.bound {
		var zero C
		return zero, fmt.Errorf("%s: %w", s.capability(), ErrUnbound)
	}
	return s.value, nil
}

func (s *Slot[C]) capability() string {
	if s.name != "" {
		return s.name
	}
	return reflect.TypeFor[C]().String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
