package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

type pointerGreeter struct{ word string }

func (p *pointerGreeter) Greet() string { return p.word }

func TestSlot_ZeroValueIsUnbound(t *testing.T) {
	var s Slot[greeter]

	assert.False(t, s.Bound())
	_, err := s.Get()
	require.ErrorIs(t, err, ErrUnbound)
	assert.Contains(t, err.Error(), "behavior.greeter")
}

func TestSlot_NamedErrorMentionsCapability(t *testing.T) {
	s := Named[greeter]("greeting")

	_, err := s.Get()
	require.ErrorIs(t, err, ErrUnbound)
	assert.Equal(t, "greeting: no collaborator attached", err.Error())
}

func TestSlot_RebindIsVisibleOnNextCall(t *testing.T) {
	s := NewSlot[greeter](english{})

	g, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	s.Set(french{})
	g, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "bonjour", g.Greet())
}

func TestSlot_NilUnbinds(t *testing.T) {
	s := NewSlot[greeter](english{})
	s.Set(nil)
	assert.False(t, s.Bound())

	var typedNil *pointerGreeter
	s = NewSlot[greeter](&pointerGreeter{word: "hi"})
	s.Set(typedNil)
	assert.False(t, s.Bound())
	_, err := s.Get()
	assert.ErrorIs(t, err, ErrUnbound)
}

func TestSlot_Clear(t *testing.T) {
	s := NewSlot[greeter](english{})
	s.Clear()

	_, err := s.Get()
	assert.ErrorIs(t, err, ErrUnbound)
}
