// Package command reifies a request as an object bundling a receiver and an
// operation, so an invoker can trigger it without knowing either.
package command

import (
	"errors"
	"fmt"
	"strings"

	"ooctl/internal/behavior"
)

// ErrSlotOutOfRange is returned by RemoteControl for an invalid slot.
var ErrSlotOutOfRange = errors.New("slot out of range")

// Command is a single synchronous request.
type Command interface {
	Execute() string
}

// CommandFunc adapts a function to Command.
type CommandFunc func() string

func (f CommandFunc) Execute() string { return f() }

// NoCommand is the null object placed in empty slots.
type NoCommand struct{}

func (NoCommand) Execute() string { return "no command" }

// orNoCommand substitutes NoCommand for a nil or typed-nil command.
func orNoCommand(c Command) Command {
	s := behavior.NewSlot(c)
	if bound, err := s.Get(); err == nil {
		return bound
	}
	return NoCommand{}
}

// MacroCommand executes its children in order. Nil children act as NoCommand.
type MacroCommand []Command

func (m MacroCommand) Execute() string {
	results := make([]string, 0, len(m))
	for _, c := range m {
		results = append(results, orNoCommand(c).Execute())
	}
	return strings.Join(results, "; ")
}

// RemoteControl is the invoker.
type RemoteControl struct {
	slots []behavior.Slot[Command]
}

// NewRemoteControl returns an invoker with n empty slots. Pressing an empty
// slot runs NoCommand.
func NewRemoteControl(n int) *RemoteControl {
	slots := make([]behavior.Slot[Command], max(n, 0))
	for i := range slots {
		slots[i] = behavior.Named[Command](fmt.Sprintf("slot %d", i))
	}
	return &RemoteControl{slots: slots}
}

func (r *RemoteControl) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.slots) {
		return fmt.Errorf("slot %d of %d: %w", slot, len(r.slots), ErrSlotOutOfRange)
	}
	return nil
}

// SetCommand binds cmd to slot. A nil command, including a typed nil such as
// CommandFunc(nil), empties the slot.
func (r *RemoteControl) SetCommand(slot int, cmd Command) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	r.slots[slot].Set(cmd)
	return nil
}

// Command returns the command bound to slot, or behavior.ErrUnbound when the
// slot is empty.
func (r *RemoteControl) Command(slot int) (Command, error) {
	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}
	return r.slots[slot].Get()
}

// Press executes the command bound to slot.
func (r *RemoteControl) Press(slot int) (string, error) {
	cmd, err := r.Command(slot)
	switch {
	case errors.Is(err, behavior.ErrUnbound):
		cmd = NoCommand{}
	case err != nil:
		return "", err
	}
	return cmd.Execute(), nil
}

func (r *RemoteControl) Slots() int {
	return len(r.slots)
}
