package memento

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoHistory is returned when Undo has nothing to restore.
var ErrNoHistory = errors.New("no history to undo")

// UndoPolicy decides which snapshot Undo restores.
type UndoPolicy int

const (
	// RestoreLatest pops the most recent snapshot and restores it.
	RestoreLatest UndoPolicy = iota
	// RestorePrevious pops the most recent snapshot and restores the one
	// below it. The most recent snapshot is never restorable this way.
	RestorePrevious
)

func (p UndoPolicy) String() string {
	switch p {
	case RestoreLatest:
		return "restore-latest"
	case RestorePrevious:
		return "restore-previous"
	default:
		return "unknown"
	}
}

// ParseUndoPolicy reads a policy from its configuration name.
func ParseUndoPolicy(s string) (UndoPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restore-latest":
		return RestoreLatest, nil
	case "restore-previous":
		return RestorePrevious, nil
	}
	return RestoreLatest, fmt.Errorf("unknown undo policy %q", s)
}

// Caretaker owns the snapshot history of one editor.
type Caretaker struct {
	editor  *Editor
	policy  UndoPolicy
	history []Snapshot
}

func NewCaretaker(editor *Editor, policy UndoPolicy) *Caretaker {
	return &Caretaker{editor: editor, policy: policy}
}

// Backup pushes the editor's current state.
func (c *Caretaker) Backup(label string) Snapshot {
	s := c.editor.Save(label)
	c.history = append(c.history, s)
	return s
}

// Undo restores a snapshot according to the policy and returns it. On
// ErrNoHistory neither the editor nor the history is modified.
func (c *Caretaker) Undo() (Snapshot, error) {
	switch c.policy {
	case RestorePrevious:
		if len(c.history) < 2 {
			return Snapshot{}, ErrNoHistory
		}
		c.history = c.history[:len(c.history)-1]
		s := c.history[len(c.history)-1]
		c.editor.Restore(s)
		return s, nil
	default:
		if len(c.history) == 0 {
			return Snapshot{}, ErrNoHistory
		}
		s := c.history[len(c.history)-1]
		c.history = c.history[:len(c.history)-1]
		c.editor.Restore(s)
		return s, nil
	}
}

// History lists snapshot labels, newest first.
func (c *Caretaker) History() []string {
	labels := make([]string, 0, len(c.history))
	for i := len(c.history) - 1; i >= 0; i-- {
		labels = append(labels, c.history[i].Label())
	}
	return labels
}

func (c *Caretaker) Len() int {
	return len(c.history)
}

func (c *Caretaker) Policy() UndoPolicy {
	return c.policy
}

// Export renders the history as YAML, oldest first.
func (c *Caretaker) Export() ([]byte, error) {
	return yaml.Marshal(map[string]interface{}{
		"policy":    c.policy.String(),
		"snapshots": c.history,
	})
}
