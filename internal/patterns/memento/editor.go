// Package memento captures an editor's state in opaque snapshots and lets a
// caretaker restore earlier states from a last-in-first-out history.
package memento

import (
	"time"

	"github.com/google/uuid"
)

// Editor is the originator.
type Editor struct {
	content string
	cursor  int
}

func NewEditor() *Editor {
	return &Editor{}
}

// Type appends text and moves the cursor to the end.
func (e *Editor) Type(text string) {
	e.content += text
	e.cursor = len(e.content)
}

// SetCursor moves the cursor, clamped to the content bounds.
func (e *Editor) SetCursor(pos int) {
	e.cursor = max(0, min(pos, len(e.content)))
}

func (e *Editor) Content() string { return e.content }
func (e *Editor) Cursor() int     { return e.cursor }

// Save captures the current state.
func (e *Editor) Save(label string) Snapshot {
	return Snapshot{
		id:        uuid.NewString(),
		label:     label,
		createdAt: time.Now(),
		content:   e.content,
		cursor:    e.cursor,
	}
}

// Restore resets the editor to s.
func (e *Editor) Restore(s Snapshot) {
	e.content = s.content
	e.cursor = s.cursor
}

// Snapshot is an immutable capture of an Editor. Only the editor can read
// the captured state back; everyone else sees the metadata.
type Snapshot struct {
	id        string
	label     string
	createdAt time.Time
	content   string
	cursor    int
}

func (s Snapshot) ID() string           { return s.id }
func (s Snapshot) Label() string        { return s.label }
func (s Snapshot) CreatedAt() time.Time { return s.createdAt }

// MarshalYAML exports the snapshot for display.
func (s Snapshot) MarshalYAML() (interface{}, error) {
	return struct {
		ID        string    `yaml:"id"`
		Label     string    `yaml:"label"`
		CreatedAt time.Time `yaml:"createdAt"`
		Content   string    `yaml:"content"`
		Cursor    int       `yaml:"cursor"`
	}{s.id, s.label, s.createdAt, s.content, s.cursor}, nil
}
