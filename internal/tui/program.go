package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps a browser in a full-screen bubbletea program that stops
// when ctx is cancelled.
func NewProgram(ctx context.Context, opts Options) *tea.Program {
	return tea.NewProgram(NewBrowser(opts), tea.WithAltScreen(), tea.WithContext(ctx))
}
