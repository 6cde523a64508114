package tui

import (
	"bytes"
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ooctl/internal/catalogue"
	"ooctl/internal/config"
	"ooctl/pkg/logging"
)

const demoTimeout = 10 * time.Second

// runDemoCmd runs a concept demo off the UI loop and captures its output.
func runDemoCmd(registry *catalogue.Registry, name string, cfg config.OoctlConfig, logger *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), demoTimeout)
		defer cancel()

		var buf bytes.Buffer
		env := &catalogue.Env{Out: &buf, Logger: logger, Config: cfg}
		err := registry.Run(ctx, name, env)
		return demoFinishedMsg{Name: name, Output: buf.String(), Err: err}
	}
}

// listenForLogsCmd waits for the next log entry.
func listenForLogsCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return logEntryMsg{Entry: entry}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
