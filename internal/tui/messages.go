package tui

import "ooctl/pkg/logging"

// demoFinishedMsg carries the captured output of a demo run.
type demoFinishedMsg struct {
	Name   string
	Output string
	Err    error
}

// logEntryMsg wraps an entry received from the logger channel.
type logEntryMsg struct {
	Entry logging.LogEntry
}

// logChannelClosedMsg is sent once the logger channel is closed.
type logChannelClosedMsg struct{}

type clearStatusMsg struct {
	seq int
}
