package principles

import (
	"fmt"
	"strings"
)

// Report only holds data. Formatting and saving are separate
// responsibilities with separate reasons to change.
type Report struct {
	Title string
	Lines []string
}

type ReportFormatter interface {
	Format(r Report) string
}

type PlainFormatter struct{}

func (PlainFormatter) Format(r Report) string {
	return r.Title + "\n" + strings.Join(r.Lines, "\n")
}

type MarkdownFormatter struct{}

func (MarkdownFormatter) Format(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", r.Title)
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "- %s\n", l)
	}
	return b.String()
}

// ReportSaver persists formatted output somewhere.
type ReportSaver interface {
	Save(name, body string) error
}

// MemorySaver keeps saved reports in a map.
type MemorySaver struct {
	Saved map[string]string
}

func NewMemorySaver() *MemorySaver {
	return &MemorySaver{Saved: map[string]string{}}
}

func (m *MemorySaver) Save(name, body string) error {
	if name == "" {
		return fmt.Errorf("report name is required")
	}
	m.Saved[name] = body
	return nil
}

// Publish wires the three responsibilities together.
func Publish(r Report, f ReportFormatter, s ReportSaver) error {
	return s.Save(r.Title, f.Format(r))
}
