// Package render formats catalogue entries for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"ooctl/internal/catalogue"
	"ooctl/internal/tui/design"
)

const (
	nameColumnWidth     = 18
	categoryColumnWidth = 14
	minSummaryWidth     = 20
)

// ConceptTable writes an aligned table of concepts. Summaries are truncated
// to fit width; a width of zero disables truncation.
func ConceptTable(w io.Writer, concepts []catalogue.Concept, width int) {
	header := runewidth.FillRight("NAME", nameColumnWidth) +
		runewidth.FillRight("CATEGORY", categoryColumnWidth) + "SUMMARY"
	fmt.Fprintln(w, design.HeaderCellStyle.Render(header))

	summaryWidth := 0
	if width > 0 {
		summaryWidth = max(width-nameColumnWidth-categoryColumnWidth, minSummaryWidth)
	}

	for _, c := range concepts {
		name := runewidth.FillRight(runewidth.Truncate(c.Name, nameColumnWidth-1, "…"), nameColumnWidth)
		category := runewidth.FillRight(string(c.Category), categoryColumnWidth)
		summary := c.Summary
		if summaryWidth > 0 {
			summary = runewidth.Truncate(summary, summaryWidth, "…")
		}
		fmt.Fprintln(w, name+design.GetCategoryStyle(string(c.Category)).Render(category)+summary)
	}
}

// ConceptDetail renders the notes and code samples of one concept.
func ConceptDetail(c catalogue.Concept, showSamples bool) string {
	var b strings.Builder

	b.WriteString(design.TitleStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(design.GetCategoryStyle(string(c.Category)).Render(string(c.Category)))
	b.WriteString(" · ")
	b.WriteString(design.SubtitleStyle.Render(c.Summary))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(c.Notes, "\n"))
	b.WriteString("\n")

	if showSamples {
		if c.Bad != "" {
			b.WriteString("\n")
			b.WriteString(design.TextErrorStyle.Render("Before"))
			b.WriteString("\n")
			b.WriteString(design.CodeBadStyle.Render(strings.TrimRight(c.Bad, "\n")))
			b.WriteString("\n")
		}
		if c.Good != "" {
			b.WriteString("\n")
			b.WriteString(design.TextSuccessStyle.Render("After"))
			b.WriteString("\n")
			b.WriteString(design.CodeGoodStyle.Render(strings.TrimRight(c.Good, "\n")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Markdown renders a concept as unstyled markdown, for the clipboard.
func Markdown(c catalogue.Concept) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", c.Title)
	fmt.Fprintf(&b, "*%s*: %s\n\n", c.Category, c.Summary)
	b.WriteString(strings.TrimRight(c.Notes, "\n"))
	b.WriteString("\n")
	if c.Bad != "" {
		fmt.Fprintf(&b, "\nBefore:\n\n```go\n%s\n```\n", strings.TrimRight(c.Bad, "\n"))
	}
	if c.Good != "" {
		fmt.Fprintf(&b, "\nAfter:\n\n```go\n%s\n```\n", strings.TrimRight(c.Good, "\n"))
	}
	return b.String()
}
