package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ooctl/internal/catalogue"
	"ooctl/internal/config"
	"ooctl/internal/render"
	"ooctl/internal/tui/design"
	"ooctl/pkg/logging"
)

const statusDuration = 3 * time.Second

type panel int

const (
	panelList panel = iota
	panelDetail
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// conceptItem adapts a catalogue concept to the bubbles list.
type conceptItem struct {
	concept catalogue.Concept
}

func (i conceptItem) Title() string       { return i.concept.Title }
func (i conceptItem) Description() string { return string(i.concept.Category) }
func (i conceptItem) FilterValue() string { return i.concept.Name + " " + i.concept.Title }

// Options configures a Browser.
type Options struct {
	Registry *catalogue.Registry
	Config   config.OoctlConfig
	Logger   *logging.Logger
	Logs     <-chan logging.LogEntry
}

// Browser is the bubbletea model for browsing and running concepts.
type Browser struct {
	registry *catalogue.Registry
	cfg      config.OoctlConfig
	logger   *logging.Logger
	logs     <-chan logging.LogEntry

	keys   keyMap
	help   help.Model
	list   list.Model
	detail viewport.Model
	focus  panel

	showNotes bool
	outputs   map[string]string
	running   string

	status     string
	statusKind statusKind
	statusSeq  int
	lastLog    string

	width, height int
	ready         bool

	copyToClipboard func(string) error
}

// NewBrowser builds the browser model over every registered concept.
func NewBrowser(opts Options) *Browser {
	concepts := opts.Registry.List("")
	items := make([]list.Item, 0, len(concepts))
	for _, c := range concepts {
		items = append(items, conceptItem{concept: c})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Concepts"
	l.SetShowHelp(false)

	return &Browser{
		registry:        opts.Registry,
		cfg:             opts.Config,
		logger:          opts.Logger,
		logs:            opts.Logs,
		keys:            defaultKeyMap(),
		help:            help.New(),
		list:            l,
		detail:          viewport.New(0, 0),
		showNotes:       opts.Config.ShowNotes(),
		outputs:         make(map[string]string),
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init starts listening for log entries.
func (b *Browser) Init() tea.Cmd {
	return listenForLogsCmd(b.logs)
}

// Update handles a single message.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.ready = true
		b.resize()
		b.refreshDetail()
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)

	case demoFinishedMsg:
		b.running = ""
		out := msg.Output
		if msg.Err != nil {
			out += "\nerror: " + msg.Err.Error()
			b.logger.Error("TUI", msg.Err, "Demo %s failed", msg.Name)
		}
		b.outputs[msg.Name] = out
		b.refreshDetail()
		if msg.Err != nil {
			return b, b.setStatus(fmt.Sprintf("Demo %s failed", msg.Name), statusError)
		}
		return b, b.setStatus(fmt.Sprintf("Demo %s finished", msg.Name), statusSuccess)

	case logEntryMsg:
		b.lastLog = formatLogEntry(msg.Entry)
		return b, listenForLogsCmd(b.logs)

	case logChannelClosedMsg:
		b.logs = nil
		return b, nil

	case clearStatusMsg:
		if msg.seq == b.statusSeq {
			b.status = ""
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter every key belongs to the list.
	if b.list.SettingFilter() {
		return b.updateList(msg)
	}

	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.FocusNext):
		if b.focus == panelList {
			b.focus = panelDetail
		} else {
			b.focus = panelList
		}
		return b, nil

	case key.Matches(msg, b.keys.ToggleNote):
		b.showNotes = !b.showNotes
		b.refreshDetail()
		return b, nil

	case key.Matches(msg, b.keys.Run):
		c, ok := b.selected()
		if !ok {
			return b, nil
		}
		if c.Demo == nil {
			return b, b.setStatus(fmt.Sprintf("%s has no demo", c.Name), statusError)
		}
		b.running = c.Name
		b.refreshDetail()
		return b, tea.Batch(
			b.setStatus(fmt.Sprintf("Running %s...", c.Name), statusInfo),
			runDemoCmd(b.registry, c.Name, b.cfg, b.logger),
		)

	case key.Matches(msg, b.keys.Copy):
		c, ok := b.selected()
		if !ok {
			return b, nil
		}
		if err := b.copyToClipboard(render.Markdown(c)); err != nil {
			b.logger.Error("TUI", err, "Failed to copy %s", c.Name)
			return b, b.setStatus("Failed to copy to clipboard", statusError)
		}
		return b, b.setStatus(fmt.Sprintf("Copied %s to clipboard", c.Name), statusSuccess)
	}

	if b.focus == panelDetail {
		var cmd tea.Cmd
		b.detail, cmd = b.detail.Update(msg)
		return b, cmd
	}
	return b.updateList(msg)
}

func (b *Browser) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	before, _ := b.selected()
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	if after, _ := b.selected(); after.Name != before.Name {
		b.refreshDetail()
		b.detail.GotoTop()
	}
	return b, cmd
}

func (b *Browser) selected() (catalogue.Concept, bool) {
	item, ok := b.list.SelectedItem().(conceptItem)
	if !ok {
		return catalogue.Concept{}, false
	}
	return item.concept, true
}

func (b *Browser) setStatus(message string, kind statusKind) tea.Cmd {
	b.status = message
	b.statusKind = kind
	b.statusSeq++
	return clearStatusAfter(statusDuration, b.statusSeq)
}

func (b *Browser) resize() {
	frameW, frameH := design.PanelStyle.GetFrameSize()
	bodyHeight := max(b.height-2-frameH, 1) // status bar and help line

	listWidth := max(b.width/3, 24)
	detailWidth := max(b.width-listWidth-2*frameW, 10)

	b.list.SetSize(listWidth, bodyHeight)
	b.detail.Width = detailWidth
	b.detail.Height = bodyHeight
	b.help.Width = b.width
}

func (b *Browser) refreshDetail() {
	c, ok := b.selected()
	if !ok {
		b.detail.SetContent(design.DimStyle.Render("No concepts registered."))
		return
	}
	b.detail.SetContent(b.detailContent(c))
}

func (b *Browser) detailContent(c catalogue.Concept) string {
	var sb strings.Builder
	if b.showNotes {
		sb.WriteString(render.ConceptDetail(c, true))
	} else {
		sb.WriteString(design.TitleStyle.Render(c.Title))
		sb.WriteString("\n")
		sb.WriteString(design.SubtitleStyle.Render(c.Summary))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(design.HeaderCellStyle.Render("Demo output"))
	sb.WriteString("\n")
	switch out, ran := b.outputs[c.Name]; {
	case b.running == c.Name:
		sb.WriteString(design.DimStyle.Render("running..."))
	case ran:
		sb.WriteString(strings.TrimRight(out, "\n"))
	default:
		sb.WriteString(design.DimStyle.Render("press enter to run"))
	}
	sb.WriteString("\n")

	if b.detail.Width > 0 {
		return lipgloss.NewStyle().Width(b.detail.Width).Render(sb.String())
	}
	return sb.String()
}

// View renders the browser.
func (b *Browser) View() string {
	if !b.ready {
		return "Initializing..."
	}

	listStyle, detailStyle := design.PanelFocusedStyle, design.PanelStyle
	if b.focus == panelDetail {
		listStyle, detailStyle = design.PanelStyle, design.PanelFocusedStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(b.list.View()),
		detailStyle.Render(b.detail.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		b.renderStatusBar(),
		b.help.View(b.keys),
	)
}

func (b *Browser) renderStatusBar() string {
	text := b.lastLog
	switch {
	case b.status != "" && b.statusKind == statusError:
		text = design.TextErrorStyle.Render(b.status)
	case b.status != "" && b.statusKind == statusSuccess:
		text = design.TextSuccessStyle.Render(b.status)
	case b.status != "":
		text = design.TextInfoStyle.Render(b.status)
	}
	return design.StatusBarStyle.Width(b.width).Render(text)
}

func formatLogEntry(e logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] %s", e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return design.GetLogLevelStyle(e.Level.String()).Render(line)
}
