package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tmenu/internal/layout"
	"tmenu/internal/options"
	"tmenu/internal/viewport"
)

// Outcome is the state of a picker session.
type Outcome int

const (
	Running Outcome = iota
	Selected
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Selected:
		return "selected"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Options configures a picker session.
type Options struct {
	// Title is nil when no title box is shown.
	Title *string
	// List is the initial option list, usually the fixed options plus a
	// first read of Source.
	List options.List
	// Source supplies the reloadable suffix; nil disables reloading.
	Source options.Source
	// RefreshInterval re-reads Source after this long without a key.
	// Zero disables auto-refresh.
	RefreshInterval time.Duration
	// Changes delivers a value whenever Source changed on disk.
	Changes <-chan struct{}
	// Renderer styles frames for the output terminal. Nil uses lipgloss's
	// default renderer, which inspects stdout.
	Renderer *lipgloss.Renderer
}

// Model is the picker session. All of its state is owned by the bubbletea
// event loop; timers and file notifications only deliver messages to it.
type Model struct {
	title    []string
	list     options.List
	source   options.Source
	view     viewport.State
	keys     keyMap
	width    int
	height   int
	refresh  time.Duration
	changes  <-chan struct{}
	renderer *lipgloss.Renderer
	// tickID invalidates pending reload timers whenever input arrives.
	tickID    int
	outcome   Outcome
	selection string
}

// New returns a running picker with the first option highlighted.
func New(opts Options) Model {
	m := Model{
		title:    layout.TitleLines(opts.Title),
		list:     opts.List,
		source:   opts.Source,
		keys:     defaultKeys,
		refresh:  opts.RefreshInterval,
		changes:  opts.Changes,
		renderer: opts.Renderer,
	}
	m.view = m.view.Normalize(m.list.Len(), m.rows())
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.refresh > 0 {
		cmds = append(cmds, reloadTickCmd(m.refresh, m.tickID))
	}
	if m.changes != nil {
		cmds = append(cmds, waitForChangeCmd(m.changes))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Outcome reports whether the session is still running, or how it ended.
func (m Model) Outcome() Outcome { return m.outcome }

// Selection returns the picked option text once the outcome is Selected.
func (m Model) Selection() (string, bool) {
	return m.selection, m.outcome == Selected
}

// Highlight returns the highlighted index, or false for an empty list.
func (m Model) Highlight() (int, bool) { return m.view.Selected(m.list.Len()) }

// Items returns the options currently shown.
func (m Model) Items() []string { return m.list.Items() }

func (m Model) geometry() layout.Geometry {
	return layout.Compute(m.width, m.height, len(m.title), m.list.Len())
}

func (m Model) rows() int { return m.geometry().VisibleRows() }
