package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tmenu/internal/options"
	"tmenu/internal/system"
	"tmenu/internal/viewport"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.outcome != Running {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view = m.view.Apply(viewport.Resize, m.list.Len(), m.rows())
		system.Logger.Debug("resize", "width", msg.Width, "height", msg.Height, "rows", m.rows())
		// a resize counts as input for the idle wait, like a key
		cmd := m.restartIdle()
		// repaint from scratch so nothing of the old layout survives
		if cmd == nil {
			return m, tea.ClearScreen
		}
		return m, tea.Batch(tea.ClearScreen, cmd)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case reloadTickMsg:
		// input arrived after this timer was armed
		if msg.id != m.tickID {
			return m, nil
		}
		m.reload("timer")
		return m, reloadTickCmd(m.refresh, m.tickID)
	case sourceChangedMsg:
		if !msg.ok {
			system.Logger.Debug("watch stopped")
			return m, nil
		}
		m.reload("watch")
		return m, waitForChangeCmd(m.changes)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.restartIdle()

	n := m.list.Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.view = m.view.Apply(viewport.Up, n, m.rows())
	case key.Matches(msg, m.keys.Down):
		m.view = m.view.Apply(viewport.Down, n, m.rows())
	case key.Matches(msg, m.keys.PageUp):
		m.view = m.view.Apply(viewport.PageUp, n, m.rows())
	case key.Matches(msg, m.keys.PageDown):
		m.view = m.view.Apply(viewport.PageDown, n, m.rows())
	case key.Matches(msg, m.keys.Select):
		if i, ok := m.view.Selected(n); ok {
			m.outcome = Selected
			m.selection = m.list.At(i)
		} else {
			// nothing to pick on an empty list
			m.outcome = Cancelled
		}
		system.Logger.Debug("exit", "outcome", m.outcome)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.outcome = Cancelled
		system.Logger.Debug("exit", "outcome", m.outcome, "key", msg.String())
		return m, tea.Quit
	}
	return m, cmd
}

// restartIdle invalidates the pending auto-refresh timer and arms a new one.
func (m *Model) restartIdle() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	m.tickID++
	return reloadTickCmd(m.refresh, m.tickID)
}

// reload re-reads the suffix and keeps the highlight on the same text when
// it is still present.
func (m *Model) reload(trigger string) {
	next, h, err := options.Reload(m.list, m.source, m.view.Highlight)
	if err != nil {
		if !errors.Is(err, options.ErrNoSource) {
			system.Logger.Warn("reload failed, keeping previous options", "trigger", trigger, "err", err)
		}
		return
	}
	m.list = next
	m.view = m.view.Reconcile(h, m.list.Len(), m.rows())
	system.Logger.Debug("reloaded", "trigger", trigger, "options", m.list.Len(), "highlight", m.view.Highlight)
}
