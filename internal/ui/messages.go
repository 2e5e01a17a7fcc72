package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// reload timer; id must match Model.tickID or the tick is stale
type reloadTickMsg struct{ id int }

// the source file changed on disk; ok is false once the watcher is gone
type sourceChangedMsg struct{ ok bool }

func reloadTickCmd(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return reloadTickMsg{id: id} })
}

func waitForChangeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-ch
		return sourceChangedMsg{ok: ok}
	}
}
