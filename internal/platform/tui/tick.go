// Package tui provides the Bubble Tea integration: the terminal game loop,
// key bindings, screen styling and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dropMsg asks the model to advance the falling piece by one row.
// Messages whose generation no longer matches the model are stale.
type dropMsg struct {
	gen int
}

// dropCmd schedules a single drop after interval.
func dropCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return dropMsg{gen: gen}
	})
}
