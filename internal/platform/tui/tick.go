// Package tui hosts the runner in a terminal through Bubble Tea.
// It handles the asset loading screen, menus, the tick loop and input mapping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// progressMsg reports one more asset loaded.
type progressMsg struct {
	loaded, total int
}

// loadedMsg is sent once LoadAll returns.
type loadedMsg struct {
	err error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForProgress blocks until the loader reports progress. A closed
// channel yields nil, which Bubble Tea ignores.
func waitForProgress(ch <-chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
