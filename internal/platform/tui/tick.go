// Package tui provides the Bubble Tea integration: the terminal loop, input
// mapping, and frame rendering. Bubble Tea owns the terminal itself — raw
// mode, the alternate screen, and cursor visibility are acquired when the
// program starts and restored on every exit path.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers the next tick after the given
// interval. The interval is re-read from the game every frame, so the loop
// speeds up as the game does.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
