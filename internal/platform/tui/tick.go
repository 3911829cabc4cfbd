// Package tui runs the shooter in a terminal with Bubble Tea. It owns the
// frame loop, turns mouse and keys into input frames, and carries out the
// sound and log requests the game returns from each step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starshot/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickInterval returns the frame period for a tick rate. Non-positive rates
// fall back to the default.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}
