// Package tui provides the Bubble Tea step debugger for Piet programs
// and the Wish SSH server that exposes it remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance a running program by one step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate in steps per second.
func tickCmd(stepsPerSec int) tea.Cmd {
	interval := time.Second / time.Duration(stepsPerSec)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
