// Package tui provides the Bubble Tea front end: the in-game model, the
// level picker and an SSH server that serves both.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the game
// model that scheduled it; other models ignore it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickGen hands out a fresh generation to every game model.
var tickGen atomic.Uint64

// tickCmd returns a command that sends one TickMsg for gen after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
