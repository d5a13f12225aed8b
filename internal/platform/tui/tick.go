// Package tui runs the floor quiz in a terminal with Bubble Tea.
// It maps keys and mouse events to input frames, drives the tick loop and
// hosts the menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it; ticks from a model that
// has been replaced are dropped.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var generations atomic.Uint64

// nextGen returns a fresh tick generation.
func nextGen() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
