// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Chain int64
	At    time.Time
}

// SpawnMsg is sent by the spawn timer.
type SpawnMsg struct {
	Chain int64
}

// Timer messages carry the id of the chain that scheduled them. A model
// drops messages from chains it no longer owns, which also keeps a
// session's previous game from feeding timers into the next one.
var chainIDs atomic.Int64

func newChain() int64 {
	return chainIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(chain int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Chain: chain, At: t}
	})
}

// spawnCmd schedules the next spawn timer firing.
func spawnCmd(chain int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SpawnMsg{Chain: chain}
	})
}
