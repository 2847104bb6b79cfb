// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain that scheduled it, so a model ignores
// ticks left over from a game that already ended.
type TickMsg struct {
	At   time.Time
	Loop int64
}

var loopSeq atomic.Int64

// nextLoop returns a fresh tick chain identifier.
func nextLoop() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// The caller schedules the next tick, re-reading the interval each time.
func tickCmd(interval time.Duration, loop int64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
