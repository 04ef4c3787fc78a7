// Package tui provides the Bubble Tea front end for ice mazes: the map
// picker, the play screen with solution playback, the leaderboard and the
// SSH server that serves them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives solution playback. ID identifies the loop that scheduled
// it, so a loop left behind by a closed play screen dies out.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick loop ID.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 20
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
