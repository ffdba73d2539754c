// Package tui provides the Bubble Tea host for Idle Space. It owns the
// timers, maps terminal input onto the idle session and the simulation loop,
// and turns the screen buffer into styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the simulation by one frame.
type FrameMsg time.Time

// AccrualMsg is sent to settle passive idle accrual.
type AccrualMsg time.Time

// frameCmd returns a command that sends one frame message at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// accrualCmd returns a command that sends one accrual message after
// intervalMs milliseconds.
func accrualCmd(intervalMs int64) tea.Cmd {
	if intervalMs <= 0 {
		intervalMs = 1000
	}
	return tea.Tick(time.Duration(intervalMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return AccrualMsg(t)
	})
}
