// Package tui provides the Bubble Tea integration for the arena.
// It owns the terminal loop, key handling and the SSH session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame. It carries the wall-clock
// time the tick fired, which the game model turns into elapsed time.
type TickMsg time.Time

// maxFrameGap caps the elapsed time fed into one frame, so a suspended
// terminal does not resume with a multi-second jump.
const maxFrameGap = 250 * time.Millisecond

// frameInterval returns the delay between ticks for the requested rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed converts two tick timestamps into the time covered by a frame.
// The first frame of a run covers nothing.
func frameElapsed(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	switch {
	case d < 0:
		return 0
	case d > maxFrameGap:
		return maxFrameGap
	}
	return d
}
