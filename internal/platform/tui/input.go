package tui

import (
	"time"

	"github.com/vovakirdan/arena/internal/core"
)

// Terminals only report presses and auto-repeats, so a held key shows up
// as one press, a pause of the keyboard's repeat delay, then a steady
// stream of repeats.
const (
	// DefaultHoldWindow is how long an intent stays active after its key
	// was last seen once it is repeating. It must outlast the repeat gap.
	DefaultHoldWindow = 120 * time.Millisecond

	// DefaultRepeatDelay is how long a fresh press stays active while
	// waiting for the first auto-repeat.
	DefaultRepeatDelay = 500 * time.Millisecond
)

// opposite pairs directions that cancel each other. Pressing one drops the
// other immediately instead of waiting for its hold window to lapse.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns discrete key presses into per-frame input.
// Intents stay set while their key keeps repeating; commands are delivered
// on exactly one frame.
type HeldInput struct {
	window    time.Duration // hold window once a key repeats
	delay     time.Duration // hold window for a fresh press
	lastSeen  map[core.Action]time.Time
	repeating map[core.Action]bool
	queued    []core.Action
}

// NewHeldInput creates a tracker with the given hold window and initial
// repeat delay. Non-positive values select DefaultHoldWindow and
// DefaultRepeatDelay. The delay is never shorter than the window.
func NewHeldInput(window, delay time.Duration) *HeldInput {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &HeldInput{
		window:    window,
		delay:     max(delay, window),
		lastSeen:  make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Press records a key press observed at the given time.
func (h *HeldInput) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.IsIntent() {
		h.queued = append(h.queued, a)
		return
	}
	if o, ok := opposite[a]; ok {
		h.forget(o)
	}
	if seen, ok := h.lastSeen[a]; ok && at.Sub(seen) <= h.holdFor(a) {
		h.repeating[a] = true
	} else {
		delete(h.repeating, a)
	}
	h.lastSeen[a] = at
}

// holdFor returns how long intent a survives without another press.
func (h *HeldInput) holdFor(a core.Action) time.Duration {
	if h.repeating[a] {
		return h.window
	}
	return h.delay
}

func (h *HeldInput) forget(a core.Action) {
	delete(h.lastSeen, a)
	delete(h.repeating, a)
}

// Frame builds the input for a frame starting at now and consumes
// queued commands. Expired intents are forgotten.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.holdFor(a) {
			h.forget(a)
			continue
		}
		frame.Set(a)
	}
	for _, a := range h.queued {
		frame.Set(a)
	}
	h.queued = h.queued[:0]
	return frame
}

// Release drops every held intent and pending command.
func (h *HeldInput) Release() {
	clear(h.lastSeen)
	clear(h.repeating)
	h.queued = h.queued[:0]
}
