package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arena/internal/core"
)

func TestHeldInputKeepsIntentWithinWindow(t *testing.T) {
	h := NewHeldInput(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	assert.True(t, h.Frame(t0.Add(50*time.Millisecond)).Has(core.ActionLeft))
	assert.True(t, h.Frame(t0.Add(100*time.Millisecond)).Has(core.ActionLeft))
	assert.False(t, h.Frame(t0.Add(101*time.Millisecond)).Has(core.ActionLeft))

	// Auto-repeat keeps it alive
	h.Press(core.ActionFire, t0)
	h.Press(core.ActionFire, t0.Add(90*time.Millisecond))
	assert.True(t, h.Frame(t0.Add(180*time.Millisecond)).Has(core.ActionFire))
}

func TestHeldInputBridgesRepeatDelay(t *testing.T) {
	h := NewHeldInput(DefaultHoldWindow, DefaultRepeatDelay)
	t0 := time.Unix(1000, 0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	// A typical keyboard: first repeat after 400ms, then every 33ms
	h.Press(core.ActionRight, t0)
	for ms := 0; ms < 400; ms += 16 {
		require.True(t, h.Frame(at(ms)).Has(core.ActionRight), "held at %dms", ms)
	}
	for ms := 400; ms <= 1000; ms += 33 {
		h.Press(core.ActionRight, at(ms))
		assert.True(t, h.Frame(at(ms+16)).Has(core.ActionRight), "held at %dms", ms+16)
	}

	// Once repeating, letting go stops within the short window
	last := at(994)
	assert.True(t, h.Frame(last.Add(DefaultHoldWindow)).Has(core.ActionRight))
	assert.False(t, h.Frame(last.Add(DefaultHoldWindow+time.Millisecond)).Has(core.ActionRight))

	// The next tap waits out the repeat delay again
	h.Press(core.ActionRight, at(5000))
	assert.True(t, h.Frame(at(5000).Add(DefaultRepeatDelay)).Has(core.ActionRight))
	assert.False(t, h.Frame(at(5001).Add(DefaultRepeatDelay)).Has(core.ActionRight))
}

func TestHeldInputDelayNeverShorterThanWindow(t *testing.T) {
	h := NewHeldInput(200*time.Millisecond, 50*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	assert.True(t, h.Frame(t0.Add(200*time.Millisecond)).Has(core.ActionUp))
}

func TestHeldInputCommandsFireOnce(t *testing.T) {
	h := NewHeldInput(0, 0)
	now := time.Unix(1000, 0)

	h.Press(core.ActionPause, now)
	h.Press(core.ActionNone, now)

	first := h.Frame(now)
	assert.True(t, first.Has(core.ActionPause))
	assert.False(t, first.Has(core.ActionNone))
	assert.False(t, h.Frame(now).Has(core.ActionPause))
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := NewHeldInput(DefaultHoldWindow, DefaultRepeatDelay)
	now := time.Unix(1000, 0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionUp, now)
	h.Press(core.ActionRight, now.Add(10*time.Millisecond))

	frame := h.Frame(now.Add(20 * time.Millisecond))
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))
	assert.True(t, frame.Has(core.ActionUp))
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput(DefaultHoldWindow, DefaultRepeatDelay)
	now := time.Unix(1000, 0)

	h.Press(core.ActionDown, now)
	h.Press(core.ActionRestart, now)
	h.Release()

	assert.Empty(t, h.Frame(now).Actions)
}

func TestFrameElapsed(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want time.Duration
	}{
		{"first frame", time.Time{}, t0, 0},
		{"regular", t0, t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"clock went back", t0, t0.Add(-time.Second), 0},
		{"long stall", t0, t0.Add(5 * time.Second), maxFrameGap},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, frameElapsed(tc.last, tc.now))
		})
	}
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, frameInterval(60))
	assert.Equal(t, time.Second/60, frameInterval(0))
	assert.Equal(t, time.Second/30, frameInterval(30))
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('b'), core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			assert.Equal(t, tc.want, action)
			assert.Equal(t, tc.isQuit, isQuit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEscape}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
