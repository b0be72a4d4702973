package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("NewInputFrame should set the given actions")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestActionIsIntent(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionFire, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsIntent(); got != tc.expected {
				t.Errorf("%s.IsIntent() = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}
}
