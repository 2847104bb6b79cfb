package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameKeysKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionLeft)
	f.Press(ActionUp)
	f.Release(ActionLeft)

	want := []KeyEvent{
		{Action: ActionLeft, Down: true},
		{Action: ActionUp, Down: true},
		{Action: ActionLeft, Down: false},
	}
	if len(f.Keys) != len(want) {
		t.Fatalf("len(Keys) = %d, expected %d", len(f.Keys), len(want))
	}
	for i := range want {
		if f.Keys[i] != want[i] {
			t.Errorf("Keys[%d] = %+v, expected %+v", i, f.Keys[i], want[i])
		}
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Press(ActionDown)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should remove actions and keys")
	}
	if !clone.Has(ActionRestart) || len(clone.Keys) != 1 {
		t.Errorf("clone should be independent of the original, got %+v", clone)
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionNone, false},
		{ActionPause, false},
		{ActionQuit, false},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			if got := tt.action.IsDirection(); got != tt.want {
				t.Errorf("IsDirection() = %v, expected %v", got, tt.want)
			}
		})
	}
}
