package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.SetPointer(12)
	f.SetPointer(30)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() should report only the set action")
	}
	if !f.HasPointer || f.PointerX != 30 {
		t.Errorf("pointer = (%d, %v), expected last position 30", f.PointerX, f.HasPointer)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.HasPointer {
		t.Error("Clear() should reset actions and pointer")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionStart) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionStart)
	if !f.Has(ActionStart) {
		t.Error("Set() on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
