package tvision

import "testing"

func TestCommandSet(t *testing.T) {
	s := NewCommandSet()
	if !s.Enabled(CmQuit) || !s.Enabled(65535) {
		t.Fatal("a new set enables everything")
	}
	if s.Dirty() {
		t.Fatal("a new set is clean")
	}

	s.Disable(CmCopy)
	if s.Enabled(CmCopy) || !s.Dirty() {
		t.Errorf("Disable should clear the bit and mark dirty")
	}
	if !s.TakeChanged() || s.TakeChanged() {
		t.Errorf("TakeChanged should report once")
	}

	s.Disable(CmCopy)
	if s.Dirty() {
		t.Errorf("disabling a disabled command is not a change")
	}
	s.Enable(CmCopy)
	if !s.Enabled(CmCopy) || !s.TakeChanged() {
		t.Errorf("Enable should set the bit and mark dirty")
	}
	if !s.Enabled(CmPaste) || !s.Enabled(CmCut) {
		t.Errorf("neighbouring bits must be untouched")
	}
}

func TestGlobalCommands(t *testing.T) {
	resetCommands()
	t.Cleanup(resetCommands)

	DisableCommands(CmCut, CmCopy)
	if CommandEnabled(CmCut) || CommandEnabled(CmCopy) || !CommandEnabled(CmPaste) {
		t.Errorf("DisableCommands did not apply")
	}
	EnableCommands(CmCut)
	if !CommandEnabled(CmCut) {
		t.Errorf("EnableCommands did not apply")
	}
	if !Commands().TakeChanged() {
		t.Errorf("changes should mark the global set dirty")
	}
}
