package tvision

// CommandID identifies a command. Commands 0-255 are reserved for the library.
type CommandID uint16

// Standard commands.
const (
	CmValid   CommandID = 0
	CmQuit    CommandID = 1
	CmError   CommandID = 2
	CmMenu    CommandID = 3
	CmClose   CommandID = 4
	CmZoom    CommandID = 5
	CmResize  CommandID = 6
	CmNext    CommandID = 7
	CmPrev    CommandID = 8
	CmHelp    CommandID = 9
	CmOK      CommandID = 10
	CmCancel  CommandID = 11
	CmYes     CommandID = 12
	CmNo      CommandID = 13
	CmDefault CommandID = 14
	// CmSelect asks the group owning the View in Info to focus it.
	CmSelect  CommandID = 15
	CmCut     CommandID = 20
	CmCopy    CommandID = 21
	CmPaste   CommandID = 22
	CmClear   CommandID = 24
	CmTile    CommandID = 25
	CmCascade CommandID = 26
)

// Broadcast-only commands.
const (
	CmCommandSetChanged CommandID = 52
	CmRecordHistory     CommandID = 60
)

// CommandSet is a bitset over the whole 16-bit command space plus a dirty
// flag recording whether it changed since the last TakeChanged.
type CommandSet struct {
	bits  [1 << 16 / 64]uint64
	dirty bool
}

// NewCommandSet returns a set with every command enabled.
func NewCommandSet() *CommandSet {
	s := &CommandSet{}
	for i := range s.bits {
		s.bits[i] = ^uint64(0)
	}
	return s
}

// Enabled reports whether id is enabled.
func (s *CommandSet) Enabled(id CommandID) bool {
	return s.bits[id/64]&(1<<(id%64)) != 0
}

// Enable turns id on.
func (s *CommandSet) Enable(id CommandID) {
	if !s.Enabled(id) {
		s.bits[id/64] |= 1 << (id % 64)
		s.dirty = true
	}
}

// Disable turns id off.
func (s *CommandSet) Disable(id CommandID) {
	if s.Enabled(id) {
		s.bits[id/64] &^= 1 << (id % 64)
		s.dirty = true
	}
}

// Dirty reports whether the set changed since the last TakeChanged.
func (s *CommandSet) Dirty() bool {
	return s.dirty
}

// TakeChanged returns the dirty flag and clears it.
func (s *CommandSet) TakeChanged() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// The process-wide command set. Like the rest of the engine it belongs to the
// single logic goroutine; other goroutines must marshal changes onto it.
var commands = NewCommandSet()

// Commands returns the process-wide command set.
func Commands() *CommandSet {
	return commands
}

// EnableCommand enables id in the process-wide set.
func EnableCommand(id CommandID) { commands.Enable(id) }

// DisableCommand disables id in the process-wide set.
func DisableCommand(id CommandID) { commands.Disable(id) }

// CommandEnabled reports whether id is enabled in the process-wide set.
func CommandEnabled(id CommandID) bool { return commands.Enabled(id) }

// EnableCommands enables several commands at once.
func EnableCommands(ids ...CommandID) {
	for _, id := range ids {
		commands.Enable(id)
	}
}

// DisableCommands disables several commands at once.
func DisableCommands(ids ...CommandID) {
	for _, id := range ids {
		commands.Disable(id)
	}
}

// resetCommands replaces the process-wide set; used by tests.
func resetCommands() {
	commands = NewCommandSet()
}
