package tvision

import "strings"

// ButtonFlags adjust a button's behavior.
type ButtonFlags uint8

const (
	// ButtonDefault makes the button respond to the dialog's Enter key.
	ButtonDefault ButtonFlags = 1 << iota
	// ButtonLeftJust draws the title flush left.
	ButtonLeftJust
)

// Button is a push button emitting a command. It is disabled whenever its
// command is disabled in the command set.
type Button struct {
	ViewBase
	title   string
	command CommandID
	flags   ButtonFlags
	pressed bool
}

// NewButton creates a button. Buttons are two rows high: the face and its
// shadow.
func NewButton(bounds Rect, title string, cmd CommandID, flags ButtonFlags) *Button {
	b := &Button{ViewBase: NewViewBase(bounds), title: title, command: cmd, flags: flags}
	b.SetOptions(OptSelectable, true)
	b.SetPalette(ButtonPalette)
	b.SetState(StateDisabled, !CommandEnabled(cmd))
	return b
}

// Title returns the button label.
func (b *Button) Title() string {
	return b.title
}

// Command returns the command the button emits.
func (b *Button) Command() CommandID {
	return b.command
}

// IsDefault implements Defaulter.
func (b *Button) IsDefault() bool {
	return b.flags&ButtonDefault != 0
}

// HotKey returns the letter marked with ~ in the title.
func (b *Button) HotKey() rune {
	return hotKey(b.title)
}

// Activate presses the button on behalf of its hot key.
func (b *Button) Activate(ev *Event) {
	b.press(ev)
}

func (b *Button) press(ev *Event) {
	if b.Disabled() {
		ev.Clear()
		return
	}
	ev.ToCommand(b.command)
}

func (b *Button) HandleEvent(ev *Event) {
	switch ev.What {
	case EvMouseDown:
		if !b.Disabled() {
			b.pressed = true
		}
		ev.Clear()
	case EvMouseMove, EvMouseAuto:
		if b.pressed || b.bounds.Contains(ev.Mouse.Pos) {
			b.pressed = b.bounds.Contains(ev.Mouse.Pos)
		}
		ev.Clear()
	case EvMouseUp:
		if b.pressed && b.bounds.Contains(ev.Mouse.Pos) {
			b.pressed = false
			b.press(ev)
			return
		}
		b.pressed = false
		ev.Clear()
	case EvKeyDown:
		if ev.Key.Is(KeyEnter, 0) || ev.Key.IsRune(' ', 0) {
			b.press(ev)
		}
	case EvBroadcast:
		switch ev.Command {
		case CmDefault:
			if b.IsDefault() && !b.Disabled() {
				b.press(ev)
			}
		case CmCommandSetChanged:
			b.SetState(StateDisabled, !CommandEnabled(b.command))
		}
	}
}

func (b *Button) Draw(c *Canvas) {
	w := b.Size().X
	normal, hot := uint8(1), uint8(5)
	switch {
	case b.Disabled():
		normal, hot = 4, 4
	case b.IsFocused():
		normal, hot = 3, 7
	case b.IsDefault():
		normal, hot = 2, 6
	}
	face, faceHot, shadow := b.Color(c, normal), b.Color(c, hot), b.Color(c, 8)

	c.Fill(b.bounds.Local(), ' ', shadow)
	x, fw := 0, w-1
	if b.pressed {
		x = 1
	}
	c.Fill(RectAt(x, 0, fw, 1), ' ', face)
	tx := x + 1
	if b.flags&ButtonLeftJust == 0 {
		tx = x + (fw-labelWidth(b.title))/2
	}
	c.WriteHot(tx, 0, b.title, face, faceHot)
	if b.IsFocused() && !b.Disabled() {
		c.Put(x, 0, '►', face)
		c.Put(x+fw-1, 0, '◄', face)
	}
	if !b.pressed {
		c.Put(w-1, 0, '▄', shadow)
		c.WriteString(1, 1, strings.Repeat("▀", fw), shadow)
	}
}
