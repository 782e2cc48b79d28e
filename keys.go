package tvision

import "strings"

// Key identifies a key. Printable characters use KeyRune with the character
// in KeyEvent.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyTab:       "Tab",
	KeyBackTab:   "Shift-Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Del",
	KeyInsert:    "Ins",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// ModMask is a set of keyboard modifiers.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Code Key
	Rune rune
	Mod  ModMask
}

// Is reports whether the event is the given key with exactly the given modifiers.
func (k KeyEvent) Is(code Key, mod ModMask) bool {
	return k.Code == code && k.Mod == mod
}

// IsRune reports whether the event is the printable rune r, case-insensitively,
// with exactly the given modifiers.
func (k KeyEvent) IsRune(r rune, mod ModMask) bool {
	return k.Code == KeyRune && k.Mod == mod && strings.EqualFold(string(k.Rune), string(r))
}

// Matches reports whether other is the same key as k. Runes compare
// case-insensitively, so Alt-X and Alt-x are one binding.
func (k KeyEvent) Matches(other KeyEvent) bool {
	if k.Code == KeyRune {
		return other.IsRune(k.Rune, k.Mod)
	}
	return k == other
}

// String renders the key the way the status line shows it, e.g. "Alt-X".
func (k KeyEvent) String() string {
	var sb strings.Builder
	if k.Mod&ModCtrl != 0 {
		sb.WriteString("Ctrl-")
	}
	if k.Mod&ModAlt != 0 {
		sb.WriteString("Alt-")
	}
	if k.Mod&ModShift != 0 && k.Code != KeyBackTab {
		sb.WriteString("Shift-")
	}
	if k.Code == KeyRune {
		sb.WriteString(strings.ToUpper(string(k.Rune)))
	} else if name, ok := keyNames[k.Code]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteString("?")
	}
	return sb.String()
}

// RuneKey is a convenience constructor for a printable key.
func RuneKey(r rune, mod ModMask) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Mod: mod}
}

// hotKey extracts the character following '~' in a "~X~it" style label.
func hotKey(label string) rune {
	i := strings.IndexByte(label, '~')
	if i < 0 || i+1 >= len(label) {
		return 0
	}
	for _, r := range label[i+1:] {
		return r
	}
	return 0
}
