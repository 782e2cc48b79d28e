package tvision

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// decoder turns raw terminal input into events. It understands UTF-8
// text, control keys, CSI and SS3 key sequences and SGR mouse reports.
type decoder struct {
	buf     []byte
	buttons ButtonMask
}

// Feed appends input bytes.
func (d *decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Pending reports whether undecoded bytes remain.
func (d *decoder) Pending() bool {
	return len(d.buf) > 0
}

// Next decodes one event. It returns false when the buffer is empty or
// holds only the start of a sequence.
func (d *decoder) Next() (Event, bool) {
	for len(d.buf) > 0 {
		ev, n := d.decode(d.buf)
		if n == 0 {
			return Event{}, false
		}
		d.buf = d.buf[n:]
		if ev.What != EvNothing {
			return ev, true
		}
	}
	return Event{}, false
}

// Flush resolves an incomplete sequence that will not be completed: a lone
// ESC is the Escape key, ESC followed by the '[' or 'O' introducer alone is
// that key with Alt, anything else is dropped.
func (d *decoder) Flush() (Event, bool) {
	b := d.buf
	d.buf = d.buf[:0]
	switch {
	case len(b) == 1 && b[0] == 0x1b:
		return KeyPress(KeyEvent{Code: KeyEscape}), true
	case len(b) == 2 && b[0] == 0x1b && (b[1] == '[' || b[1] == 'O'):
		return KeyPress(RuneKey(rune(b[1]), ModAlt)), true
	}
	return Event{}, false
}

// decode returns the event at the head of b and the bytes it used; n is 0
// when more input is needed.
func (d *decoder) decode(b []byte) (Event, int) {
	c := b[0]
	switch {
	case c == 0x1b:
		return d.decodeEscape(b)
	case c == '\r' || c == '\n':
		return KeyPress(KeyEvent{Code: KeyEnter}), 1
	case c == '\t':
		return KeyPress(KeyEvent{Code: KeyTab}), 1
	case c == 0x7f || c == 0x08:
		return KeyPress(KeyEvent{Code: KeyBackspace}), 1
	case c >= 0x01 && c <= 0x1a:
		return KeyPress(RuneKey(rune('a'+c-1), ModCtrl)), 1
	case c < 0x20:
		return Event{}, 1
	}
	if !utf8.FullRune(b) {
		return Event{}, 0
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return Event{}, n
	}
	return KeyPress(RuneKey(r, 0)), n
}

func (d *decoder) decodeEscape(b []byte) (Event, int) {
	if len(b) == 1 {
		return Event{}, 0
	}
	switch b[1] {
	case '[':
		return d.decodeCSI(b)
	case 'O':
		if len(b) < 3 {
			return Event{}, 0
		}
		if k, ok := ss3Keys[b[2]]; ok {
			return KeyPress(KeyEvent{Code: k}), 3
		}
		return Event{}, 3
	case 0x1b:
		return KeyPress(KeyEvent{Code: KeyEscape}), 1
	}
	ev, n := d.decode(b[1:])
	if n == 0 {
		return Event{}, 0
	}
	if ev.What == EvKeyDown {
		ev.Key.Mod |= ModAlt
	}
	return ev, n + 1
}

var ss3Keys = map[byte]Key{
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

var csiFinalKeys = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd, 'Z': KeyBackTab,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

var csiTildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

func (d *decoder) decodeCSI(b []byte) (Event, int) {
	end := -1
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		return Event{}, 0
	}
	n := end + 1
	final, params := b[end], string(b[2:end])
	if strings.HasPrefix(params, "<") && (final == 'M' || final == 'm') {
		return d.decodeSGRMouse(params[1:], final == 'm'), n
	}
	fields := strings.Split(params, ";")
	mod := ModMask(0)
	if len(fields) > 1 {
		mod = csiModifier(fields[1])
	}
	if final == '~' {
		code, _ := strconv.Atoi(fields[0])
		if k, ok := csiTildeKeys[code]; ok {
			return KeyPress(KeyEvent{Code: k, Mod: mod}), n
		}
		return Event{}, n
	}
	if k, ok := csiFinalKeys[final]; ok {
		return KeyPress(KeyEvent{Code: k, Mod: mod}), n
	}
	return Event{}, n
}

// csiModifier decodes the xterm modifier parameter (1 + bit mask).
func csiModifier(s string) ModMask {
	v, err := strconv.Atoi(s)
	if err != nil || v < 2 {
		return 0
	}
	v--
	var mod ModMask
	if v&1 != 0 {
		mod |= ModShift
	}
	if v&2 != 0 {
		mod |= ModAlt
	}
	if v&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// decodeSGRMouse decodes "b;x;y" of an SGR (1006) mouse report.
func (d *decoder) decodeSGRMouse(params string, release bool) Event {
	f := strings.Split(params, ";")
	if len(f) != 3 {
		return Event{}
	}
	cb, err1 := strconv.Atoi(f[0])
	x, err2 := strconv.Atoi(f[1])
	y, err3 := strconv.Atoi(f[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Event{}
	}
	pos := Pt(x-1, y-1)
	var mod ModMask
	if cb&4 != 0 {
		mod |= ModShift
	}
	if cb&8 != 0 {
		mod |= ModAlt
	}
	if cb&16 != 0 {
		mod |= ModCtrl
	}
	var ev Event
	switch {
	case cb&64 != 0:
		what := EvMouseWheelUp
		if cb&1 != 0 {
			what = EvMouseWheelDown
		}
		ev = MouseAt(what, pos, d.buttons)
	case cb&32 != 0:
		ev = MouseAt(EvMouseMove, pos, d.buttons)
	case release:
		ev = MouseAt(EvMouseUp, pos, d.buttons)
		d.buttons = 0
	default:
		btn := [...]ButtonMask{ButtonLeft, ButtonMiddle, ButtonRight, 0}[cb&3]
		d.buttons |= btn
		ev = MouseAt(EvMouseDown, pos, d.buttons)
	}
	ev.Mouse.Mod = mod
	return ev
}
