package tvision

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// InputLine is a single-line text editor. Text wider than the view
// scrolls horizontally.
type InputLine struct {
	ViewBase
	data    []rune
	maxLen  int
	cursor  int
	first   int
	history uint16
	recall  int

	validators []StringValidator
	err        error
}

// NewInputLine creates an input line accepting up to maxLen runes
// (0 for no limit).
func NewInputLine(bounds Rect, maxLen int) *InputLine {
	l := &InputLine{ViewBase: NewViewBase(bounds), maxLen: maxLen, recall: -1}
	l.SetOptions(OptSelectable, true)
	l.SetPalette(InputLinePalette)
	return l
}

// SetHistory attaches history list id. The text is recorded in it when the
// owning dialog is accepted, and Down recalls older entries.
func (l *InputLine) SetHistory(id uint16) {
	l.history = id
}

// SetValidators replaces the checks run by Validate.
func (l *InputLine) SetValidators(v ...StringValidator) {
	l.validators = v
}

// Validate runs the validators against the text and remembers the first
// failure until the text changes.
func (l *InputLine) Validate() error {
	l.err = nil
	for _, v := range l.validators {
		if err := v(l.Text()); err != nil {
			l.err = err
			break
		}
	}
	return l.err
}

// Err returns the last validation error, or nil.
func (l *InputLine) Err() error {
	return l.err
}

// Text returns the current text.
func (l *InputLine) Text() string {
	return string(l.data)
}

// SetText replaces the text and moves the cursor to its end.
func (l *InputLine) SetText(s string) {
	l.data = []rune(s)
	if l.maxLen > 0 && len(l.data) > l.maxLen {
		l.data = l.data[:l.maxLen]
	}
	l.cursor = len(l.data)
	l.scroll()
}

// Cursor returns the cursor position as a rune index.
func (l *InputLine) Cursor() int {
	return l.cursor
}

// Caret implements CursorOwner.
func (l *InputLine) Caret() (Point, bool) {
	if !l.IsFocused() {
		return Point{}, false
	}
	return Pt(1+l.columns(l.first, l.cursor), 0), true
}

// columns returns the display width of data[from:to].
func (l *InputLine) columns(from, to int) int {
	return runewidth.StringWidth(string(l.data[from:to]))
}

// scroll keeps the cursor inside the visible part.
func (l *InputLine) scroll() {
	visible := max(1, l.Size().X-2)
	if l.cursor < l.first {
		l.first = l.cursor
	}
	for l.columns(l.first, l.cursor) >= visible && l.first < l.cursor {
		l.first++
	}
}

func (l *InputLine) insert(s string) {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			continue
		}
		if l.maxLen > 0 && len(l.data) >= l.maxLen {
			break
		}
		l.data = append(l.data[:l.cursor], append([]rune{r}, l.data[l.cursor:]...)...)
		l.cursor++
	}
}

func (l *InputLine) HandleEvent(ev *Event) {
	switch ev.What {
	case EvMouseDown:
		x := ev.Mouse.Pos.X - l.bounds.A.X - 1
		l.cursor = l.first
		for l.cursor < len(l.data) && l.columns(l.first, l.cursor+1) <= x {
			l.cursor++
		}
		ev.Clear()
	case EvKeyDown:
		if !l.handleKey(ev.Key) {
			return
		}
		l.scroll()
		l.err = nil
		ev.Clear()
	case EvCommand:
		if !l.editCommand(ev.Command) {
			return
		}
		l.scroll()
		l.err = nil
		ev.Clear()
	case EvBroadcast:
		if ev.Command == CmRecordHistory && l.history != 0 {
			Histories().Add(l.history, l.Text())
			l.recall = -1
		}
	}
}

// editCommand applies a clipboard command and reports whether id was one.
func (l *InputLine) editCommand(id CommandID) bool {
	switch id {
	case CmCut:
		SystemClipboard().Write(l.Text())
		l.SetText("")
	case CmCopy:
		SystemClipboard().Write(l.Text())
	case CmPaste:
		l.insert(SystemClipboard().Read())
	case CmClear:
		l.SetText("")
	default:
		return false
	}
	return true
}

// handleKey edits the text and reports whether k was consumed. Enter is
// never consumed so the owning dialog can act on it.
func (l *InputLine) handleKey(k KeyEvent) bool {
	switch {
	case k.Code == KeyRune && k.Mod&(ModCtrl|ModAlt) == 0:
		l.insert(string(k.Rune))
	case k.IsRune('c', ModCtrl):
		l.editCommand(CmCopy)
	case k.IsRune('x', ModCtrl):
		l.editCommand(CmCut)
	case k.IsRune('v', ModCtrl):
		l.editCommand(CmPaste)
	case k.IsRune('y', ModCtrl):
		l.editCommand(CmClear)
	case k.Is(KeyBackspace, 0):
		if l.cursor > 0 {
			l.data = append(l.data[:l.cursor-1], l.data[l.cursor:]...)
			l.cursor--
		}
	case k.Is(KeyDelete, 0):
		if l.cursor < len(l.data) {
			l.data = append(l.data[:l.cursor], l.data[l.cursor+1:]...)
		}
	case k.Is(KeyLeft, 0):
		l.cursor = max(0, l.cursor-1)
	case k.Is(KeyRight, 0):
		l.cursor = min(len(l.data), l.cursor+1)
	case k.Is(KeyHome, 0):
		l.cursor = 0
	case k.Is(KeyEnd, 0):
		l.cursor = len(l.data)
	case k.Is(KeyDown, 0) && l.history != 0:
		entries := Histories().Entries(l.history)
		if len(entries) == 0 {
			return true
		}
		l.recall = (l.recall + 1) % len(entries)
		l.SetText(entries[l.recall])
	default:
		return false
	}
	return true
}

func (l *InputLine) Draw(c *Canvas) {
	color := uint8(1)
	switch {
	case l.err != nil:
		color = 3
	case l.IsFocused():
		color = 2
	}
	a := l.Color(c, color)
	w := l.Size().X
	c.Fill(l.bounds.Local(), ' ', a)
	col := 1
	for _, r := range l.data[l.first:] {
		rw := runewidth.RuneWidth(r)
		if col+rw > w-1 {
			break
		}
		col += c.WriteString(col, 0, string(r), a)
	}
	arrows := l.Color(c, 4)
	if l.first > 0 {
		c.Put(0, 0, '◄', arrows)
	}
	if l.columns(l.first, len(l.data)) > w-2 {
		c.Put(w-1, 0, '►', arrows)
	}
}
