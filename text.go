package tvision

import "strings"

// StaticText displays fixed, possibly multi-line text.
type StaticText struct {
	ViewBase
	text string
}

// NewStaticText creates a static text view. A leading \x03 centers a line.
func NewStaticText(bounds Rect, text string) *StaticText {
	t := &StaticText{ViewBase: NewViewBase(bounds), text: text}
	t.SetPalette(StaticTextPalette)
	return t
}

// Text returns the displayed text.
func (t *StaticText) Text() string {
	return t.text
}

// SetText replaces the displayed text.
func (t *StaticText) SetText(s string) {
	t.text = s
}

func (t *StaticText) Draw(c *Canvas) {
	a := t.Color(c, 1)
	size := t.Size()
	c.Fill(t.bounds.Local(), ' ', a)
	for y, line := range wrapText(t.text, size.X) {
		if y >= size.Y {
			break
		}
		x := 0
		if strings.HasPrefix(line, "\x03") {
			line = line[1:]
			x = (size.X - labelWidth(line)) / 2
		}
		c.WriteString(x, y, line, a)
	}
}

// wrapText breaks s into lines no wider than width, on spaces where it can.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		center := strings.HasPrefix(para, "\x03")
		prefix := ""
		if center {
			para, prefix = para[1:], "\x03"
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case labelWidth(line)+1+labelWidth(word) <= width:
				line += " " + word
			default:
				out = append(out, prefix+line)
				line = word
			}
			for labelWidth(line) > width {
				cut := []rune(line)
				out = append(out, prefix+string(cut[:width]))
				line = string(cut[width:])
			}
		}
		out = append(out, prefix+line)
	}
	return out
}

// Label is a caption for another view. Clicking it, or pressing its
// Alt hot key in a dialog, focuses the linked view.
type Label struct {
	ViewBase
	text string
	link View
}

// NewLabel creates a label for link. Mark the hot key with ~X~.
func NewLabel(bounds Rect, text string, link View) *Label {
	l := &Label{ViewBase: NewViewBase(bounds), text: text, link: link}
	l.SetPalette(LabelPalette)
	return l
}

// Link returns the labelled view.
func (l *Label) Link() View {
	return l.link
}

// HotKey returns the letter marked with ~ in the text.
func (l *Label) HotKey() rune {
	return hotKey(l.text)
}

// Activate asks the owner to focus the linked view.
func (l *Label) Activate(ev *Event) {
	l.selectLink(ev)
}

func (l *Label) selectLink(ev *Event) {
	if l.link == nil {
		ev.Clear()
		return
	}
	*ev = Event{What: EvCommand, Command: CmSelect, Info: l.link}
}

func (l *Label) HandleEvent(ev *Event) {
	if ev.What == EvMouseDown {
		l.selectLink(ev)
	}
}

func (l *Label) Draw(c *Canvas) {
	normal, hot := uint8(1), uint8(3)
	if l.link != nil && l.link.IsFocused() {
		normal, hot = 2, 4
	}
	a := l.Color(c, normal)
	c.Fill(l.bounds.Local(), ' ', a)
	c.WriteHot(1, 0, l.text, a, l.Color(c, hot))
}
