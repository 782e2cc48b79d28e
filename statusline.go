package tvision

// StatusItem is one entry of the status line. Text may mark its shortcut
// with ~, as in "~Alt-X~ Exit". An item with empty Text is a hidden key
// binding.
type StatusItem struct {
	Text    string
	Key     KeyEvent
	Command CommandID
}

// StatusLine is the bottom row of the screen. It turns its items' keys and
// clicks into commands, and grays out items whose command is disabled.
type StatusLine struct {
	ViewBase
	items []StatusItem
}

// NewStatusLine creates a status line.
func NewStatusLine(bounds Rect, items ...StatusItem) *StatusLine {
	s := &StatusLine{ViewBase: NewViewBase(bounds), items: items}
	s.SetPalette(StatusLinePalette)
	return s
}

// Items returns the status items.
func (s *StatusLine) Items() []StatusItem {
	return s.items
}

// itemAt returns the index of the item under column x, or -1.
func (s *StatusLine) itemAt(x int) int {
	col := 0
	for i, it := range s.items {
		if it.Text == "" {
			continue
		}
		w := labelWidth(it.Text) + 2
		if x >= col && x < col+w {
			return i
		}
		col += w
	}
	return -1
}

func (s *StatusLine) HandleEvent(ev *Event) {
	switch ev.What {
	case EvKeyDown:
		for _, it := range s.items {
			if it.Key.Matches(ev.Key) && CommandEnabled(it.Command) {
				ev.ToCommand(it.Command)
				return
			}
		}
	case EvMouseDown:
		i := s.itemAt(ev.Mouse.Pos.X - s.bounds.A.X)
		if i >= 0 && CommandEnabled(s.items[i].Command) {
			ev.ToCommand(s.items[i].Command)
			return
		}
		ev.Clear()
	}
}

func (s *StatusLine) Draw(c *Canvas) {
	c.Fill(s.bounds.Local(), ' ', s.Color(c, 1))
	col := 0
	for _, it := range s.items {
		if it.Text == "" {
			continue
		}
		normal, hot := s.Color(c, 1), s.Color(c, 3)
		if !CommandEnabled(it.Command) {
			normal, hot = s.Color(c, 2), s.Color(c, 2)
		}
		c.Put(col, 0, ' ', normal)
		col++
		col += c.WriteHot(col, 0, it.Text, normal, hot)
		c.Put(col, 0, ' ', normal)
		col++
	}
}
