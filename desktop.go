package tvision

// Desktop is the group holding the background and the windows. The
// background is always its first child, so it repaints whatever a moved or
// closed window leaves uncovered.
type Desktop struct {
	Group
	background *Background
}

// NewDesktop creates a desktop covering bounds.
func NewDesktop(bounds Rect) *Desktop {
	d := &Desktop{}
	d.Group.init(bounds)
	d.SetOptions(OptSelectable|OptPassTab, true)
	d.background = NewBackground(d.bounds.Local(), '░')
	d.Group.Insert(d.background)
	return d
}

// Background returns the desktop background.
func (d *Desktop) Background() *Background {
	return d.background
}

// SetBounds resizes the desktop, its background and any zoomed window,
// and keeps the other windows reachable.
func (d *Desktop) SetBounds(r Rect) {
	old := d.bounds.Local()
	d.Group.SetBounds(r)
	d.background.SetBounds(d.bounds.Local())
	for _, c := range d.children {
		w := asWindow(c)
		if w == nil {
			continue
		}
		if w.Bounds() == old && w.Flags()&WinZoom != 0 {
			w.SetBounds(d.bounds.Local())
		}
		d.clamp(w)
	}
}

// Insert adds v on top of the other windows and focuses it.
func (d *Desktop) Insert(v View) {
	d.Group.Insert(v)
	d.Focus(v)
	logger.Debug("desktop insert", "view", viewName(v), "bounds", v.Bounds())
}

// Remove takes v off the desktop and focuses the topmost remaining window.
func (d *Desktop) Remove(v View) bool {
	if !d.Group.Remove(v) {
		return false
	}
	d.focusTop()
	logger.Debug("desktop remove", "view", viewName(v))
	return true
}

func (d *Desktop) focusTop() {
	for i := len(d.children) - 1; i > 0; i-- {
		if d.children[i].CanFocus() {
			d.focusAt(i)
			return
		}
	}
	d.focusAt(-1)
}

// windows returns the resizable window children, back to front.
func (d *Desktop) windows() []*Window {
	var ws []*Window
	for _, c := range d.children {
		if w := asWindow(c); w != nil && w.Flags()&WinGrow != 0 {
			ws = append(ws, w)
		}
	}
	return ws
}

// HandleEvent raises a clicked window before routing, then acts on the
// window commands the focused window passes up.
func (d *Desktop) HandleEvent(ev *Event) {
	if ev.What == EvMouseDown {
		if i := d.ChildAt(ev.Mouse.Pos.Sub(d.bounds.A)); i > 0 && d.children[i].CanFocus() {
			d.BringToFront(d.children[i])
		}
	}
	d.Group.HandleEvent(ev)
	if w := asWindow(d.Focused()); w != nil {
		d.clamp(w)
	}
	if ev.What != EvCommand {
		return
	}
	switch ev.Command {
	case CmClose:
		if w := asWindow(d.Focused()); w != nil && w.Flags()&WinClose != 0 {
			d.Remove(d.Focused())
			ev.Clear()
		}
	case CmZoom:
		if w := asWindow(d.Focused()); w != nil && w.Flags()&WinZoom != 0 {
			w.Zoom(d.bounds.Local())
			ev.Clear()
		}
	case CmNext:
		d.SelectNext(true)
		ev.Clear()
	case CmPrev:
		d.SelectNext(false)
		ev.Clear()
	case CmTile:
		d.Tile()
		ev.Clear()
	case CmCascade:
		d.Cascade()
		ev.Clear()
	}
}

// SelectNext cycles through the windows. Going forward sends the current
// window to the back; going backward raises the backmost one.
func (d *Desktop) SelectNext(forward bool) {
	if len(d.children) < 3 {
		return
	}
	if forward {
		cur := d.Focused()
		if cur == nil {
			return
		}
		i := d.IndexOf(cur)
		kids := append([]View{d.background, cur}, append(d.children[1:i:i], d.children[i+1:]...)...)
		d.reorder(kids)
	} else {
		d.BringToFront(d.children[1])
	}
	d.focusTop()
}

// reorder replaces the child order, keeping the focused view.
func (d *Desktop) reorder(kids []View) {
	var focused View
	if d.focused >= 0 {
		focused = d.children[d.focused]
	}
	d.children = kids
	d.focused = -1
	d.capture = -1
	if focused != nil {
		d.focused = d.IndexOf(focused)
	}
}

// Tile arranges the tileable windows in a grid filling the desktop.
func (d *Desktop) Tile() {
	ws := d.windows()
	n := len(ws)
	if n == 0 {
		return
	}
	cols := 1
	for cols*cols < n {
		cols++
	}
	rows := (n + cols - 1) / cols
	area := d.bounds.Local()
	for i, w := range ws {
		col, row := i%cols, i/cols
		x1 := area.Width() * col / cols
		x2 := area.Width() * (col + 1) / cols
		y1 := area.Height() * row / rows
		y2 := area.Height() * (row + 1) / rows
		w.SetBounds(NewRect(x1, y1, x2, y2))
	}
}

// Cascade stacks the windows with each one offset from the one behind it.
func (d *Desktop) Cascade() {
	ws := d.windows()
	area := d.bounds.Local()
	for i, w := range ws {
		off := max(0, min(i, area.Height()-minWindowSize.Y))
		w.SetBounds(NewRect(off, off, area.B.X, area.B.Y))
	}
}

// clamp keeps w's title bar on the desktop so it can be grabbed again.
func (d *Desktop) clamp(w *Window) {
	r := w.Bounds()
	size := d.bounds.Size()
	x := min(max(r.A.X, 2-r.Width()), size.X-2)
	y := min(max(r.A.Y, 0), size.Y-1)
	if x != r.A.X || y != r.A.Y {
		w.SetBounds(r.MoveTo(Pt(x, y)))
	}
}

// windowed is implemented by Window and every type embedding it.
type windowed interface {
	window() *Window
}

func asWindow(v View) *Window {
	if w, ok := v.(windowed); ok {
		return w.window()
	}
	return nil
}
