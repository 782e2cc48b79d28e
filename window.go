package tvision

// WindowFlags select the frame controls a window offers.
type WindowFlags uint8

const (
	WinMove WindowFlags = 1 << iota
	WinGrow
	WinClose
	WinZoom
)

// minWindowSize is the smallest size a window can be dragged to.
var minWindowSize = Point{16, 6}

type dragMode uint8

const (
	dragNone dragMode = iota
	dragMove
	dragGrow
)

// Window is a framed group that lives on the Desktop. It can be moved,
// resized, zoomed and closed through its frame, and casts a shadow.
type Window struct {
	Group

	frame    *Frame
	flags    WindowFlags
	zoomRect Rect

	drag       dragMode
	dragOffset Point
}

// NewWindow creates a movable, resizable, closable, zoomable window.
// Children are positioned in window-local coordinates, inside the frame.
func NewWindow(bounds Rect, title string, number int) *Window {
	w := &Window{}
	w.initWindow(bounds, title, number, WinMove|WinGrow|WinClose|WinZoom)
	w.SetContainerPalette(BlueWindowPalette)
	return w
}

func (w *Window) initWindow(bounds Rect, title string, number int, flags WindowFlags) {
	w.Group.init(bounds)
	w.flags = flags
	w.SetOptions(OptSelectable, true)
	w.SetState(StateShadow, true)
	w.frame = NewFrame(w.bounds.Local())
	w.frame.title = title
	w.frame.number = number
	w.frame.flags = flags
	w.zoomRect = w.bounds
	w.Insert(w.frame)
}

func (w *Window) window() *Window {
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.frame.title
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.frame.title = title
}

// Number returns the window number shown in the frame, 0 for none.
func (w *Window) Number() int {
	return w.frame.number
}

// Flags returns the frame controls.
func (w *Window) Flags() WindowFlags {
	return w.flags
}

// Frame returns the window's frame view.
func (w *Window) Frame() *Frame {
	return w.frame
}

// Interior returns the area inside the frame, in window-local coordinates.
func (w *Window) Interior() Rect {
	return w.bounds.Local().Grow(-1, -1)
}

// SetBounds moves or resizes the window and its frame.
func (w *Window) SetBounds(r Rect) {
	w.Group.SetBounds(r)
	w.frame.SetBounds(w.bounds.Local())
}

// Zoom toggles between the current bounds and extent.
func (w *Window) Zoom(extent Rect) {
	if w.bounds != extent {
		w.zoomRect = w.bounds
		w.SetBounds(extent)
		return
	}
	w.SetBounds(w.zoomRect)
}

// Draw paints the frame active when the window is on the focus chain.
func (w *Window) Draw(c *Canvas) {
	w.frame.active = c.Focused()
	w.frame.moving = w.drag != dragNone
	w.Group.Draw(c)
}

// HandleEvent handles frame interaction, then routes to the children.
func (w *Window) HandleEvent(ev *Event) {
	if ev.IsMouse() && w.handleFrameMouse(ev) {
		return
	}
	w.Group.HandleEvent(ev)
	if ev.What == EvCommand && ev.Command == CmClose && w.state&StateModal != 0 {
		w.EndModal(CmCancel)
		ev.Clear()
	}
}

// handleFrameMouse implements dragging and the frame icons. ev.Mouse.Pos is
// in the owner's coordinates.
func (w *Window) handleFrameMouse(ev *Event) bool {
	pos := ev.Mouse.Pos
	switch ev.What {
	case EvMouseMove, EvMouseAuto:
		switch w.drag {
		case dragMove:
			w.SetBounds(w.bounds.MoveTo(pos.Sub(w.dragOffset)))
		case dragGrow:
			b := Point{max(pos.X+1, w.bounds.A.X+minWindowSize.X), max(pos.Y+1, w.bounds.A.Y+minWindowSize.Y)}
			w.SetBounds(Rect{A: w.bounds.A, B: b})
		default:
			return false
		}
		ev.Clear()
		return true
	case EvMouseUp:
		if w.drag == dragNone {
			return false
		}
		w.drag = dragNone
		ev.Clear()
		return true
	case EvMouseDown:
		if !w.bounds.Contains(pos) {
			return false
		}
		local := pos.Sub(w.bounds.A)
		switch w.frame.hitIcon(local) {
		case hitClose:
			ev.ToCommand(CmClose)
		case hitZoom:
			ev.ToCommand(CmZoom)
		case hitTitle:
			if ev.Mouse.Double && w.flags&WinZoom != 0 {
				ev.ToCommand(CmZoom)
				return true
			}
			if w.flags&WinMove == 0 {
				ev.Clear()
				return true
			}
			w.drag = dragMove
			w.dragOffset = local
			ev.Clear()
		case hitGrow:
			w.drag = dragGrow
			ev.Clear()
		default:
			return false
		}
		if ev.What == EvCommand && ev.Command == CmClose && w.state&StateModal != 0 {
			w.EndModal(CmCancel)
			ev.Clear()
		}
		return true
	}
	return false
}

// Execute runs the window modally.
func (w *Window) Execute(src EventSource) CommandID {
	return Execute(w, src)
}
