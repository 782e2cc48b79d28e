package tvision

import "slices"

// EventSource supplies events to a modal loop. GetEvent blocks until an
// event arrives or the source's idle timeout expires, in which case it
// leaves ev as EvNothing.
type EventSource interface {
	GetEvent(ev *Event)
}

// Group is a view owning an ordered list of children. Children are painted
// first to last, so the last child is frontmost. A group routes events:
// focus-cycle keys move focus, mouse events go to the frontmost child under
// the pointer, keys and commands go to the focused child only, and
// broadcasts go to every child.
type Group struct {
	ViewBase

	children []View
	focused  int // index into children, -1 when nothing is focused
	capture  int // child receiving mouse events until the button is released
	endState CommandID

	// container, when set, is the container palette tier for the children.
	container Palette
}

// NewGroup creates an empty group.
func NewGroup(bounds Rect) *Group {
	g := &Group{}
	g.init(bounds)
	return g
}

func (g *Group) init(bounds Rect) {
	g.ViewBase = NewViewBase(bounds)
	g.focused = -1
	g.capture = -1
}

// Children returns the children in paint order. The slice must not be modified.
func (g *Group) Children() []View {
	return g.children
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// SetContainerPalette sets the container tier used while drawing children.
// A nil palette keeps whatever tier the group itself is drawn with.
func (g *Group) SetContainerPalette(p Palette) {
	g.container = p
}

// ContainerPalette returns the container tier for the children.
func (g *Group) ContainerPalette() Palette {
	return g.container
}

// Insert appends v as the frontmost child. If nothing is focused yet and v
// can take focus, v becomes focused.
func (g *Group) Insert(v View) {
	if v.Options()&OptCentered != 0 {
		v.SetBounds(centered(g.bounds.Local(), v.Bounds().Size()))
	}
	v.SetFocused(false)
	g.children = append(g.children, v)
	if g.focused < 0 && v.CanFocus() {
		g.focusAt(len(g.children) - 1)
	}
}

// Remove detaches v from the group. Focus moves to the nearest focusable
// child before it.
func (g *Group) Remove(v View) bool {
	i := g.IndexOf(v)
	if i < 0 {
		return false
	}
	wasFocused := i == g.focused
	if wasFocused {
		g.focusAt(-1)
	}
	g.children = slices.Delete(g.children, i, i+1)
	if g.focused > i {
		g.focused--
	}
	switch {
	case g.capture == i:
		g.capture = -1
	case g.capture > i:
		g.capture--
	}
	if wasFocused {
		g.focusAt(g.findFocusable(i, false))
	}
	g.validateFocus()
	return true
}

// IndexOf returns the position of v, or -1.
func (g *Group) IndexOf(v View) int {
	for i, c := range g.children {
		if c == v {
			return i
		}
	}
	return -1
}

// Focused returns the focused child, or nil. A child that lost the ability
// to take focus since it was focused is not reported.
func (g *Group) Focused() View {
	if g.focused < 0 || g.focused >= len(g.children) {
		return nil
	}
	if c := g.children[g.focused]; c.CanFocus() {
		return c
	}
	return nil
}

// FocusedIndex returns the index of the focused child, or -1.
func (g *Group) FocusedIndex() int {
	return g.focused
}

// Focus makes v the focused child. It fails if v is not a child or cannot
// take focus.
func (g *Group) Focus(v View) bool {
	i := g.IndexOf(v)
	if i < 0 || !v.CanFocus() {
		return false
	}
	g.focusAt(i)
	return true
}

// focusAt moves focus to index i (-1 for none). It is the only place the
// focus index changes, and it updates the children's focus flags in the
// same step.
func (g *Group) focusAt(i int) {
	if i == g.focused {
		return
	}
	if g.focused >= 0 && g.focused < len(g.children) {
		g.children[g.focused].SetFocused(false)
	}
	g.focused = i
	if cur := g.Focused(); cur != nil {
		cur.SetFocused(true)
	} else {
		g.focused = -1
	}
}

// findFocusable searches for a focusable child starting after (or, going
// backwards, before) index from, wrapping around once.
func (g *Group) findFocusable(from int, forward bool) int {
	n := len(g.children)
	if n == 0 {
		return -1
	}
	step := 1
	if !forward {
		step = -1
	}
	i := from
	for range n {
		i = ((i+step)%n + n) % n
		if g.children[i].CanFocus() {
			return i
		}
	}
	return -1
}

// FocusNext moves focus to the next (or previous) focusable child,
// wrapping. It reports whether any child could take focus.
func (g *Group) FocusNext(forward bool) bool {
	from := g.focused
	if from < 0 && !forward {
		from = len(g.children)
	}
	i := g.findFocusable(from, forward)
	if i < 0 {
		return false
	}
	g.focusAt(i)
	return true
}

// validateFocus keeps the focus index pointing at a focusable child. It runs
// before and after routing, since a child's state may change behind the
// group's back.
func (g *Group) validateFocus() {
	if g.Focused() != nil {
		return
	}
	from := g.focused
	if from < 0 {
		from = -1
	} else {
		from--
	}
	g.focusAt(-1)
	g.focusAt(g.findFocusable(from, true))
}

// BringToFront moves v to the end of the paint order.
func (g *Group) BringToFront(v View) {
	i := g.IndexOf(v)
	if i < 0 || i == len(g.children)-1 {
		return
	}
	remap := func(j int) int {
		switch {
		case j == i:
			return len(g.children) - 1
		case j > i:
			return j - 1
		}
		return j
	}
	g.children = append(append(g.children[:i:i], g.children[i+1:]...), v)
	g.focused = remap(g.focused)
	g.capture = remap(g.capture)
}

// ChildAt returns the index of the frontmost visible child containing p
// (in the group's local coordinates), or -1.
func (g *Group) ChildAt(p Point) int {
	for i := len(g.children) - 1; i >= 0; i-- {
		c := g.children[i]
		if visible(c) && c.Bounds().Contains(p) {
			return i
		}
	}
	return -1
}

// ForEach calls fn for every child in paint order.
func (g *Group) ForEach(fn func(View)) {
	for _, c := range g.children {
		fn(c)
	}
}

// Draw paints the children back to front.
func (g *Group) Draw(c *Canvas) {
	if g.container != nil {
		c.SetContainer(g.container)
	}
	for i, child := range g.children {
		c.DrawView(child, i == g.focused)
	}
}

// HandleEvent routes ev to the children, then lets the group react to the
// command it may have turned into.
func (g *Group) HandleEvent(ev *Event) {
	g.Route(ev)
	g.handleCommand(ev)
	g.validateFocus()
}

// Route delivers ev to the children according to the routing rules,
// without the group's own command handling.
func (g *Group) Route(ev *Event) {
	g.validateFocus()
	switch {
	case ev.What == EvKeyDown && (ev.Key.Code == KeyTab || ev.Key.Code == KeyBackTab) && g.options&OptPassTab == 0:
		if g.FocusNext(ev.Key.Code == KeyTab) {
			ev.Clear()
		}
	case ev.IsMouse():
		g.routeMouse(ev)
	case ev.What == EvKeyDown || ev.What == EvCommand:
		if f := g.Focused(); f != nil {
			f.HandleEvent(ev)
		}
	case ev.What == EvBroadcast:
		g.Broadcast(ev)
	}
}

// Broadcast delivers ev to every child in order for as long as it is still
// a broadcast. A child that consumes or rewrites it stops the delivery.
func (g *Group) Broadcast(ev *Event) {
	kids := append([]View(nil), g.children...)
	for _, c := range kids {
		if ev.What != EvBroadcast {
			return
		}
		c.HandleEvent(ev)
	}
}

func (g *Group) routeMouse(ev *Event) {
	origin := ev.Mouse.Pos
	local := origin.Sub(g.bounds.A)

	if ev.What == EvMouseDown {
		g.capture = -1
	}
	target := g.capture
	if target < 0 {
		target = g.ChildAt(local)
	}
	if ev.What == EvMouseUp {
		g.capture = -1
	}
	if target < 0 {
		return
	}
	child := g.children[target]
	if ev.What == EvMouseDown {
		g.capture = target
		if target != g.focused && child.CanFocus() {
			g.focusAt(target)
		}
	}
	ev.Mouse.Pos = local
	child.HandleEvent(ev)
	if ev.IsMouse() {
		ev.Mouse.Pos = origin
	}
}

// handleCommand ends a modal group on the standard dialog answers. OK and
// Yes are refused while a child fails validation.
func (g *Group) handleCommand(ev *Event) {
	if ev.What != EvCommand {
		return
	}
	if ev.Command == CmSelect {
		if v, ok := ev.Info.(View); ok && g.Focus(v) {
			ev.Clear()
		}
		return
	}
	if g.state&StateModal == 0 {
		return
	}
	switch ev.Command {
	case CmOK, CmYes:
		if g.validate() != nil {
			ev.Clear()
			return
		}
		g.EndModal(ev.Command)
		ev.Clear()
	case CmCancel, CmNo:
		g.EndModal(ev.Command)
		ev.Clear()
	}
}

// EndModal sets the end state, which terminates a running Execute.
func (g *Group) EndModal(cmd CommandID) {
	g.endState = cmd
}

// EndState returns the command that ended (or will end) the modal loop.
func (g *Group) EndState() CommandID {
	return g.endState
}

// SetEndState implements EndStater.
func (g *Group) SetEndState(cmd CommandID) {
	g.endState = cmd
}

// Execute runs g modally. Types embedding Group call the package-level
// Execute with themselves so their own HandleEvent is used.
func (g *Group) Execute(src EventSource) CommandID {
	return Execute(g, src)
}

// Execute runs a private event loop for v: it pulls events from src and
// routes them into v until v's end state is set, then returns it. Calls
// nest naturally; an outer loop waits on the call stack while an inner one
// runs.
func Execute(v View, src EventSource) CommandID {
	es, ok := v.(EndStater)
	if !ok {
		return CmCancel
	}
	wasModal := v.State()&StateModal != 0
	v.SetState(StateModal, true)
	defer v.SetState(StateModal, wasModal)

	es.SetEndState(CmValid)
	logger.Debug("modal loop enter", "view", viewName(v))
	for es.EndState() == CmValid {
		var ev Event
		src.GetEvent(&ev)
		if ev.Pending() {
			v.HandleEvent(&ev)
		}
	}
	logger.Debug("modal loop leave", "view", viewName(v), "end", es.EndState())
	return es.EndState()
}

// centered returns a rect of the given size centered in area.
func centered(area Rect, size Point) Rect {
	x := area.A.X + (area.Width()-size.X)/2
	y := area.A.Y + (area.Height()-size.Y)/2
	return RectAt(x, y, size.X, size.Y)
}
