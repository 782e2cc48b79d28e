package tvision

// State is the bit-flag state word of a view.
type State uint16

const (
	StateVisible State = 1 << iota
	StateFocused
	StateDisabled
	StateShadow
	StateActive
	StateModal
	StateCursorVisible
	StateDragging
)

// Options are static behavior flags of a view.
type Options uint16

const (
	// OptSelectable lets the view take focus.
	OptSelectable Options = 1 << iota
	// OptCentered asks the owner to center the view when it is inserted.
	OptCentered
	// OptPassTab makes a group hand focus-cycle keys to its focused child
	// instead of cycling itself. Top-level containers set it.
	OptPassTab
)

// View is the capability every node of the tree implements. Bounds are
// expressed in the owner's coordinate space; mouse events reach a view in
// that same space.
type View interface {
	Bounds() Rect
	SetBounds(r Rect)

	// Draw paints the view. The canvas origin is the view's top-left corner
	// and the canvas clips to the view's bounds.
	Draw(c *Canvas)

	// HandleEvent reacts to ev, clearing it when consumed or rewriting it into
	// a command for the owners to see.
	HandleEvent(ev *Event)

	CanFocus() bool
	IsFocused() bool
	// SetFocused is called only by the owning group, together with its own
	// focus index update.
	SetFocused(focused bool)

	State() State
	SetState(s State, on bool)
	Options() Options
}

// Shadowed is implemented by views that cast a shadow.
type Shadowed interface {
	// ShadowRects returns the cells covered by the shadow, in owner coordinates.
	ShadowRects() []Rect
}

// Defaulter is implemented by buttons that can be the default action.
type Defaulter interface {
	IsDefault() bool
}

// EndStater is implemented by views that can run modally.
type EndStater interface {
	EndState() CommandID
	SetEndState(cmd CommandID)
}

// CursorOwner is implemented by views with a text caret.
type CursorOwner interface {
	// Caret returns the caret position relative to the view and whether it
	// should be shown.
	Caret() (Point, bool)
}

// ViewBase provides the bookkeeping shared by all views.
// Embed it and override Draw and HandleEvent.
type ViewBase struct {
	bounds  Rect
	state   State
	options Options
	palette Palette
}

// NewViewBase creates a visible view base with the given bounds.
func NewViewBase(bounds Rect) ViewBase {
	return ViewBase{bounds: bounds.Normalize(), state: StateVisible}
}

// Bounds returns the view's rect in owner coordinates.
func (v *ViewBase) Bounds() Rect {
	return v.bounds
}

// SetBounds moves or resizes the view.
func (v *ViewBase) SetBounds(r Rect) {
	v.bounds = r.Normalize()
}

// Size returns width and height.
func (v *ViewBase) Size() Point {
	return v.bounds.Size()
}

// Draw draws nothing.
func (v *ViewBase) Draw(c *Canvas) {}

// HandleEvent ignores every event.
func (v *ViewBase) HandleEvent(ev *Event) {}

// CanFocus reports whether the view is selectable, visible and enabled.
func (v *ViewBase) CanFocus() bool {
	return v.options&OptSelectable != 0 &&
		v.state&StateVisible != 0 &&
		v.state&StateDisabled == 0
}

// IsFocused reports whether the owner has focused this view.
func (v *ViewBase) IsFocused() bool {
	return v.state&StateFocused != 0
}

// SetFocused sets the focused flag.
func (v *ViewBase) SetFocused(focused bool) {
	v.SetState(StateFocused, focused)
}

// State returns the state word.
func (v *ViewBase) State() State {
	return v.state
}

// SetState sets or clears state bits.
func (v *ViewBase) SetState(s State, on bool) {
	if on {
		v.state |= s
	} else {
		v.state &^= s
	}
}

// Visible reports whether StateVisible is set.
func (v *ViewBase) Visible() bool {
	return v.state&StateVisible != 0
}

// Disabled reports whether StateDisabled is set.
func (v *ViewBase) Disabled() bool {
	return v.state&StateDisabled != 0
}

// Options returns the options word.
func (v *ViewBase) Options() Options {
	return v.options
}

// SetOptions sets or clears option bits.
func (v *ViewBase) SetOptions(o Options, on bool) {
	if on {
		v.options |= o
	} else {
		v.options &^= o
	}
}

// Palette returns the view tier palette.
func (v *ViewBase) Palette() Palette {
	return v.palette
}

// SetPalette sets the view tier palette.
func (v *ViewBase) SetPalette(p Palette) {
	v.palette = p
}

// Color resolves a logical color of this view against the canvas tiers.
func (v *ViewBase) Color(c *Canvas, index uint8) Attr {
	return c.Resolve(v.palette, index)
}

// ShadowRects returns the standard two-column, one-row shadow when
// StateShadow is set.
func (v *ViewBase) ShadowRects() []Rect {
	if v.state&StateShadow == 0 || v.bounds.Empty() {
		return nil
	}
	r := v.bounds
	return []Rect{
		NewRect(r.B.X, r.A.Y+1, r.B.X+2, r.B.Y+1),
		NewRect(r.A.X+2, r.B.Y, r.B.X, r.B.Y+1),
	}
}

func visible(v View) bool {
	return v.State()&StateVisible != 0
}
