package tvision

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing context handed to View.Draw. Coordinates are
// relative to the view being drawn; every write is clipped by the screen's
// clip stack. The canvas also carries the container and application palette
// tiers, so views resolve colors without knowing who owns them.
type Canvas struct {
	screen    *Screen
	origin    Point
	container Palette
	app       AppPalette
	focused   bool // the view being drawn is on the focus chain

	frames []canvasFrame
}

type canvasFrame struct {
	origin    Point
	container Palette
	focused   bool
}

// NewCanvas creates a drawing context over s using app as the application tier.
func NewCanvas(s *Screen, app AppPalette) *Canvas {
	return &Canvas{screen: s, app: app, focused: true}
}

// Screen returns the underlying screen.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Origin returns the absolute position of the current view's top-left corner.
func (c *Canvas) Origin() Point {
	return c.origin
}

// Focused reports whether the view being drawn is on the focus chain.
func (c *Canvas) Focused() bool {
	return c.focused
}

// Container returns the active container palette.
func (c *Canvas) Container() Palette {
	return c.container
}

// Resolve maps a view's logical color through the active tiers.
func (c *Canvas) Resolve(view Palette, index uint8) Attr {
	return Resolve(index, view, c.container, c.app)
}

// Enter makes r (in current coordinates) the drawing area: the origin moves
// to r.A and the clip narrows to r. Every Enter needs a matching Leave.
func (c *Canvas) Enter(r Rect) {
	c.frames = append(c.frames, canvasFrame{c.origin, c.container, c.focused})
	abs := r.Move(c.origin.X, c.origin.Y)
	c.screen.PushClip(abs)
	c.origin = abs.A
}

// Leave undoes the matching Enter.
func (c *Canvas) Leave() {
	if len(c.frames) == 0 {
		panic("tvision: unbalanced Canvas.Leave")
	}
	f := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	c.screen.PopClip()
	c.origin, c.container, c.focused = f.origin, f.container, f.focused
}

// SetContainer installs p as the container tier until the enclosing Leave.
func (c *Canvas) SetContainer(p Palette) {
	c.container = p
}

// DrawView draws v inside its bounds. focused tells whether v is the focused
// child of its owner. Shadows are painted after the view, in owner space.
func (c *Canvas) DrawView(v View, focused bool) {
	if !visible(v) {
		return
	}
	r := v.Bounds()
	c.Enter(r)
	c.focused = c.focused && focused
	v.Draw(c)
	if co, ok := v.(CursorOwner); ok && c.focused {
		if p, show := co.Caret(); show {
			abs := p.Add(c.origin)
			if c.screen.Clip().Contains(abs) {
				c.screen.SetCursor(abs, true)
			}
		}
	}
	c.Leave()
	if sh, ok := v.(Shadowed); ok {
		for _, sr := range sh.ShadowRects() {
			c.Shade(sr, ShadowAttr)
		}
	}
}

// Put writes a single rune.
func (c *Canvas) Put(x, y int, r rune, a Attr) {
	c.screen.Set(c.origin.X+x, c.origin.Y+y, Cell{Rune: r, Attr: a})
}

// Get reads back a cell in current coordinates.
func (c *Canvas) Get(x, y int) Cell {
	return c.screen.Get(c.origin.X+x, c.origin.Y+y)
}

// WriteString writes s starting at (x, y) and returns the number of columns
// used. Wide runes take two columns.
func (c *Canvas) WriteString(x, y int, s string, a Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Put(col, y, r, a)
		if w == 2 {
			c.Put(col+1, y, 0, a)
		}
		col += w
	}
	return col - x
}

// WriteHot writes a label where the text between a pair of '~' uses the hot
// attribute, as in "~O~K". It returns the number of columns used.
func (c *Canvas) WriteHot(x, y int, label string, normal, hot Attr) int {
	col := x
	for i, part := range strings.Split(label, "~") {
		a := normal
		if i%2 == 1 {
			a = hot
		}
		col += c.WriteString(col, y, part, a)
	}
	return col - x
}

// Fill fills r with ch.
func (c *Canvas) Fill(r Rect, ch rune, a Attr) {
	r = r.Normalize()
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			c.Put(x, y, ch, a)
		}
	}
}

// HLine draws a horizontal run of r.
func (c *Canvas) HLine(x, y, length int, r rune, a Attr) {
	for i := 0; i < length; i++ {
		c.Put(x+i, y, r, a)
	}
}

// Shade recolors the cells in r keeping their characters.
func (c *Canvas) Shade(r Rect, a Attr) {
	r = r.Normalize()
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			cell := c.Get(x, y)
			cell.Attr = a
			c.screen.Set(c.origin.X+x, c.origin.Y+y, cell)
		}
	}
}

// Box draws a border around r.
func (c *Canvas) Box(r Rect, border BorderStyle, a Attr) {
	w, h := r.Width(), r.Height()
	if w < 2 || h < 2 {
		return
	}
	x, y := r.A.X, r.A.Y
	c.Put(x, y, border.TopLeft, a)
	c.Put(x+w-1, y, border.TopRight, a)
	c.Put(x, y+h-1, border.BottomLeft, a)
	c.Put(x+w-1, y+h-1, border.BottomRight, a)
	c.HLine(x+1, y, w-2, border.Horizontal, a)
	c.HLine(x+1, y+h-1, w-2, border.Horizontal, a)
	for i := 1; i < h-1; i++ {
		c.Put(x, y+i, border.Vertical, a)
		c.Put(x+w-1, y+i, border.Vertical, a)
	}
}

// labelWidth returns the display width of a "~X~it" style label.
func labelWidth(label string) int {
	return ansi.StringWidth(strings.ReplaceAll(label, "~", ""))
}
