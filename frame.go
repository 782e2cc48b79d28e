package tvision

import "strconv"

// Frame draws a window border, title, number and icons. It is the first
// child of every Window and fills the window's whole extent.
type Frame struct {
	ViewBase
	title  string
	number int
	flags  WindowFlags
	active bool
	moving bool
}

// NewFrame creates a frame covering bounds.
func NewFrame(bounds Rect) *Frame {
	f := &Frame{ViewBase: NewViewBase(bounds)}
	f.SetPalette(FramePalette)
	return f
}

const (
	closeIconX = 2
	iconWidth  = 3
)

// Draw paints the border and fills the interior.
func (f *Frame) Draw(c *Canvas) {
	w, h := f.Size().X, f.Size().Y
	frameColor, titleColor := uint8(1), uint8(2)
	border := BorderSingle
	if f.active {
		frameColor, titleColor = 3, 4
		if !f.moving {
			border = BorderDouble
		}
	}
	fa := f.Color(c, frameColor)
	c.Fill(NewRect(0, 0, w, h), ' ', fa)
	c.Box(NewRect(0, 0, w, h), border, fa)

	if f.title != "" {
		title := " " + f.title + " "
		tw := labelWidth(title)
		maxW := w - 2*(closeIconX+iconWidth+1)
		if tw <= maxW || maxW <= 0 {
			c.WriteString((w-tw)/2, 0, title, f.Color(c, titleColor))
		}
	}
	if f.number > 0 && f.number < 10 {
		x := w - closeIconX - iconWidth - 2
		if f.flags&WinZoom == 0 {
			x = w - 3
		}
		c.WriteString(x, 0, strconv.Itoa(f.number), fa)
	}
	if !f.active || f.moving {
		return
	}
	icons := f.Color(c, 5)
	if f.flags&WinClose != 0 {
		c.WriteString(closeIconX, 0, "[■]", icons)
	}
	if f.flags&WinZoom != 0 {
		c.WriteString(w-closeIconX-iconWidth, 0, "[↑]", icons)
	}
	if f.flags&WinGrow != 0 {
		c.Put(w-2, h-1, '─', icons)
		c.Put(w-1, h-1, '┘', icons)
	}
}

// hitIcon reports which frame control, if any, is under p (frame-local).
func (f *Frame) hitIcon(p Point) frameHit {
	w, h := f.Size().X, f.Size().Y
	switch {
	case p.Y == 0 && f.flags&WinClose != 0 && p.X >= closeIconX && p.X < closeIconX+iconWidth:
		return hitClose
	case p.Y == 0 && f.flags&WinZoom != 0 && p.X >= w-closeIconX-iconWidth && p.X < w-closeIconX:
		return hitZoom
	case p.Y == 0:
		return hitTitle
	case p.Y == h-1 && p.X >= w-2 && f.flags&WinGrow != 0:
		return hitGrow
	}
	return hitNone
}

type frameHit uint8

const (
	hitNone frameHit = iota
	hitTitle
	hitClose
	hitZoom
	hitGrow
)
