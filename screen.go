package tvision

import (
	"fmt"
	"os"
)

// Terminal receives the output of a flush. Backends implement it.
type Terminal interface {
	// SetCell paints one cell at screen coordinates.
	SetCell(x, y int, c Cell)
	// SetCursor places the hardware caret, or hides it.
	SetCursor(x, y int, visible bool)
}

// Cursor is the caret state of the screen.
type Cursor struct {
	Pos     Point
	Visible bool
}

// FlushStats holds statistics from the last flush.
type FlushStats struct {
	DirtyRows    int
	ChangedCells int
}

// debugFlush enables flush tracing via TVISION_DEBUG_FLUSH.
var debugFlush = os.Getenv("TVISION_DEBUG_FLUSH") != ""

// invalidCell never equals a drawable cell, forcing a repaint.
var invalidCell = Cell{Rune: -1}

// Screen is the double-buffered render target. Views draw into the back
// buffer through a clip stack; Flush diffs the back buffer against the front
// buffer (what the terminal shows) and sends only the changed cells.
type Screen struct {
	front *Buffer
	back  *Buffer

	clips  []Rect // effective clip after each push; clips[0] is the full screen
	cursor Cursor
	shown  Cursor // cursor state last sent to the terminal

	stats FlushStats
}

// NewScreen creates a screen of the given size. The first flush repaints
// every cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		front: NewBuffer(width, height),
		back:  NewBuffer(width, height),
	}
	s.clips = []Rect{s.back.Rect()}
	s.Invalidate()
	return s
}

// Width returns the screen width.
func (s *Screen) Width() int {
	return s.back.width
}

// Height returns the screen height.
func (s *Screen) Height() int {
	return s.back.height
}

// Rect returns the full screen extent.
func (s *Screen) Rect() Rect {
	return s.back.Rect()
}

// Back returns the buffer being drawn into.
func (s *Screen) Back() *Buffer {
	return s.back
}

// Front returns the buffer matching the terminal contents.
func (s *Screen) Front() *Buffer {
	return s.front
}

// Resize changes both buffers and forces a full repaint.
func (s *Screen) Resize(width, height int) {
	if len(s.clips) != 1 {
		panic("tvision: Resize during draw")
	}
	s.front.Resize(width, height)
	s.back.Resize(width, height)
	s.clips[0] = s.back.Rect()
	s.Invalidate()
}

// Invalidate makes the next flush repaint every cell.
func (s *Screen) Invalidate() {
	s.front.Fill(invalidCell)
	s.shown = Cursor{Pos: Point{-1, -1}}
}

// Clip returns the effective clip rect.
func (s *Screen) Clip() Rect {
	return s.clips[len(s.clips)-1]
}

// PushClip intersects r with the current clip and makes it current.
func (s *Screen) PushClip(r Rect) {
	s.clips = append(s.clips, s.Clip().Intersect(r.Normalize()))
}

// PopClip restores the previous clip. Popping more than was pushed is a
// programming error and panics.
func (s *Screen) PopClip() {
	if len(s.clips) <= 1 {
		panic("tvision: unbalanced PopClip")
	}
	s.clips = s.clips[:len(s.clips)-1]
}

// ClipDepth returns the number of clips pushed above the screen extent.
func (s *Screen) ClipDepth() int {
	return len(s.clips) - 1
}

// Set writes a cell in screen coordinates if it lies inside the current clip.
func (s *Screen) Set(x, y int, c Cell) {
	if !s.Clip().Contains(Point{x, y}) {
		return
	}
	s.back.Set(x, y, c)
}

// Get returns the back buffer cell at screen coordinates.
func (s *Screen) Get(x, y int) Cell {
	return s.back.Get(x, y)
}

// SetCursor records where the caret should appear after the next flush.
func (s *Screen) SetCursor(p Point, visible bool) {
	s.cursor = Cursor{Pos: p, Visible: visible}
}

// HideCursor hides the caret at the next flush.
func (s *Screen) HideCursor() {
	s.cursor.Visible = false
}

// Cursor returns the pending caret state.
func (s *Screen) Cursor() Cursor {
	return s.cursor
}

// Stats returns the statistics of the last flush.
func (s *Screen) Stats() FlushStats {
	return s.stats
}

// Flush sends every cell that differs between the back and front buffers to
// t, then copies it into the front buffer. It returns the number of cells
// emitted; a second flush without drawing in between emits nothing.
func (s *Screen) Flush(t Terminal) int {
	if len(s.clips) != 1 {
		panic("tvision: Flush with clips still pushed")
	}
	dirtyRows, changed := 0, 0
	for y := 0; y < s.back.height; y++ {
		// rows not written since the last flush cannot differ
		if !s.back.RowDirty(y) && !s.front.RowDirty(y) {
			continue
		}
		dirtyRows++
		for x := 0; x < s.back.width; x++ {
			cell := s.back.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			s.front.Set(x, y, cell)
			// the second half of a wide rune is painted by its first half
			if cell.Rune == 0 {
				continue
			}
			t.SetCell(x, y, cell)
			changed++
		}
	}
	if s.cursor != s.shown {
		t.SetCursor(s.cursor.Pos.X, s.cursor.Pos.Y, s.cursor.Visible)
		s.shown = s.cursor
	}
	s.back.ClearDirty()
	s.front.ClearDirty()
	s.stats = FlushStats{DirtyRows: dirtyRows, ChangedCells: changed}
	if debugFlush {
		fmt.Fprintf(os.Stderr, "Flush: %d dirty rows, %d changed cells\n", dirtyRows, changed)
	}
	return changed
}

// Invert swaps foreground and background of every cell in r (screen
// coordinates) in the back buffer. Used for visual feedback.
func (s *Screen) Invert(r Rect) {
	r = r.Intersect(s.back.Rect())
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			c := s.back.Get(x, y)
			c.Attr = c.Attr.Inverse()
			s.back.Set(x, y, c)
		}
	}
}
