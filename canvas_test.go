package tvision

import "testing"

func TestCanvasNesting(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, AppColor)
	a := NewAttr(White, Blue)

	c.Enter(RectAt(2, 2, 10, 5))
	c.Enter(RectAt(1, 1, 3, 2))
	if c.Origin() != Pt(3, 3) {
		t.Errorf("origin = %v, want (3,3)", c.Origin())
	}
	c.Fill(RectAt(-5, -5, 20, 20), '#', a)
	c.Leave()
	c.Leave()

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			want := x >= 3 && x < 6 && y >= 3 && y < 5
			if got := s.Get(x, y).Rune == '#'; got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if s.ClipDepth() != 0 {
		t.Errorf("clip depth = %d", s.ClipDepth())
	}
}

func TestCanvasDrawViewFocusAndCaret(t *testing.T) {
	s := NewScreen(30, 10)
	c := NewCanvas(s, AppColor)
	g := NewGroup(RectAt(5, 2, 20, 6))
	in := NewInputLine(RectAt(2, 1, 10, 1), 0)
	g.Insert(in)
	in.SetText("abc")

	c.DrawView(g, true)
	if cur := s.Cursor(); !cur.Visible || cur.Pos != Pt(5+2+1+3, 2+1) {
		t.Errorf("cursor = %+v, want visible at (11,3)", cur)
	}

	s.HideCursor()
	c.DrawView(g, false)
	if s.Cursor().Visible {
		t.Errorf("a view off the focus chain must not place the caret")
	}
}

func TestCanvasShadow(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, AppColor)
	w := NewWindow(RectAt(2, 2, 8, 4), "", 0)
	c.DrawView(w, true)
	if got := s.Get(10, 4).Attr; got != ShadowAttr {
		t.Errorf("right shadow attr = %v", got)
	}
	if got := s.Get(5, 6).Attr; got != ShadowAttr {
		t.Errorf("bottom shadow attr = %v", got)
	}
	if got := s.Get(10, 2).Attr; got == ShadowAttr {
		t.Errorf("shadow starts one row below the top")
	}
}

func TestCanvasWriteHot(t *testing.T) {
	s := NewScreen(10, 1)
	c := NewCanvas(s, AppColor)
	normal, hot := NewAttr(Black, LightGray), NewAttr(Red, LightGray)
	n := c.WriteHot(0, 0, "~F~ile", normal, hot)
	if n != 4 {
		t.Errorf("width = %d, want 4", n)
	}
	if s.Get(0, 0).Attr != hot || s.Get(1, 0).Attr != normal {
		t.Errorf("hot key attributes not applied")
	}
	if got := s.Back().Line(0); got != "File" {
		t.Errorf("line = %q", got)
	}
}
