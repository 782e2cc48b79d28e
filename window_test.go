package tvision

import "testing"

func newTestDesktop() (*Desktop, *Window, *Window) {
	d := NewDesktop(RectAt(0, 0, 60, 20))
	w1 := NewWindow(RectAt(2, 2, 20, 8), "One", 1)
	w2 := NewWindow(RectAt(10, 5, 20, 8), "Two", 2)
	d.Insert(w1)
	d.Insert(w2)
	return d, w1, w2
}

func drawDesktop(d *Desktop) *Screen {
	s := NewScreen(60, 20)
	NewCanvas(s, AppColor).DrawView(d, true)
	return s
}

func mouse(v View, what EventType, x, y int) *Event {
	ev := MouseAt(what, Pt(x, y), ButtonLeft)
	v.HandleEvent(&ev)
	return &ev
}

func TestWindowFrame(t *testing.T) {
	d, w1, w2 := newTestDesktop()
	s := drawDesktop(d)

	if d.Focused() != w2 {
		t.Fatalf("last inserted window should be focused")
	}
	if r := s.Get(10, 5).Rune; r != BoxDoubleTopLeft {
		t.Errorf("active frame corner = %q, want double", r)
	}
	if r := s.Get(2, 2).Rune; r != BoxTopLeft {
		t.Errorf("passive frame corner = %q, want single", r)
	}
	if r := s.Get(18, 5).Rune; r != 'T' {
		t.Errorf("title should be centered, got %q at (18,5)", r)
	}
	if r := s.Get(13, 5).Rune; r != '■' {
		t.Errorf("close icon missing, got %q", r)
	}
	if r := s.Get(3, 2).Rune; r == '■' {
		t.Errorf("passive window should not show icons")
	}
	frameAttr := Resolve(3, FramePalette, BlueWindowPalette, AppColor)
	if got := s.Get(10, 5).Attr; got != frameAttr {
		t.Errorf("frame attr = %v, want %v", got, frameAttr)
	}
	if w1.Interior() != RectAt(1, 1, 18, 6) {
		t.Errorf("interior = %v", w1.Interior())
	}
}

func TestWindowClickRaises(t *testing.T) {
	d, w1, _ := newTestDesktop()
	mouse(d, EvMouseDown, 4, 4)
	mouse(d, EvMouseUp, 4, 4)
	if d.Focused() != w1 {
		t.Errorf("clicked window should be focused")
	}
	if d.Children()[d.Len()-1] != w1 {
		t.Errorf("clicked window should be frontmost")
	}
}

func TestWindowDrag(t *testing.T) {
	d, w1, _ := newTestDesktop()
	mouse(d, EvMouseDown, 8, 2)
	mouse(d, EvMouseMove, 20, 6)
	mouse(d, EvMouseUp, 20, 6)
	if got := w1.Bounds(); got != RectAt(14, 6, 20, 8) {
		t.Errorf("bounds after drag = %v", got)
	}

	t.Run("clamped to desktop", func(t *testing.T) {
		mouse(d, EvMouseDown, 20, 6)
		mouse(d, EvMouseMove, -100, -50)
		mouse(d, EvMouseUp, -100, -50)
		if got := w1.Bounds().A; got != Pt(2-20, 0) {
			t.Errorf("origin after clamp = %v", got)
		}
	})

	t.Run("resize corner", func(t *testing.T) {
		d, w1, _ := newTestDesktop()
		d.BringToFront(w1)
		d.Focus(w1)
		mouse(d, EvMouseDown, 21, 9)
		mouse(d, EvMouseMove, 30, 14)
		mouse(d, EvMouseUp, 30, 14)
		if got := w1.Bounds(); got != NewRect(2, 2, 31, 15) {
			t.Errorf("bounds after resize = %v", got)
		}
		if got := w1.Frame().Bounds(); got != NewRect(0, 0, 29, 13) {
			t.Errorf("frame should follow the window, got %v", got)
		}
		mouse(d, EvMouseDown, 30, 14)
		mouse(d, EvMouseMove, 3, 3)
		if got := w1.Bounds().Size(); got != minWindowSize {
			t.Errorf("size = %v, want minimum %v", got, minWindowSize)
		}
	})
}

func TestWindowCloseAndZoom(t *testing.T) {
	d, w1, w2 := newTestDesktop()

	ev := mouse(d, EvMouseDown, 10+16, 5)
	if ev.What != EvNothing {
		t.Errorf("zoom click should be consumed, got %v", ev)
	}
	if w2.Bounds() != d.Bounds().Local() {
		t.Errorf("zoomed bounds = %v", w2.Bounds())
	}
	cmd := CommandEvent(CmZoom)
	d.HandleEvent(&cmd)
	if w2.Bounds() != RectAt(10, 5, 20, 8) {
		t.Errorf("unzoom bounds = %v", w2.Bounds())
	}

	mouse(d, EvMouseDown, 13, 5)
	if d.IndexOf(w2) >= 0 {
		t.Fatalf("close icon should remove the window")
	}
	if d.Focused() != w1 || !w1.IsFocused() {
		t.Errorf("focus should move to the remaining window")
	}

	t.Run("modal close ends the loop", func(t *testing.T) {
		w := NewWindow(RectAt(0, 0, 20, 6), "M", 0)
		src := &sliceSource{events: []Event{MouseAt(EvMouseDown, Pt(3, 0), ButtonLeft)}}
		if got := w.Execute(src); got != CmCancel {
			t.Errorf("Execute = %v, want Cancel", got)
		}
	})
}

func TestDesktopSelectNext(t *testing.T) {
	d, w1, w2 := newTestDesktop()
	w3 := NewWindow(RectAt(20, 8, 20, 8), "Three", 3)
	d.Insert(w3)

	ev := CommandEvent(CmNext)
	d.HandleEvent(&ev)
	if d.Focused() != w2 {
		t.Errorf("CmNext focus = %v", viewName(d.Focused()))
	}
	if d.Children()[1] != w3 {
		t.Errorf("CmNext should send the current window to the back")
	}

	ev = CommandEvent(CmPrev)
	d.HandleEvent(&ev)
	if d.Focused() != w3 {
		t.Errorf("CmPrev should raise the backmost window")
	}
	_ = w1
}

func TestDesktopTileCascade(t *testing.T) {
	d, w1, w2 := newTestDesktop()
	d.Tile()
	if w1.Bounds() != NewRect(0, 0, 30, 20) || w2.Bounds() != NewRect(30, 0, 60, 20) {
		t.Errorf("tile = %v %v", w1.Bounds(), w2.Bounds())
	}
	d.Cascade()
	if w1.Bounds().A != Pt(0, 0) || w2.Bounds().A != Pt(1, 1) {
		t.Errorf("cascade = %v %v", w1.Bounds(), w2.Bounds())
	}
}

func TestDesktopBackground(t *testing.T) {
	d, w1, _ := newTestDesktop()
	d.Remove(w1)
	s := drawDesktop(d)
	if c := s.Get(3, 3); c.Rune != '░' || c.Attr != AttrFromByte(0x71) {
		t.Errorf("area under a removed window should show the background, got %v", c)
	}
	d.SetBounds(RectAt(0, 0, 40, 10))
	if d.Background().Bounds() != RectAt(0, 0, 40, 10) {
		t.Errorf("background should follow the desktop")
	}
}
