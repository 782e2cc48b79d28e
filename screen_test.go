package tvision

import (
	"math/rand"
	"testing"
)

func TestScreenFlushIdempotent(t *testing.T) {
	s := NewScreen(20, 5)
	term := newRecordTerm()
	first := s.Flush(term)
	if first != 20*5 {
		t.Errorf("first flush emitted %d cells, want a full repaint of 100", first)
	}
	if n := s.Flush(newRecordTerm()); n != 0 {
		t.Errorf("second flush emitted %d cells, want 0", n)
	}

	s.Set(3, 2, NewCell('X', NewAttr(Yellow, Blue)))
	term = newRecordTerm()
	if n := s.Flush(term); n != 1 {
		t.Errorf("single change emitted %d cells, want 1", n)
	}
	if c := term.cells[Pt(3, 2)]; c.Rune != 'X' {
		t.Errorf("emitted %v at (3,2)", c)
	}
	if n := s.Flush(newRecordTerm()); n != 0 {
		t.Errorf("flush after flush emitted %d cells", n)
	}

	t.Run("rewriting the same content emits nothing", func(t *testing.T) {
		s.Set(3, 2, NewCell('X', NewAttr(Yellow, Blue)))
		if n := s.Flush(newRecordTerm()); n != 0 {
			t.Errorf("identical redraw emitted %d cells", n)
		}
	})

	t.Run("invalidate repaints", func(t *testing.T) {
		s.Invalidate()
		if n := s.Flush(newRecordTerm()); n != 100 {
			t.Errorf("invalidated flush emitted %d cells, want 100", n)
		}
	})
}

func TestScreenFlushCursor(t *testing.T) {
	s := NewScreen(10, 3)
	term := newRecordTerm()
	s.Flush(term)
	if len(term.cursor) != 1 || term.cursor[0].Visible {
		t.Fatalf("first flush should hide the cursor, got %v", term.cursor)
	}
	s.SetCursor(Pt(4, 1), true)
	term = newRecordTerm()
	s.Flush(term)
	if len(term.cursor) != 1 || term.cursor[0] != (Cursor{Pos: Pt(4, 1), Visible: true}) {
		t.Errorf("cursor = %v", term.cursor)
	}
	term = newRecordTerm()
	s.Flush(term)
	if len(term.cursor) != 0 {
		t.Errorf("unchanged cursor should not be re-sent")
	}
}

func TestScreenClipContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := NewScreen(30, 12)
		var clips []Rect
		depth := 1 + rng.Intn(3)
		for j := 0; j < depth; j++ {
			r := RectAt(rng.Intn(34)-2, rng.Intn(16)-2, rng.Intn(20), rng.Intn(10))
			s.PushClip(r)
			clips = append(clips, r)
		}
		eff := s.Rect()
		for _, r := range clips {
			eff = eff.Intersect(r)
		}
		for y := -2; y < 14; y++ {
			for x := -2; x < 32; x++ {
				s.Set(x, y, NewCell('#', NewAttr(White, Red)))
			}
		}
		for y := 0; y < 12; y++ {
			for x := 0; x < 30; x++ {
				inside := eff.Contains(Pt(x, y))
				if got := s.Get(x, y).Rune == '#'; got != inside {
					t.Fatalf("clips %v: cell (%d,%d) written=%v, inside=%v", clips, x, y, got, inside)
				}
			}
		}
		for range clips {
			s.PopClip()
		}
		if s.ClipDepth() != 0 {
			t.Fatalf("depth = %d after popping", s.ClipDepth())
		}
	}
}

func TestScreenClipPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}
	s := NewScreen(5, 5)
	mustPanic("PopClip", s.PopClip)
	s.PushClip(RectAt(0, 0, 2, 2))
	mustPanic("Flush", func() { s.Flush(newRecordTerm()) })
	mustPanic("Resize", func() { s.Resize(3, 3) })
}

func TestScreenWideRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.Flush(newRecordTerm())
	c := NewCanvas(s, AppColor)
	c.WriteString(0, 0, "日本", NewAttr(White, Black))
	term := newRecordTerm()
	if n := s.Flush(term); n != 2 {
		t.Errorf("wide runes emitted %d cells, want 2", n)
	}
	if got := s.Back().Line(0); got != "日本" {
		t.Errorf("line = %q", got)
	}
}

func TestScreenInvert(t *testing.T) {
	s := NewScreen(4, 1)
	a := NewAttr(Yellow, Blue)
	s.Set(1, 0, NewCell('x', a))
	s.Invert(RectAt(1, 0, 10, 1))
	if got := s.Get(1, 0).Attr; got != a.Inverse() {
		t.Errorf("attr = %v, want %v", got, a.Inverse())
	}
}
