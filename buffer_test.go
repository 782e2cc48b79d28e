package tvision

import "testing"

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(4, 3)
	c := Cell{Rune: 'x', Attr: NewAttr(White, Red)}
	b.Set(-1, 0, c)
	b.Set(4, 0, c)
	b.Set(0, 3, c)
	if b.String() != "\n\n" {
		t.Errorf("out of bounds writes changed the buffer: %q", b.String())
	}
	if got := b.Get(10, 10); got != EmptyCell() {
		t.Errorf("out of bounds read = %v", got)
	}
	if NewBuffer(-3, 2).Width() != 0 {
		t.Error("negative sizes should clamp to zero")
	}
}

func TestBufferDirtyRows(t *testing.T) {
	b := NewBuffer(4, 3)
	b.ClearDirty()
	b.Set(1, 2, Cell{Rune: 'a'})
	for y, want := range []bool{false, false, true} {
		if b.RowDirty(y) != want {
			t.Errorf("row %d dirty = %v, want %v", y, b.RowDirty(y), want)
		}
	}
	if b.RowDirty(7) {
		t.Error("rows outside the buffer are never dirty")
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(0, 0, Cell{Rune: 'a'})
	b.Set(2, 1, Cell{Rune: 'b'})
	b.Resize(2, 3)
	if b.Get(0, 0).Rune != 'a' || b.Get(1, 2) != EmptyCell() {
		t.Errorf("resize should keep what fits:\n%s", b)
	}
	if b.Width() != 2 || b.Height() != 3 || !b.RowDirty(2) {
		t.Errorf("resized buffer %dx%d", b.Width(), b.Height())
	}
}

func TestBufferLine(t *testing.T) {
	b := NewBuffer(6, 1)
	b.Set(0, 0, Cell{Rune: '世'})
	b.Set(1, 0, Cell{Rune: 0})
	b.Set(2, 0, Cell{Rune: 'x'})
	if got := b.Line(0); got != "世x" {
		t.Errorf("Line = %q", got)
	}
	if b.Line(5) != "" {
		t.Error("rows outside the buffer read as empty")
	}
}
