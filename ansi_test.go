package tvision

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestANSIWriterCells(t *testing.T) {
	var out bytes.Buffer
	w := NewANSIWriter(&out)
	wb := NewAttr(White, Blue)
	w.SetCell(0, 0, Cell{Rune: 'a', Attr: wb})
	w.SetCell(1, 0, Cell{Rune: 'b', Attr: wb})
	w.SetCell(5, 2, Cell{Rune: 'c', Attr: NewAttr(Yellow, Black)})
	w.SetCell(6, 2, Cell{Rune: '世', Attr: NewAttr(Yellow, Black)})
	w.SetCell(8, 2, Cell{Rune: 'd', Attr: NewAttr(Yellow, Black)})
	w.SetCursor(0, 0, false)
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[1;1H\x1b[0;97;44mab" +
		"\x1b[3;6H\x1b[0;93;40mc世d" +
		"\x1b[?25l"
	if got := out.String(); got != want {
		t.Errorf("output\n got %q\nwant %q", got, want)
	}
	if w.Pending() != 0 {
		t.Errorf("flush should drain the buffer")
	}
}

func TestANSIWriterCursor(t *testing.T) {
	var out bytes.Buffer
	w := NewANSIWriter(&out)
	w.SetCursor(3, 1, true)
	w.WriteString("\x1b[?1049h")
	w.SetCell(4, 1, Cell{Rune: 'x', Attr: NewAttr(Black, LightGray)})
	w.Flush()
	want := "\x1b[2;4H\x1b[?25h\x1b[?1049h\x1b[2;5H\x1b[0;30;47mx"
	if got := out.String(); got != want {
		t.Errorf("output\n got %q\nwant %q", got, want)
	}
}

// flakyWriter fails with errs in order, writing part of the data each time.
type flakyWriter struct {
	bytes.Buffer
	errs  []error
	calls int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.calls++
	if len(f.errs) == 0 {
		return f.Buffer.Write(p)
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	n := min(2, len(p))
	f.Buffer.Write(p[:n])
	return n, err
}

func TestANSIWriterFlushRetries(t *testing.T) {
	f := &flakyWriter{errs: []error{syscall.EINTR, syscall.EAGAIN}}
	w := NewANSIWriter(f)
	w.WriteString("hello world")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if f.String() != "hello world" || f.calls != 3 {
		t.Errorf("wrote %q in %d calls", f.String(), f.calls)
	}
}

func TestANSIWriterFlushErrors(t *testing.T) {
	boom := errors.New("boom")
	f := &flakyWriter{errs: []error{boom}}
	w := NewANSIWriter(f)
	w.WriteString("data")
	err := w.Flush()
	if !IsKind(err, KindIO) || !errors.Is(err, boom) || f.calls != 1 {
		t.Errorf("Flush = %v after %d calls", err, f.calls)
	}

	f = &flakyWriter{errs: []error{syscall.EINTR, syscall.EINTR, syscall.EINTR, syscall.EINTR, syscall.EINTR}}
	w = NewANSIWriter(f)
	w.WriteString(strings.Repeat("x", 20))
	if err := w.Flush(); !IsKind(err, KindIO) {
		t.Errorf("persistent EINTR = %v", err)
	}
	if f.calls != writeRetries+1 {
		t.Errorf("made %d calls, want %d", f.calls, writeRetries+1)
	}
}

func TestWriteANSI(t *testing.T) {
	b := NewBuffer(6, 3)
	b.Fill(Cell{Rune: '.', Attr: NewAttr(LightGray, Black)})
	b.Set(1, 1, Cell{Rune: '世', Attr: NewAttr(White, Red)})
	b.Set(2, 1, Cell{Rune: 0, Attr: NewAttr(White, Red)})

	var out bytes.Buffer
	if err := WriteANSI(&out, b, NewRect(1, 0, 4, 2)); err != nil {
		t.Fatal(err)
	}
	if got, want := ansi.Strip(out.String()), "...\n世.\n"; got != want {
		t.Errorf("stripped = %q, want %q", got, want)
	}
	if strings.Contains(out.String(), "\x1b[1;") {
		t.Errorf("dumps must not position the cursor: %q", out.String())
	}

	out.Reset()
	if err := WriteANSI(&out, b, NewRect(4, 2, 20, 10)); err != nil {
		t.Fatal(err)
	}
	if got := ansi.Strip(out.String()); got != "..\n" {
		t.Errorf("clipped dump = %q", got)
	}
}
