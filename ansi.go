package tvision

import (
	"bytes"
	"context"
	"errors"
	"io"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/sethvargo/go-retry"
)

// writeRetries bounds how often a write interrupted by a signal or a full
// non-blocking descriptor is retried.
const writeRetries = 3

// ANSIWriter is a Terminal that encodes cells as ANSI escape sequences.
// Output accumulates until Flush, which sends it in one write.
type ANSIWriter struct {
	out io.Writer
	buf bytes.Buffer

	pos       Point // where the terminal's caret is after the last write
	posKnown  bool
	lastAttr  Attr
	attrKnown bool
}

// NewANSIWriter creates a writer sending to out.
func NewANSIWriter(out io.Writer) *ANSIWriter {
	return &ANSIWriter{out: out}
}

// SetCell implements Terminal.
func (w *ANSIWriter) SetCell(x, y int, c Cell) {
	if !w.posKnown || w.pos != Pt(x, y) {
		w.moveTo(x, y)
	}
	w.writeCell(c)
	w.pos.X += max(1, runewidth.RuneWidth(c.Rune))
}

// SetCursor implements Terminal.
func (w *ANSIWriter) SetCursor(x, y int, visible bool) {
	if !visible {
		w.buf.WriteString("\x1b[?25l")
		return
	}
	w.moveTo(x, y)
	w.buf.WriteString("\x1b[?25h")
}

// WriteString queues raw output, such as mode switches.
func (w *ANSIWriter) WriteString(s string) {
	w.buf.WriteString(s)
	w.posKnown = false
	w.attrKnown = false
}

// Newline ends the current line of a dump.
func (w *ANSIWriter) Newline() {
	w.buf.WriteString("\x1b[0m\n")
	w.pos = Pt(0, w.pos.Y+1)
	w.attrKnown = false
}

func (w *ANSIWriter) moveTo(x, y int) {
	var scratch [32]byte
	b := append(scratch[:0], "\x1b["...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	b = append(b, 'H')
	w.buf.Write(b)
	w.pos = Pt(x, y)
	w.posKnown = true
}

// writeCell writes a cell's attribute, when it changed, and its rune.
func (w *ANSIWriter) writeCell(c Cell) {
	if !w.attrKnown || c.Attr != w.lastAttr {
		w.writeAttr(c.Attr)
		w.lastAttr = c.Attr
		w.attrKnown = true
	}
	r := c.Rune
	if r < ' ' {
		r = ' '
	}
	w.buf.WriteRune(r)
}

func (w *ANSIWriter) writeAttr(a Attr) {
	var scratch [16]byte
	b := append(scratch[:0], "\x1b[0;"...)
	b = appendColor(b, a.Fg, 30)
	b = append(b, ';')
	b = appendColor(b, a.Bg, 40)
	b = append(b, 'm')
	w.buf.Write(b)
}

// appendColor appends the SGR code for c. Bright colors use the 90/100
// range.
func appendColor(b []byte, c Color, base int) []byte {
	code := base + int(c.ANSI()&7)
	if c.Bright() {
		code += 60
	}
	return appendInt(b, code)
}

// appendInt appends the decimal form of a non-negative n.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}

// Pending returns the number of queued bytes.
func (w *ANSIWriter) Pending() int {
	return w.buf.Len()
}

// Flush sends the queued output. Interrupted or would-block writes are
// retried with the unwritten remainder.
func (w *ANSIWriter) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	data := w.buf.Bytes()
	backoff := retry.WithMaxRetries(writeRetries, retry.NewConstant(2*time.Millisecond))
	err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		n, err := w.out.Write(data)
		data = data[n:]
		if err != nil && (errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)) {
			return retry.RetryableError(err)
		}
		return err
	})
	w.buf.Reset()
	if err != nil {
		return newError("flush", KindIO, err)
	}
	return nil
}

// WriteANSI writes region r of b to out as lines of ANSI-colored text.
func WriteANSI(out io.Writer, b *Buffer, r Rect) error {
	r = r.Intersect(b.Rect())
	w := NewANSIWriter(out)
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			c := b.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			w.writeCell(c)
		}
		w.Newline()
	}
	return w.Flush()
}
