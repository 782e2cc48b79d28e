package tvision

import (
	"errors"
	"io"
	"testing"
)

func TestError(t *testing.T) {
	err := newError("dump", KindIO, io.ErrShortWrite)
	if got, want := err.Error(), "dump: I/O error: short write"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("should unwrap to the cause")
	}
	if !IsKind(err, KindIO) || IsKind(err, KindConfig) {
		t.Error("IsKind mismatch")
	}
	if IsKind(io.EOF, KindIO) {
		t.Error("plain errors have no kind")
	}
	if newError("x", KindIO, nil) != nil {
		t.Error("nil cause should stay nil")
	}
	e := &Error{Kind: KindTerminal, Err: ErrNotTerminal}
	if got := e.Error(); got != "terminal error: not a terminal" {
		t.Errorf("Error() without op = %q", got)
	}
	if Kind(99).String() != "unknown error" {
		t.Errorf("unexpected kind string %q", Kind(99))
	}
}
