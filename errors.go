package tvision

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "type.method".
type Op string

// Kind categorizes a fatal error.
type Kind int

const (
	KindUnknown Kind = iota
	KindTerminal
	KindIO
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal error"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is returned for failures the engine cannot recover from, such as a
// terminal that cannot be opened or restored. Routing and drawing never
// produce errors.
type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err with an operation and kind; nil stays nil.
func newError(op Op, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

var (
	// ErrNotTerminal is returned when the terminal backend is given a
	// non-terminal file descriptor.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrClosed is returned by Show on a backend used after Fini.
	ErrClosed = errors.New("backend closed")
)
