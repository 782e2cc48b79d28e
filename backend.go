package tvision

import "time"

// Backend is a terminal driver: it receives flushed cells and produces
// events.
type Backend interface {
	Terminal

	// Init takes over the terminal.
	Init() error
	// Fini restores the terminal. It is safe to call more than once.
	Fini() error
	// Size returns the terminal size in cells.
	Size() (width, height int)
	// PollEvent waits up to timeout for input. It returns false when the
	// timeout expired. A resize is reported as an EvNothing event with
	// true, after which Size returns the new size.
	PollEvent(timeout time.Duration) (Event, bool)
	// Show makes the cells and cursor sent since the last Show visible.
	Show() error
}

// NewBackend creates the backend named by cfg.Backend.
func NewBackend(cfg Config) (Backend, error) {
	switch cfg.Backend {
	case BackendTerm:
		return NewTermBackend(cfg.Mouse), nil
	default:
		return NewTcellBackend(cfg.Mouse)
	}
}
