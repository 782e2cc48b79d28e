//go:build !linux && !darwin

package tvision

import "time"

// TermBackend is unavailable on this platform; Init always fails.
type TermBackend struct{}

// NewTermBackend creates a backend whose Init reports ErrNotTerminal.
func NewTermBackend(mouse bool) *TermBackend {
	return &TermBackend{}
}

func (b *TermBackend) Init() error {
	return newError("term.Init", KindTerminal, ErrNotTerminal)
}

func (b *TermBackend) Fini() error                           { return nil }
func (b *TermBackend) Size() (int, int)                      { return 80, 24 }
func (b *TermBackend) PollEvent(time.Duration) (Event, bool) { return Event{}, false }
func (b *TermBackend) SetCell(x, y int, c Cell)              {}
func (b *TermBackend) SetCursor(x, y int, visible bool)      {}
func (b *TermBackend) Show() error                           { return nil }
