//go:build linux || darwin

package tvision

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// escDelay is how long a lone ESC waits for the rest of a sequence.
const escDelay = 25 * time.Millisecond

// TermBackend drives an ANSI terminal directly: raw mode through termios,
// output through an ANSIWriter and input through the escape decoder.
type TermBackend struct {
	in  *os.File
	out *os.File
	fd  int

	origTermios *unix.Termios
	w           *ANSIWriter
	dec         decoder
	mouse       bool

	input   chan []byte
	sigChan chan os.Signal
	quit    chan struct{}
	once    sync.Once

	width, height int
}

// NewTermBackend creates a backend on stdin and stdout.
func NewTermBackend(mouse bool) *TermBackend {
	return &TermBackend{
		in:      os.Stdin,
		out:     os.Stdout,
		fd:      int(os.Stdin.Fd()),
		w:       NewANSIWriter(os.Stdout),
		mouse:   mouse,
		input:   make(chan []byte, 16),
		sigChan: make(chan os.Signal, 1),
		quit:    make(chan struct{}),
	}
}

// getTerminalSize returns the terminal dimensions of fd.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}
	return term.GetSize(fd)
}

func (b *TermBackend) Init() error {
	if !term.IsTerminal(b.fd) {
		return newError("term.Init", KindTerminal, ErrNotTerminal)
	}
	termios, err := unix.IoctlGetTermios(b.fd, ioctlGetTermios)
	if err != nil {
		return newError("term.Init", KindTerminal, err)
	}
	b.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(b.fd, ioctlSetTermios, &raw); err != nil {
		return newError("term.Init", KindTerminal, err)
	}

	b.width, b.height, err = getTerminalSize(b.fd)
	if err != nil {
		b.width, b.height = 80, 24
	}
	// alternate screen, cleared, caret hidden
	b.w.WriteString("\x1b[?1049h\x1b[2J\x1b[?25l")
	if b.mouse {
		b.w.WriteString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	}
	signal.Notify(b.sigChan, syscall.SIGWINCH)
	go b.read()
	return b.w.Flush()
}

// read forwards stdin chunks until the backend is finalized.
func (b *TermBackend) read() {
	for {
		buf := make([]byte, 256)
		n, err := b.in.Read(buf)
		if err != nil {
			logger.Debug("terminal read stopped", "err", err)
			return
		}
		select {
		case b.input <- buf[:n]:
		case <-b.quit:
			return
		}
	}
}

func (b *TermBackend) Fini() error {
	var err error
	b.once.Do(func() {
		close(b.quit)
		signal.Stop(b.sigChan)
		if b.mouse {
			b.w.WriteString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
		}
		b.w.WriteString("\x1b[0m\x1b[?25h\x1b[?1049l")
		err = b.w.Flush()
		if b.origTermios != nil {
			if e := unix.IoctlSetTermios(b.fd, ioctlSetTermios, b.origTermios); e != nil && err == nil {
				err = newError("term.Fini", KindTerminal, e)
			}
		}
	})
	return err
}

func (b *TermBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *TermBackend) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := b.dec.Next(); ok {
		return ev, true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		wait := timer.C
		var esc <-chan time.Time
		if b.dec.Pending() {
			esc = time.After(escDelay)
		}
		select {
		case chunk := <-b.input:
			b.dec.Feed(chunk)
			if ev, ok := b.dec.Next(); ok {
				return ev, true
			}
		case <-esc:
			if ev, ok := b.dec.Flush(); ok {
				return ev, true
			}
		case <-b.sigChan:
			if w, h, err := getTerminalSize(b.fd); err == nil && (w != b.width || h != b.height) {
				b.width, b.height = w, h
				b.w.WriteString("\x1b[2J")
				return Event{}, true
			}
		case <-wait:
			return Event{}, false
		}
	}
}

func (b *TermBackend) SetCell(x, y int, c Cell) {
	if c.Rune == 0 {
		return
	}
	b.w.SetCell(x, y, c)
}

func (b *TermBackend) SetCursor(x, y int, visible bool) {
	b.w.SetCursor(x, y, visible)
}

func (b *TermBackend) Show() error {
	select {
	case <-b.quit:
		return ErrClosed
	default:
	}
	return b.w.Flush()
}
