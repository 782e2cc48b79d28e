package tvision

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend drives the terminal through tcell.
type TcellBackend struct {
	screen tcell.Screen
	mouse  bool

	events  chan tcell.Event
	quit    chan struct{}
	once    sync.Once
	buttons ButtonMask
}

// NewTcellBackend creates a backend for the controlling terminal.
func NewTcellBackend(mouse bool) (*TcellBackend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, newError("tcell.NewScreen", KindTerminal, err)
	}
	return NewTcellBackendWith(s, mouse), nil
}

// NewTcellBackendWith wraps an existing tcell screen, such as a
// simulation screen.
func NewTcellBackendWith(s tcell.Screen, mouse bool) *TcellBackend {
	return &TcellBackend{
		screen: s,
		mouse:  mouse,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// Screen returns the underlying tcell screen.
func (b *TcellBackend) Screen() tcell.Screen {
	return b.screen
}

func (b *TcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return newError("tcell.Init", KindTerminal, err)
	}
	if b.mouse {
		b.screen.EnableMouse()
	}
	b.screen.HideCursor()
	go b.pump()
	return nil
}

// pump forwards tcell events until the screen is finalized.
func (b *TcellBackend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

func (b *TcellBackend) Fini() error {
	b.once.Do(func() {
		close(b.quit)
		b.screen.Fini()
	})
	return nil
}

func (b *TcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *TcellBackend) PollEvent(timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-b.events:
			if e, ok := b.translate(ev); ok {
				return e, true
			}
		case <-timer.C:
			return Event{}, false
		}
	}
}

// translate converts a tcell event. It returns false for events with no
// counterpart.
func (b *TcellBackend) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := tcellKey(ev)
		return KeyPress(k), ok
	case *tcell.EventMouse:
		return b.mouseEvent(ev), true
	case *tcell.EventResize:
		b.screen.Sync()
		return Event{}, true
	}
	return Event{}, false
}

func tcellMods(m tcell.ModMask) ModMask {
	var mod ModMask
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	return mod
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBackTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func tcellKey(ev *tcell.EventKey) (KeyEvent, bool) {
	mod := tcellMods(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune(), mod&^ModShift), true
	}
	if code, ok := tcellKeys[ev.Key()]; ok {
		if code == KeyBackTab {
			mod &^= ModShift
		}
		if code == KeyEnter || code == KeyTab || code == KeyBackspace || code == KeyEscape {
			mod &^= ModCtrl
		}
		return KeyEvent{Code: code, Mod: mod}, true
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return RuneKey(rune('a'+k-tcell.KeyCtrlA), ModCtrl|mod&ModAlt), true
	}
	return KeyEvent{}, false
}

func (b *TcellBackend) mouseEvent(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btn := ev.Buttons()
	var e Event
	switch {
	case btn&tcell.WheelUp != 0:
		e = MouseAt(EvMouseWheelUp, Pt(x, y), b.buttons)
	case btn&tcell.WheelDown != 0:
		e = MouseAt(EvMouseWheelDown, Pt(x, y), b.buttons)
	default:
		var now ButtonMask
		if btn&tcell.Button1 != 0 {
			now |= ButtonLeft
		}
		if btn&tcell.Button2 != 0 {
			now |= ButtonRight
		}
		if btn&tcell.Button3 != 0 {
			now |= ButtonMiddle
		}
		what := EvMouseMove
		switch {
		case b.buttons == 0 && now != 0:
			what = EvMouseDown
		case b.buttons != 0 && now == 0:
			what = EvMouseUp
			now, b.buttons = b.buttons, 0
			e = MouseAt(what, Pt(x, y), now)
			e.Mouse.Mod = tcellMods(ev.Modifiers())
			return e
		}
		b.buttons = now
		e = MouseAt(what, Pt(x, y), now)
	}
	e.Mouse.Mod = tcellMods(ev.Modifiers())
	return e
}

func (b *TcellBackend) SetCell(x, y int, c Cell) {
	if c.Rune == 0 {
		return
	}
	b.screen.SetContent(x, y, c.Rune, nil, tcellStyle(c.Attr))
}

func (b *TcellBackend) SetCursor(x, y int, visible bool) {
	if visible {
		b.screen.ShowCursor(x, y)
		return
	}
	b.screen.HideCursor()
}

func (b *TcellBackend) Show() error {
	select {
	case <-b.quit:
		return ErrClosed
	default:
	}
	b.screen.Show()
	return nil
}

// tcellStyle maps an attribute onto tcell's 16-color palette.
func tcellStyle(a Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(a.Fg.ANSI()))).
		Background(tcell.PaletteColor(int(a.Bg.ANSI())))
}
