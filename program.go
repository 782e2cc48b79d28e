package tvision

import (
	"fmt"
	"time"
)

// Debug timing
var (
	DebugTiming   bool
	lastDrawTime  time.Duration
	lastFlushTime time.Duration
)

// TimingString returns the duration of the last draw and flush.
func TimingString() string {
	return fmt.Sprintf("draw:%v flush:%v",
		lastDrawTime.Round(time.Microsecond),
		lastFlushTime.Round(time.Microsecond))
}

// DefaultStatusItems are the bindings of a new Program's status line.
var DefaultStatusItems = []StatusItem{
	{Text: "~Alt-X~ Exit", Key: RuneKey('x', ModAlt), Command: CmQuit},
	{Key: KeyEvent{Code: KeyF3, Mod: ModAlt}, Command: CmClose},
	{Key: KeyEvent{Code: KeyF5}, Command: CmZoom},
	{Key: KeyEvent{Code: KeyF6}, Command: CmNext},
	{Key: KeyEvent{Code: KeyF6, Mod: ModShift}, Command: CmPrev},
}

// Program is the root view: a desktop above a status line, bound to a
// backend. It is also the event source of every modal loop: GetEvent
// redraws, polls the backend and runs idle work.
type Program struct {
	Group

	cfg     Config
	backend Backend
	screen  *Screen
	palette AppPalette
	desktop *Desktop
	status  *StatusLine

	pending  []Event
	handlers map[CommandID]func()
	idle     []func()

	lastDown        time.Time
	lastDownAt      Point
	lastDownButtons ButtonMask
	held            bool
	heldAt          Point
	heldButtons     ButtonMask

	now   func() time.Time
	sleep func(time.Duration)
}

// NewProgram initializes b and builds the view tree.
func NewProgram(b Backend, cfg Config) (*Program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError("program.New", KindConfig, err)
	}
	if err := b.Init(); err != nil {
		return nil, err
	}
	w, h := b.Size()
	p := &Program{
		cfg:      cfg,
		backend:  b,
		screen:   NewScreen(w, h),
		palette:  cfg.Palette(),
		handlers: map[CommandID]func(){},
		now:      time.Now,
		sleep:    time.Sleep,
	}
	p.Group.init(NewRect(0, 0, w, h))
	p.SetOptions(OptSelectable|OptPassTab, true)
	p.desktop = NewDesktop(NewRect(0, 0, w, h-1))
	p.status = NewStatusLine(NewRect(0, h-1, w, h), DefaultStatusItems...)
	p.Insert(p.desktop)
	p.Insert(p.status)
	logger.Info("program started", "backend", cfg.Backend, "width", w, "height", h)
	return p, nil
}

// Desktop returns the desktop.
func (p *Program) Desktop() *Desktop {
	return p.desktop
}

// StatusLine returns the status line.
func (p *Program) StatusLine() *StatusLine {
	return p.status
}

// SetStatusItems replaces the status line bindings.
func (p *Program) SetStatusItems(items ...StatusItem) {
	p.status.items = items
}

// Screen returns the render target.
func (p *Program) Screen() *Screen {
	return p.screen
}

// Config returns the validated configuration.
func (p *Program) Config() Config {
	return p.cfg
}

// Handle registers fn for cmd. It runs when cmd reaches the program
// unconsumed and enabled.
func (p *Program) Handle(cmd CommandID, fn func()) *Program {
	p.handlers[cmd] = fn
	return p
}

// OnIdle registers fn to run whenever an input poll times out.
func (p *Program) OnIdle(fn func()) *Program {
	p.idle = append(p.idle, fn)
	return p
}

// PutEvent queues ev; it is returned by the next GetEvent.
func (p *Program) PutEvent(ev Event) {
	p.pending = append(p.pending, ev)
}

// Run executes the program until CmQuit, then restores the terminal.
func (p *Program) Run() error {
	cmd := Execute(p, p)
	logger.Info("program finished", "end", cmd)
	return p.Close()
}

// Close restores the terminal.
func (p *Program) Close() error {
	return p.backend.Fini()
}

// ExecView shows v on the desktop and runs it modally. v is removed when
// its loop ends.
func (p *Program) ExecView(v View) CommandID {
	p.desktop.Insert(v)
	defer p.desktop.Remove(v)
	return Execute(v, modalSource{p})
}

// modalSource feeds a view executing on the desktop, translating mouse
// positions into desktop coordinates.
type modalSource struct {
	p *Program
}

func (s modalSource) GetEvent(ev *Event) {
	s.p.GetEvent(ev)
	if ev.IsMouse() {
		ev.Mouse.Pos = ev.Mouse.Pos.Sub(s.p.desktop.Bounds().A)
	}
}

// HandleEvent routes ev, then runs registered command handlers. The
// program loop ends only on CmQuit; dialog results that reach it
// unconsumed are dropped.
func (p *Program) HandleEvent(ev *Event) {
	p.Route(ev)
	p.validateFocus()
	if ev.What != EvCommand {
		return
	}
	if fn, ok := p.handlers[ev.Command]; ok && CommandEnabled(ev.Command) {
		ev.Clear()
		fn()
		return
	}
	if ev.Command == CmQuit {
		p.EndModal(CmQuit)
		ev.Clear()
	}
}

// GetEvent implements EventSource. Queued events come first; otherwise the
// screen is redrawn and the backend polled. When the poll times out, idle
// work runs and ev is left empty, or set to EvMouseAuto while a button is
// held.
func (p *Program) GetEvent(ev *Event) {
	if len(p.pending) > 0 {
		*ev = p.pending[0]
		p.pending = p.pending[1:]
		return
	}
	p.Redraw()
	e, ok := p.backend.PollEvent(p.cfg.IdleInterval)
	if !ok {
		p.Idle()
		*ev = Event{}
		if p.held {
			*ev = MouseAt(EvMouseAuto, p.heldAt, p.heldButtons)
		}
		return
	}
	p.checkSize()
	p.track(&e)
	if p.debugKey(&e) {
		*ev = Event{}
		return
	}
	if e.What == EvKeyDown || e.What == EvMouseDown && p.status.Bounds().Contains(e.Mouse.Pos) {
		p.status.HandleEvent(&e)
	}
	*ev = e
}

// Idle runs idle work: registered idle functions, then a
// CmCommandSetChanged broadcast through the whole tree when the command
// set changed since the last check.
func (p *Program) Idle() {
	for _, fn := range p.idle {
		fn()
	}
	if Commands().TakeChanged() {
		b := BroadcastEvent(CmCommandSetChanged, nil)
		p.Broadcast(&b)
	}
}

// Redraw paints the whole tree and flushes the difference.
func (p *Program) Redraw() {
	var t0 time.Time
	if DebugTiming {
		t0 = time.Now()
	}
	p.screen.HideCursor()
	c := NewCanvas(p.screen, p.palette)
	c.DrawView(p, true)
	if DebugTiming {
		lastDrawTime = time.Since(t0)
		t0 = time.Now()
	}
	p.flush()
	if DebugTiming {
		lastFlushTime = time.Since(t0)
	}
}

func (p *Program) flush() {
	p.screen.Flush(p.backend)
	if err := p.backend.Show(); err != nil {
		logger.Warn("show failed", "err", err)
	}
}

// checkSize follows a terminal resize.
func (p *Program) checkSize() {
	w, h := p.backend.Size()
	if w == p.screen.Width() && h == p.screen.Height() {
		return
	}
	logger.Debug("terminal resized", "width", w, "height", h)
	p.screen.Resize(w, h)
	p.SetBounds(NewRect(0, 0, w, h))
	p.desktop.SetBounds(NewRect(0, 0, w, h-1))
	p.status.SetBounds(NewRect(0, h-1, w, h))
}

// track detects double clicks and remembers held buttons for EvMouseAuto.
func (p *Program) track(e *Event) {
	switch e.What {
	case EvMouseDown:
		now := p.now()
		m := &e.Mouse
		if m.Pos == p.lastDownAt && m.Buttons == p.lastDownButtons && now.Sub(p.lastDown) <= p.cfg.DoubleClick {
			m.Double = true
			p.lastDown = time.Time{}
		} else {
			p.lastDown = now
		}
		p.lastDownAt, p.lastDownButtons = m.Pos, m.Buttons
		p.held, p.heldAt, p.heldButtons = true, m.Pos, m.Buttons
	case EvMouseMove:
		p.heldAt = e.Mouse.Pos
	case EvMouseUp:
		p.held = false
	}
}
