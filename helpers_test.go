package tvision

import (
	"testing"
	"time"
)

// step is one scripted poll result.
type step struct {
	ev     Event
	ok     bool
	resize Point
	do     func()
}

func input(ev Event) step      { return step{ev: ev, ok: true} }
func press(k KeyEvent) step    { return input(KeyPress(k)) }
func pressKey(code Key) step   { return press(KeyEvent{Code: code}) }
func idleStep() step           { return step{} }
func resizeStep(w, h int) step { return step{ok: true, resize: Pt(w, h)} }
func doStep(fn func()) step    { return step{do: fn} }
func click(what EventType, x, y int) step {
	return input(MouseAt(what, Pt(x, y), ButtonLeft))
}

// scriptBackend replays steps and records what the screen shows.
type scriptBackend struct {
	t             *testing.T
	width, height int
	steps         []step
	shown         *Buffer
	cursor        Cursor
	shows         int
	inited        bool
	finied        bool
	exhausted     int
}

func newScriptBackend(t *testing.T, w, h int, steps ...step) *scriptBackend {
	return &scriptBackend{t: t, width: w, height: h, steps: steps, shown: NewBuffer(w, h)}
}

func (b *scriptBackend) Init() error      { b.inited = true; return nil }
func (b *scriptBackend) Fini() error      { b.finied = true; return nil }
func (b *scriptBackend) Size() (int, int) { return b.width, b.height }
func (b *scriptBackend) Show() error      { b.shows++; return nil }
func (b *scriptBackend) SetCell(x, y int, c Cell) {
	b.shown.Set(x, y, c)
}

func (b *scriptBackend) SetCursor(x, y int, visible bool) {
	b.cursor = Cursor{Pos: Pt(x, y), Visible: visible}
}

func (b *scriptBackend) PollEvent(time.Duration) (Event, bool) {
	if len(b.steps) == 0 {
		b.exhausted++
		if b.exhausted > 100 {
			b.t.Fatal("script exhausted without ending the loop")
		}
		return KeyPress(RuneKey('x', ModAlt)), true
	}
	s := b.steps[0]
	b.steps = b.steps[1:]
	if s.do != nil {
		s.do()
		return Event{}, false
	}
	if s.resize != (Point{}) {
		b.width, b.height = s.resize.X, s.resize.Y
		b.shown.Resize(b.width, b.height)
	}
	return s.ev, s.ok
}

// newTestProgram builds a program over a scripted backend with a fresh
// command set.
func newTestProgram(t *testing.T, w, h int, steps ...step) (*Program, *scriptBackend) {
	t.Helper()
	resetCommands()
	t.Cleanup(resetCommands)
	b := newScriptBackend(t, w, h, steps...)
	cfg := DefaultConfig()
	cfg.DumpDir = t.TempDir()
	cfg.FlashDuration = 0
	p, err := NewProgram(b, cfg)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	p.sleep = func(time.Duration) {}
	return p, b
}

// recorder is a focusable view recording what it receives.
type recorder struct {
	ViewBase
	name   string
	events []Event
	// consume, when set, clears matching events.
	consume func(*Event) bool
	// rewrite, when set, turns a received event into a command.
	rewrite CommandID
}

func newRecorder(name string, bounds Rect, selectable bool) *recorder {
	p := &recorder{ViewBase: NewViewBase(bounds), name: name}
	p.SetOptions(OptSelectable, selectable)
	return p
}

func (p *recorder) HandleEvent(ev *Event) {
	p.events = append(p.events, *ev)
	if p.rewrite != 0 {
		ev.ToCommand(p.rewrite)
		return
	}
	if p.consume != nil && p.consume(ev) {
		ev.Clear()
	}
}

func (p *recorder) Draw(c *Canvas) {
	c.Fill(p.bounds.Local(), []rune(p.name)[0], NewAttr(White, Blue))
}

func (p *recorder) count(what EventType) int {
	n := 0
	for _, e := range p.events {
		if e.What == what {
			n++
		}
	}
	return n
}

// recordTerm is a Terminal that records every emitted cell.
type recordTerm struct {
	cells  map[Point]Cell
	sets   int
	cursor []Cursor
}

func newRecordTerm() *recordTerm {
	return &recordTerm{cells: map[Point]Cell{}}
}

func (r *recordTerm) SetCell(x, y int, c Cell) {
	r.cells[Pt(x, y)] = c
	r.sets++
}

func (r *recordTerm) SetCursor(x, y int, visible bool) {
	r.cursor = append(r.cursor, Cursor{Pos: Pt(x, y), Visible: visible})
}

// focusInvariant checks that exactly the indexed child carries the focus flag.
func focusInvariant(t *testing.T, g *Group) {
	t.Helper()
	for i, c := range g.Children() {
		if c.IsFocused() != (i == g.FocusedIndex()) {
			t.Fatalf("child %d focus flag %v, group focus index %d", i, c.IsFocused(), g.FocusedIndex())
		}
	}
	if f := g.Focused(); f != nil && !f.CanFocus() {
		t.Fatalf("focused child %d cannot take focus", g.FocusedIndex())
	}
}
