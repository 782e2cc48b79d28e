package tvision

// HotKeyed views react to Alt+letter while unfocused, or to the bare letter
// when the focused control left it unused and is not a text field. The
// owning dialog calls Activate instead of delivering the key, so the view
// never sees keyboard input it does not own.
type HotKeyed interface {
	HotKey() rune
	Activate(ev *Event)
}

// Dialog is a gray, non-resizable window. Esc cancels it and Enter
// presses the default button.
type Dialog struct {
	Window
}

// NewDialog creates a dialog. A dialog is usually run with Program.ExecView.
func NewDialog(bounds Rect, title string) *Dialog {
	d := &Dialog{}
	d.initWindow(bounds, title, 0, WinMove|WinClose)
	d.SetContainerPalette(GrayDialogPalette)
	return d
}

// HandleEvent routes to the controls, then applies the dialog keys to
// whatever they left.
func (d *Dialog) HandleEvent(ev *Event) {
	d.Window.HandleEvent(ev)
	if ev.What == EvKeyDown {
		switch {
		case ev.Key.Is(KeyEscape, 0):
			ev.ToCommand(CmCancel)
		case ev.Key.Is(KeyEnter, 0):
			*ev = BroadcastEvent(CmDefault, nil)
			d.Broadcast(ev)
			if ev.What == EvBroadcast {
				ev.Clear()
			}
		case ev.Key.Mod == ModAlt && ev.Key.Code == KeyRune:
			d.activateHotKey(ev, ModAlt)
		case ev.Key.Mod == 0 && ev.Key.Code == KeyRune && !d.typing():
			d.activateHotKey(ev, 0)
		}
	}
	if ev.What != EvCommand {
		return
	}
	accept := ev.Command == CmOK && d.state&StateModal != 0
	d.handleCommand(ev)
	if accept && d.endState == CmOK {
		rec := BroadcastEvent(CmRecordHistory, d)
		d.Broadcast(&rec)
	}
	if ev.What == EvCommand && ev.Command == CmCancel && d.state&StateModal == 0 {
		ev.ToCommand(CmClose)
	}
}

// typing reports whether the focused control is a text field, which owns
// bare letters.
func (d *Dialog) typing() bool {
	_, ok := d.Focused().(*InputLine)
	return ok
}

func (d *Dialog) activateHotKey(ev *Event, mod ModMask) {
	for _, c := range d.children {
		h, ok := c.(HotKeyed)
		if !ok || !visible(c) || c.State()&StateDisabled != 0 {
			continue
		}
		if r := h.HotKey(); r != 0 && ev.Key.IsRune(r, mod) {
			h.Activate(ev)
			return
		}
	}
}

// Execute runs the dialog modally.
func (d *Dialog) Execute(src EventSource) CommandID {
	return Execute(d, src)
}
