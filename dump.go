package tvision

import (
	"fmt"
	"os"
	"path/filepath"
)

// debugKey handles the dump shortcuts: F12 dumps the screen, Shift-F12 the
// focused window. It reports whether e was one of them.
func (p *Program) debugKey(e *Event) bool {
	if e.What != EvKeyDown || e.Key.Code != KeyF12 {
		return false
	}
	switch e.Key.Mod {
	case 0:
		p.Dump(p.screen.Rect())
	case ModShift:
		p.Dump(p.focusedWindowRect())
	default:
		return false
	}
	return true
}

// focusedWindowRect returns the focused desktop window in screen
// coordinates, or the desktop when no window is focused.
func (p *Program) focusedWindowRect() Rect {
	origin := p.desktop.Bounds().A
	if f := p.desktop.Focused(); f != nil {
		return f.Bounds().Move(origin.X, origin.Y)
	}
	return p.desktop.Bounds()
}

// Dump writes region r of the screen as ANSI text into the dump directory
// and briefly inverts r as feedback. It returns the file written. Failures
// are logged; the UI carries on either way.
func (p *Program) Dump(r Rect) (string, error) {
	path, err := p.writeDump(r)
	if err != nil {
		logger.Warn("screen dump failed", "err", err)
	} else {
		logger.Info("screen dump", "path", path, "region", r)
	}
	p.flash(r)
	return path, err
}

func (p *Program) writeDump(r Rect) (string, error) {
	name := fmt.Sprintf("tvision-%s.ans", p.now().Format("20060102-150405.000"))
	path := filepath.Join(p.cfg.DumpDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", newError("dump", KindIO, err)
	}
	if err := WriteANSI(f, p.screen.Back(), r); err != nil {
		f.Close()
		return "", newError("dump", KindIO, err)
	}
	if err := f.Close(); err != nil {
		return "", newError("dump", KindIO, err)
	}
	return path, nil
}

// flash shows r inverted for the configured duration. The next redraw
// restores it.
func (p *Program) flash(r Rect) {
	p.screen.Invert(r)
	p.flush()
	p.sleep(p.cfg.FlashDuration)
}
