package main

import (
	"fmt"

	tv "github.com/kungfusheep/tvision"
)

const (
	cmNewWindow tv.CommandID = 1000 + iota
	cmOpenDialog
	cmToggle
	cmAbout
)

const nameHistory = 1

type demo struct {
	p       *tv.Program
	windows int
}

func newDemo(p *tv.Program) *demo {
	return &demo{p: p}
}

func (d *demo) install() {
	d.p.SetStatusItems(append([]tv.StatusItem{
		{Text: "~Alt-X~ Exit", Key: tv.RuneKey('x', tv.ModAlt), Command: tv.CmQuit},
		{Text: "~F3~ New", Key: tv.KeyEvent{Code: tv.KeyF3}, Command: cmNewWindow},
		{Text: "~F4~ Dialog", Key: tv.KeyEvent{Code: tv.KeyF4}, Command: cmOpenDialog},
		{Text: "~F2~ Lock New", Key: tv.KeyEvent{Code: tv.KeyF2}, Command: cmToggle},
		{Text: "~F1~ About", Key: tv.KeyEvent{Code: tv.KeyF1}, Command: cmAbout},
		{Key: tv.KeyEvent{Code: tv.KeyF9}, Command: tv.CmTile},
		{Key: tv.KeyEvent{Code: tv.KeyF10}, Command: tv.CmCascade},
	}, tv.DefaultStatusItems[1:]...)...)

	d.p.Handle(cmNewWindow, d.newWindow).
		Handle(cmOpenDialog, d.openDialog).
		Handle(cmToggle, d.toggle).
		Handle(cmAbout, func() {
			tv.MessageBox(d.p, "\x03Turbo Vision style desktop\n\n\x03F12 dumps the screen, Shift-F12 the window.", tv.MsgInformation|tv.MsgOK)
		})

	d.newWindow()
	d.newWindow()
	if tv.DebugTiming {
		d.timingWindow()
	}
}

// timingWindow shows the last draw and flush durations, refreshed when idle.
func (d *demo) timingWindow() {
	w := tv.NewWindow(tv.RectAt(44, 1, 32, 3), "Timing", 0)
	txt := tv.NewStaticText(w.Interior(), tv.TimingString())
	w.Insert(txt)
	d.p.Desktop().Insert(w)
	d.p.OnIdle(func() {
		if s := tv.TimingString(); s != txt.Text() {
			txt.SetText(s)
		}
	})
}

func (d *demo) newWindow() {
	d.windows++
	n := d.windows
	off := (n - 1) % 8 * 2
	w := tv.NewWindow(tv.RectAt(2+off, 1+off, 40, 12), fmt.Sprintf("Window %d", n), n%10)
	w.Insert(tv.NewStaticText(w.Interior().Grow(-1, 0),
		"Drag the title bar to move, the corner to resize. "+
			"F5 zooms, F6 cycles windows, Alt-F3 closes."))
	d.p.Desktop().Insert(w)
}

func (d *demo) openDialog() {
	dlg := tv.NewDialog(tv.RectAt(0, 0, 46, 11), "Greeting")
	dlg.SetOptions(tv.OptCentered, true)

	name := tv.NewInputLine(tv.RectAt(12, 2, 30, 1), 40)
	name.SetHistory(nameHistory)
	name.SetValidators(tv.VRequired, tv.VMaxLen(30))
	dlg.Insert(name)
	dlg.Insert(tv.NewLabel(tv.RectAt(2, 2, 9, 1), "~N~ame", name))

	town := tv.NewInputLine(tv.RectAt(12, 4, 30, 1), 40)
	dlg.Insert(town)
	dlg.Insert(tv.NewLabel(tv.RectAt(2, 4, 9, 1), "~T~own", town))

	dlg.Insert(tv.NewButton(tv.RectAt(10, 7, 12, 2), "O~K~", tv.CmOK, tv.ButtonDefault))
	dlg.Insert(tv.NewButton(tv.RectAt(24, 7, 12, 2), "Cancel", tv.CmCancel, 0))
	dlg.Focus(name)

	if d.p.ExecView(dlg) != tv.CmOK {
		return
	}
	msg := fmt.Sprintf("\x03Hello, %s from %s!", orDefault(name.Text(), "stranger"), orDefault(town.Text(), "nowhere"))
	tv.MessageBox(d.p, msg, tv.MsgInformation|tv.MsgOK)
}

func (d *demo) toggle() {
	if tv.CommandEnabled(cmNewWindow) {
		tv.DisableCommand(cmNewWindow)
	} else {
		tv.EnableCommand(cmNewWindow)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
