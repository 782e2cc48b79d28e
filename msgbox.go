package tvision

// MsgFlags select the title and the buttons of a message box.
type MsgFlags uint16

// Message kinds.
const (
	MsgWarning MsgFlags = iota
	MsgError
	MsgInformation
	MsgConfirmation
)

// Message box buttons.
const (
	MsgYes MsgFlags = 0x100 << iota
	MsgNo
	MsgOK
	MsgCancel

	MsgYesNoCancel = MsgYes | MsgNo | MsgCancel
	MsgOKCancel    = MsgOK | MsgCancel
)

var msgTitles = [...]string{"Warning", "Error", "Information", "Confirm"}

var msgButtons = []struct {
	flag  MsgFlags
	title string
	cmd   CommandID
}{
	{MsgYes, "~Y~es", CmYes},
	{MsgNo, "~N~o", CmNo},
	{MsgOK, "O~K~", CmOK},
	{MsgCancel, "Cancel", CmCancel},
}

const (
	msgWidth     = 40
	msgButtonW   = 10
	msgButtonGap = 2
)

// NewMessageBox builds a centered dialog showing text with the buttons
// in flags. The first button is the default.
func NewMessageBox(text string, flags MsgFlags) *Dialog {
	lines := wrapText(text, msgWidth-6)
	h := len(lines) + 6
	d := NewDialog(RectAt(0, 0, msgWidth, h), msgTitles[flags&0x3])
	d.SetOptions(OptCentered, true)
	d.Insert(NewStaticText(NewRect(3, 2, msgWidth-3, 2+len(lines)), text))

	var picked []*Button
	for _, b := range msgButtons {
		if flags&b.flag != 0 {
			picked = append(picked, NewButton(Rect{}, b.title, b.cmd, 0))
		}
	}
	total := len(picked)*msgButtonW + max(0, len(picked)-1)*msgButtonGap
	x := (msgWidth - total) / 2
	for i, b := range picked {
		if i == 0 {
			b.flags |= ButtonDefault
		}
		b.SetBounds(RectAt(x, h-3, msgButtonW, 2))
		d.Insert(b)
		x += msgButtonW + msgButtonGap
	}
	return d
}

// MessageBox shows a message box on p and waits for a button.
func MessageBox(p *Program, text string, flags MsgFlags) CommandID {
	return p.ExecView(NewMessageBox(text, flags))
}
