package tvision

// Palette maps a 1-based logical color index to the index used by the next
// tier. An entry of 0, index 0, or an index past the end all mean "pass the
// index through unchanged".
//
// Color resolution walks exactly three tiers: the view's own palette, the
// container palette of the window or dialog it is drawn in, and the
// application palette whose entries are attribute bytes. The chain is fixed;
// a view nested several groups deep inside a dialog resolves exactly like a
// direct child of that dialog.
type Palette []uint8

// Map looks up index in p, passing it through when it is unmapped.
func (p Palette) Map(index uint8) uint8 {
	if index == 0 || int(index) > len(p) {
		return index
	}
	if v := p[index-1]; v != 0 {
		return v
	}
	return index
}

// AppPalette is the final tier: each entry is a packed attribute byte.
type AppPalette []uint8

// Attr returns the attribute for index, or FallbackAttr when the index is 0
// or out of range.
func (a AppPalette) Attr(index uint8) Attr {
	if index == 0 || int(index) > len(a) {
		return FallbackAttr
	}
	return AttrFromByte(a[index-1])
}

// With returns a copy of a with the given 1-based entries replaced.
// Indices outside the palette are ignored.
func (a AppPalette) With(overrides map[int]uint8) AppPalette {
	out := make(AppPalette, len(a))
	copy(out, a)
	for i, b := range overrides {
		if i >= 1 && i <= len(out) {
			out[i-1] = b
		}
	}
	return out
}

// Resolve maps a view's logical color through the view, container and
// application tiers. It never fails: holes at any tier pass through and an
// unresolvable final index yields FallbackAttr.
func Resolve(index uint8, view, container Palette, app AppPalette) Attr {
	return app.Attr(container.Map(view.Map(index)))
}

// AppColor is the default application palette.
//
//	1       desktop background
//	2-7     status line and menus
//	8-15    blue window
//	16-23   cyan window
//	24-31   gray window
//	32-63   gray dialog
//	64-95   blue dialog
//	96-127  cyan dialog
//	128-135 help
var AppColor = AppPalette{
	0x71, 0x70, 0x78, 0x74, 0x20, 0x28, 0x24, 0x17, 0x1F, 0x1A, 0x31, 0x31, 0x1E, 0x71, 0x1F,
	0x37, 0x3F, 0x3A, 0x13, 0x13, 0x3E, 0x21, 0x3F, 0x70, 0x7F, 0x7A, 0x13, 0x13, 0x70, 0x7F, 0x7E,
	0x70, 0x7F, 0x7A, 0x13, 0x13, 0x70, 0x70, 0x7F, 0x7E, 0x20, 0x2B, 0x2F, 0x78, 0x2E, 0x70, 0x30,
	0x3F, 0x3E, 0x1F, 0x2F, 0x1A, 0x20, 0x72, 0x31, 0x31, 0x30, 0x2F, 0x3E, 0x31, 0x13, 0x38, 0x00,
	0x17, 0x1F, 0x1A, 0x71, 0x71, 0x1E, 0x17, 0x1F, 0x1E, 0x20, 0x2B, 0x2F, 0x78, 0x2E, 0x10, 0x30,
	0x3F, 0x3E, 0x70, 0x2F, 0x7A, 0x20, 0x12, 0x31, 0x31, 0x30, 0x2F, 0x3E, 0x31, 0x13, 0x38, 0x00,
	0x37, 0x3F, 0x3A, 0x13, 0x13, 0x3E, 0x30, 0x3F, 0x3E, 0x20, 0x2B, 0x2F, 0x78, 0x2E, 0x30, 0x70,
	0x7F, 0x7E, 0x1F, 0x2F, 0x1A, 0x20, 0x32, 0x31, 0x71, 0x70, 0x2F, 0x7E, 0x71, 0x13, 0x78, 0x00,
	0x37, 0x3F, 0x3A, 0x13, 0x13, 0x30, 0x3E, 0x1E,
}

// Container tier tables.
var (
	BlueWindowPalette = Palette{8, 9, 10, 11, 12, 13, 14, 15}
	CyanWindowPalette = Palette{16, 17, 18, 19, 20, 21, 22, 23}
	GrayWindowPalette = Palette{24, 25, 26, 27, 28, 29, 30, 31}
	GrayDialogPalette = Palette{
		32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
		48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63,
	}
)

// View tier tables for the built-in views.
var (
	// passive frame, passive title, active frame, active title, icons
	FramePalette = Palette{1, 1, 2, 2, 3}
	// pattern
	BackgroundPalette = Palette{1}
	// text
	StaticTextPalette = Palette{6}
	// normal text, selected text, normal shortcut, selected shortcut
	LabelPalette = Palette{7, 8, 9, 9}
	// normal, default, selected, disabled, normal shortcut, default shortcut,
	// selected shortcut, shadow
	ButtonPalette = Palette{10, 11, 12, 13, 14, 14, 14, 15}
	// passive, active, selected, arrows
	InputLinePalette = Palette{19, 19, 20, 21}
	// normal text, disabled text, normal shortcut, selected text,
	// selected disabled, selected shortcut
	StatusLinePalette = Palette{2, 3, 4, 5, 6, 7}
)
