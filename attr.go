package tvision

import "fmt"

// Color is one of the 16 fixed terminal colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "lightmagenta", "yellow", "white",
}

func (c Color) String() string {
	return colorNames[c&0x0F]
}

// Bright reports whether c is in the upper (high intensity) half.
func (c Color) Bright() bool {
	return c&0x08 != 0
}

// ansiIndex maps the PC color order to the ANSI SGR order
// (ANSI swaps blue/red and cyan/brown relative to CGA).
var ansiIndex = [8]uint8{0, 4, 2, 6, 1, 5, 3, 7}

// ANSI returns the ANSI 0-15 color number for c.
func (c Color) ANSI() uint8 {
	base := ansiIndex[c&0x07]
	if c.Bright() {
		return base + 8
	}
	return base
}

// Attr is a foreground/background color pair.
type Attr struct {
	Fg Color
	Bg Color
}

// FallbackAttr is what an unresolvable palette index draws with.
var FallbackAttr = Attr{Fg: Black, Bg: Black}

// NewAttr builds an attribute from a foreground and background color.
func NewAttr(fg, bg Color) Attr {
	return Attr{Fg: fg & 0x0F, Bg: bg & 0x0F}
}

// AttrFromByte decodes the packed 0xBF form (background nibble, then foreground nibble).
func AttrFromByte(b uint8) Attr {
	return Attr{Fg: Color(b & 0x0F), Bg: Color(b >> 4)}
}

// Byte packs the attribute as background nibble then foreground nibble.
func (a Attr) Byte() uint8 {
	return uint8(a.Bg&0x0F)<<4 | uint8(a.Fg&0x0F)
}

// Inverse swaps foreground and background.
func (a Attr) Inverse() Attr {
	return Attr{Fg: a.Bg, Bg: a.Fg}
}

func (a Attr) String() string {
	return fmt.Sprintf("%s on %s (0x%02X)", a.Fg, a.Bg, a.Byte())
}

// ShadowAttr is painted over cells covered by a view's shadow.
var ShadowAttr = Attr{Fg: DarkGray, Bg: Black}

// Cell is a single character position on the terminal.
type Cell struct {
	Rune rune
	Attr Attr
}

// EmptyCell returns a space in the default light-gray-on-black attribute.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Attr: Attr{Fg: LightGray, Bg: Black}}
}

// NewCell creates a cell with the given rune and attribute.
func NewCell(r rune, a Attr) Cell {
	return Cell{Rune: r, Attr: a}
}
