package tvision

// Background fills the desktop with a pattern rune.
type Background struct {
	ViewBase
	Pattern rune
}

// NewBackground creates a background covering bounds.
func NewBackground(bounds Rect, pattern rune) *Background {
	b := &Background{ViewBase: NewViewBase(bounds), Pattern: pattern}
	b.SetPalette(BackgroundPalette)
	return b
}

func (b *Background) Draw(c *Canvas) {
	c.Fill(b.bounds.Local(), b.Pattern, b.Color(c, 1))
}
