package tvision

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is a rectangle of cells. A is the top-left corner (inclusive) and
// B the bottom-right corner (exclusive). A rect with A.X == B.X or
// A.Y == B.Y is empty, which is a valid value meaning "nothing".
type Rect struct {
	A, B Point
}

// NewRect builds a rect from its corner coordinates.
func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect{Point{x1, y1}, Point{x2, y2}}.Normalize()
}

// RectAt builds a rect from an origin and a size.
func RectAt(x, y, w, h int) Rect {
	return NewRect(x, y, x+w, y+h)
}

// Normalize clamps an inverted rect to an empty one anchored at A.
func (r Rect) Normalize() Rect {
	if r.B.X < r.A.X {
		r.B.X = r.A.X
	}
	if r.B.Y < r.A.Y {
		r.B.Y = r.A.Y
	}
	return r
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.A.X >= r.B.X || r.A.Y >= r.B.Y
}

// Width returns the number of columns, never negative.
func (r Rect) Width() int {
	if r.B.X < r.A.X {
		return 0
	}
	return r.B.X - r.A.X
}

// Height returns the number of rows, never negative.
func (r Rect) Height() int {
	if r.B.Y < r.A.Y {
		return 0
	}
	return r.B.Y - r.A.Y
}

// Size returns width and height as a Point.
func (r Rect) Size() Point {
	return Point{r.Width(), r.Height()}
}

// Move returns r translated by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	r.A.X += dx
	r.A.Y += dy
	r.B.X += dx
	r.B.Y += dy
	return r
}

// MoveTo returns r with its top-left corner at p and the same size.
func (r Rect) MoveTo(p Point) Rect {
	return r.Move(p.X-r.A.X, p.Y-r.A.Y)
}

// Grow expands r by dx columns on both sides and dy rows on both sides.
// Negative values shrink it; over-shrinking yields an empty rect.
func (r Rect) Grow(dx, dy int) Rect {
	r.A.X -= dx
	r.A.Y -= dy
	r.B.X += dx
	r.B.Y += dy
	return r.Normalize()
}

// Intersect returns the overlap of r and o, empty when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		A: Point{max(r.A.X, o.A.X), max(r.A.Y, o.A.Y)},
		B: Point{min(r.B.X, o.B.X), min(r.B.Y, o.B.Y)},
	}
	if out.Empty() {
		return Rect{A: out.A, B: out.A}
	}
	return out
}

// Union returns the smallest rect covering both. An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o.Normalize()
	}
	if o.Empty() {
		return r
	}
	return Rect{
		A: Point{min(r.A.X, o.A.X), min(r.A.Y, o.A.Y)},
		B: Point{max(r.B.X, o.B.X), max(r.B.Y, o.B.Y)},
	}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.A.X && p.X < r.B.X && p.Y >= r.A.Y && p.Y < r.B.Y
}

// Local returns r expressed relative to its own top-left corner.
func (r Rect) Local() Rect {
	return Rect{B: r.Size()}
}
