// internal/types/geometry.go
package types

// Point is a location in screen cells.
type Point struct {
	X int
	Y int
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned box in screen cells. Right and Bottom are the
// far edges (Left+Width, Top+Height).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NormalizedRect builds a Rect from two corners given in any order.
func NormalizedRect(x0, y0, x1, y1 int) Rect {
	return Rect{
		Left:   min(x0, x1),
		Top:    min(y0, y1),
		Right:  max(x0, x1),
		Bottom: max(y0, y1),
	}
}

// Overlaps reports whether r and o share any point. Boxes that only touch
// along an edge or a corner overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right < o.Left ||
		r.Left > o.Right ||
		r.Bottom < o.Top ||
		r.Top > o.Bottom)
}

// Contains reports whether the cell (x, y) lies inside r. The far edges are
// exclusive so a cell belongs to exactly one of two adjacent boxes.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Width returns Right-Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int { return r.Bottom - r.Top }
