// pkg/physics/rect.go
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a rectangle at pos with the given size.
func NewRect(pos Vector2D, width, height float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Height: height}
}

// Overlaps reports whether r and other share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
