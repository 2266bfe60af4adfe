// Package physics provides axis-aligned collision detection and side-specific
// reaction dispatch for the bump platform. It is the shared collision kernel:
// scenes describe their objects through the Bounded/Moving/Collideable
// contracts and a single Resolver handles every pair, whether it is a player
// against a static obstacle or two moving entities against each other.
//
// The package is stateless and performs no I/O; all side effects happen
// inside the reactions the participating objects implement.
package physics

// Rect is an axis-aligned bounding box in world coordinates.
// A well-formed Rect has MinX < MaxX and MinY < MaxY; degenerate rects are
// tolerated by the resolver but produce best-effort results only.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect builds a Rect from a top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Translate returns a copy of the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Overlaps reports whether two rects intersect with positive area.
// Edge-touching rects do not overlap. Scenes use this as the candidate-pair
// filter before handing a pair to the Resolver.
func (r Rect) Overlaps(other Rect) bool {
	return r.MinX < other.MaxX && r.MaxX > other.MinX &&
		r.MinY < other.MaxY && r.MaxY > other.MinY
}

// StaticBounds is a convenience Bounded implementation for fixed geometry.
type StaticBounds Rect

// Bounds returns the rect itself.
func (b StaticBounds) Bounds() Rect {
	return Rect(b)
}
