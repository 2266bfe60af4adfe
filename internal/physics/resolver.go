package physics

import "math"

// DefaultPrecision is the default decimal precision for corner-touch
// equality: precision 0 means an epsilon of one full world unit. That is
// deliberately loose — it treats near-misses at box corners as corner
// contact — and should be tuned to the coordinate scale of the scene via
// the collision config.
const DefaultPrecision = 0

// Resolver detects which sides of a moving object overlap a target and
// dispatches the matching reactions on the target. It holds no state
// between calls and is safe to share across scenes as long as a given pair
// is not resolved concurrently.
type Resolver struct {
	epsilon float64
}

// NewResolver creates a Resolver whose corner-touch tolerance is
// 10^-precision world units.
func NewResolver(precision int) *Resolver {
	return &Resolver{epsilon: math.Pow(10, -float64(precision))}
}

// Epsilon returns the corner-touch tolerance in world units.
func (r *Resolver) Epsilon() float64 {
	return r.epsilon
}

// Resolve detects every side of m that t overlaps, then invokes the
// corresponding reaction on t for each, passing m. All sides are evaluated
// against a single geometry snapshot before the first reaction runs, so a
// reaction that moves the target cannot change which sides fire within the
// same call.
func (r *Resolver) Resolve(m Moving, t Collideable) {
	sides := r.DetectSides(m, t)
	for _, s := range sides {
		s.dispatch(t, m)
	}
}

// DetectSides returns the sides of m on which t's bounds penetrate, in a
// fixed order (right, left, top, bottom). The result is computed from the
// bounds as they are at call time; callers that need dispatch should use
// Resolve, which guarantees the snapshot semantics.
//
// A face counts as hit only when the target's opposing edge lies strictly
// inside the moving object's span on that axis; an edge that merely lines
// up with the boundary is a corner graze and is excluded by the corner
// checks. Right and left faces additionally require the travel direction
// to agree with the face (XForce >= 0 for right, <= 0 for left).
func (r *Resolver) DetectSides(m Moving, t Bounded) []Side {
	mb := m.Bounds()
	tb := t.Bounds()
	xf := m.XForce()

	cornerY := r.cornerTouchY(mb, tb)
	cornerX := r.cornerTouchX(mb, tb)

	checks := [...]struct {
		side Side
		hit  bool
	}{
		{SideRight, tb.MinX < mb.MaxX && tb.MinX > mb.MinX && xf >= 0 && !cornerY},
		{SideLeft, tb.MaxX > mb.MinX && tb.MaxX < mb.MaxX && xf <= 0 && !cornerY},
		{SideTop, tb.MinY < mb.MaxY && tb.MinY > mb.MinY && !cornerX},
		{SideBottom, tb.MaxY > mb.MinY && tb.MaxY < mb.MaxY && !cornerX},
	}

	sides := make([]Side, 0, len(checks))
	for _, c := range checks {
		if c.hit {
			sides = append(sides, c.side)
		}
	}
	return sides
}

// cornerTouchY reports whether the target's top or bottom edge lines up
// with the mover's bottom or top edge within epsilon. Such contact is a
// vertical corner graze and suppresses right/left face hits.
func (r *Resolver) cornerTouchY(mb, tb Rect) bool {
	return r.equalWithin(tb.MinY, mb.MaxY) || r.equalWithin(tb.MaxY, mb.MinY)
}

// cornerTouchX is the horizontal counterpart; it suppresses top/bottom
// face hits when the contact is really at a left/right corner.
func (r *Resolver) cornerTouchX(mb, tb Rect) bool {
	return r.equalWithin(tb.MaxX, mb.MinX) || r.equalWithin(tb.MinX, mb.MaxX)
}

func (r *Resolver) equalWithin(a, b float64) bool {
	return math.Abs(a-b) <= r.epsilon
}
