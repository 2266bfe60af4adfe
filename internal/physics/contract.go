package physics

// Bounded is anything exposing an axis-aligned bounding box in world space.
type Bounded interface {
	Bounds() Rect
}

// Moving is a Bounded object with a horizontal force component. Only the
// sign of XForce matters to the resolver: it breaks the tie between a right
// and a left face hit.
type Moving interface {
	Bounded
	XForce() float64
}

// Collideable is the contract an object must satisfy to receive collision
// reactions. The resolver calls exactly one method per detected side,
// passing the moving object that hit it. Both static obstacles and
// first-class entities implement this the same way, which is what lets one
// detection routine serve every pair type.
type Collideable interface {
	Bounded
	OnRightCollide(m Moving)
	OnLeftCollide(m Moving)
	OnTopCollide(m Moving)
	OnBottomCollide(m Moving)
}

// Side identifies the face of the moving object on which a collision
// occurred.
type Side int

const (
	SideRight Side = iota
	SideLeft
	SideTop
	SideBottom
)

// String returns a lowercase name for the side.
func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// dispatch invokes the reaction matching this side on the target.
func (s Side) dispatch(t Collideable, m Moving) {
	switch s {
	case SideRight:
		t.OnRightCollide(m)
	case SideLeft:
		t.OnLeftCollide(m)
	case SideTop:
		t.OnTopCollide(m)
	case SideBottom:
		t.OnBottomCollide(m)
	}
}
