package physics

import (
	"reflect"
	"testing"
)

// mover is a minimal Moving implementation for tests.
type mover struct {
	bounds Rect
	xf     float64
}

func (m *mover) Bounds() Rect    { return m.bounds }
func (m *mover) XForce() float64 { return m.xf }

// spyTarget records every reaction dispatched to it. An optional hook runs
// on each reaction so tests can mutate state mid-resolution.
type spyTarget struct {
	bounds Rect
	calls  []Side
	movers []Moving
	hook   func(s Side)
}

func (t *spyTarget) Bounds() Rect { return t.bounds }

func (t *spyTarget) react(s Side, m Moving) {
	t.calls = append(t.calls, s)
	t.movers = append(t.movers, m)
	if t.hook != nil {
		t.hook(s)
	}
}

func (t *spyTarget) OnRightCollide(m Moving)  { t.react(SideRight, m) }
func (t *spyTarget) OnLeftCollide(m Moving)   { t.react(SideLeft, m) }
func (t *spyTarget) OnTopCollide(m Moving)    { t.react(SideTop, m) }
func (t *spyTarget) OnBottomCollide(m Moving) { t.react(SideBottom, m) }

func TestDetectSides(t *testing.T) {
	tests := []struct {
		name     string
		moving   Rect
		xForce   float64
		target   Rect
		expected []Side
	}{
		{
			name:     "right face hit while moving right",
			moving:   Rect{0, 0, 10, 10},
			xForce:   1,
			target:   Rect{9, 2, 15, 8},
			expected: []Side{SideRight},
		},
		{
			name:     "left face hit while moving left",
			moving:   Rect{0, 0, 10, 10},
			xForce:   -1,
			target:   Rect{-5, 2, 1, 8},
			expected: []Side{SideLeft},
		},
		{
			name:     "right face not hit when moving left",
			moving:   Rect{0, 0, 10, 10},
			xForce:   -1,
			target:   Rect{9, 2, 15, 8},
			expected: []Side{},
		},
		{
			name:     "top face hit",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{-20, 7, -15, 20},
			expected: []Side{SideTop},
		},
		{
			name:     "bottom face hit",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{-20, -10, -15, 3},
			expected: []Side{SideBottom},
		},
		{
			name:     "zero force allows both horizontal faces",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{3, 20, 7, 30},
			expected: []Side{SideRight, SideLeft},
		},
		{
			name:     "contained target hits all faces",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{3, 3, 7, 7},
			expected: []Side{SideRight, SideLeft, SideTop, SideBottom},
		},
		{
			name:     "vertical corner graze suppresses right",
			moving:   Rect{0, 0, 10, 10},
			xForce:   1,
			target:   Rect{5, 9.5, 15, 20},
			expected: []Side{SideTop},
		},
		{
			name:     "top-left corner touch fires nothing",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{-5, 10, 5, 15},
			expected: []Side{},
		},
		{
			name:     "horizontal corner graze suppresses bottom",
			moving:   Rect{0, 0, 10, 10},
			xForce:   0,
			target:   Rect{10, -10, 20, 3},
			expected: []Side{},
		},
		{
			name:     "fully disjoint",
			moving:   Rect{0, 0, 10, 10},
			xForce:   1,
			target:   Rect{30, 30, 40, 40},
			expected: []Side{},
		},
		{
			name:     "moving object fully inside target",
			moving:   Rect{3, 3, 7, 7},
			xForce:   1,
			target:   Rect{0, 0, 10, 10},
			expected: []Side{},
		},
	}

	r := NewResolver(DefaultPrecision)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &mover{bounds: tc.moving, xf: tc.xForce}
			got := r.DetectSides(m, StaticBounds(tc.target))
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("DetectSides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResolveDispatchesDetectedSidesOnly(t *testing.T) {
	r := NewResolver(DefaultPrecision)
	m := &mover{bounds: Rect{0, 0, 10, 10}, xf: 1}
	target := &spyTarget{bounds: Rect{9, 2, 15, 8}}

	r.Resolve(m, target)

	if len(target.calls) != 1 || target.calls[0] != SideRight {
		t.Fatalf("expected exactly one right reaction, got %v", target.calls)
	}
	if target.movers[0] != Moving(m) {
		t.Error("reaction should receive the moving object")
	}
}

func TestResolveDisjointDispatchesNothing(t *testing.T) {
	r := NewResolver(DefaultPrecision)
	m := &mover{bounds: Rect{0, 0, 10, 10}, xf: 1}
	target := &spyTarget{bounds: Rect{50, 50, 60, 60}}

	r.Resolve(m, target)

	if len(target.calls) != 0 {
		t.Errorf("expected no reactions for disjoint pair, got %v", target.calls)
	}
}

func TestResolveUsesPreReactionGeometry(t *testing.T) {
	// A contained target hits all four faces. The first reaction teleports
	// the target far away; the remaining three reactions must still fire
	// because the side set was computed before any dispatch.
	r := NewResolver(DefaultPrecision)
	m := &mover{bounds: Rect{0, 0, 10, 10}, xf: 0}
	target := &spyTarget{bounds: Rect{3, 3, 7, 7}}
	target.hook = func(Side) {
		target.bounds = Rect{100, 100, 110, 110}
	}

	r.Resolve(m, target)

	expected := []Side{SideRight, SideLeft, SideTop, SideBottom}
	if !reflect.DeepEqual(target.calls, expected) {
		t.Errorf("expected reactions %v from pre-reaction snapshot, got %v", expected, target.calls)
	}
}

func TestCornerExclusivity(t *testing.T) {
	// Whenever the target's top edge lines up with the mover's bottom edge
	// within epsilon, neither horizontal face may fire, no matter how much
	// the rects overlap on the X axis.
	r := NewResolver(DefaultPrecision)
	m := &mover{bounds: Rect{0, 0, 10, 10}, xf: 0}

	for _, offset := range []float64{-1, -0.5, 0, 0.5, 1} {
		target := StaticBounds(Rect{2, 10 + offset, 8, 20 + offset})
		for _, s := range r.DetectSides(m, target) {
			if s == SideRight || s == SideLeft {
				t.Errorf("offset %v: horizontal face %v fired during vertical corner touch", offset, s)
			}
		}
	}
}

func TestEpsilonMonotonicity(t *testing.T) {
	// For a fixed coordinate difference of 0.5, tightening the tolerance
	// must never turn the corner touch from false to true.
	mb := Rect{0, 0, 10, 10}
	tb := Rect{2, 10.5, 8, 20}

	prev := true
	for _, precision := range []int{-2, -1, 0, 1, 2, 4} {
		r := NewResolver(precision)
		touch := r.cornerTouchY(mb, tb)
		if touch && !prev {
			t.Errorf("precision %d: corner touch became true after being false at a looser tolerance", precision)
		}
		prev = touch
	}

	if NewResolver(-1).cornerTouchY(mb, tb) != true {
		t.Error("tolerance 10 should treat 0.5 apart as touching")
	}
	if NewResolver(1).cornerTouchY(mb, tb) != false {
		t.Error("tolerance 0.1 should not treat 0.5 apart as touching")
	}
}

func TestDegenerateRectsDoNotPanic(t *testing.T) {
	r := NewResolver(DefaultPrecision)
	degenerates := []Rect{
		{5, 5, 5, 5},   // zero area
		{10, 10, 0, 0}, // inverted
		{0, 0, 0, 10},  // zero width
	}

	for _, d := range degenerates {
		m := &mover{bounds: Rect{0, 0, 10, 10}, xf: 1}
		first := r.DetectSides(m, StaticBounds(d))
		second := r.DetectSides(m, StaticBounds(d))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("degenerate rect %+v: detection not deterministic", d)
		}

		m2 := &mover{bounds: d, xf: 1}
		r.Resolve(m2, &spyTarget{bounds: Rect{0, 0, 10, 10}})
	}
}

func TestResolverPrecisionConfig(t *testing.T) {
	tests := []struct {
		precision int
		epsilon   float64
	}{
		{0, 1.0},
		{1, 0.1},
		{3, 0.001},
		{-1, 10.0},
	}

	for _, tc := range tests {
		r := NewResolver(tc.precision)
		diff := r.Epsilon() - tc.epsilon
		if diff < -1e-12 || diff > 1e-12 {
			t.Errorf("precision %d: epsilon = %v, expected %v", tc.precision, r.Epsilon(), tc.epsilon)
		}
	}
}

func TestSideString(t *testing.T) {
	names := map[Side]string{
		SideRight:  "right",
		SideLeft:   "left",
		SideTop:    "top",
		SideBottom: "bottom",
		Side(42):   "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Side(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}
