package arena

import (
	"math"

	"github.com/nvoronin/tui-bump/internal/physics"
)

// RunStats accumulates the outcome of one run.
type RunStats struct {
	Score         int
	Collisions    int
	Lives         int
	Cooldown      int // ticks of post-hit invulnerability left
	CooldownReset int
}

// kinetic is the mutable view reactions need of whatever hit them: both the
// player and the drones expose position and velocity for adjustment.
type kinetic interface {
	physics.Moving
	velocity() (vx, vy float64)
	setVelocity(vx, vy float64)
	setPosition(x, y float64)
}

// Player is the dodging box. It is a Moving for wall resolution and a
// Collideable so drones crashing into it trigger its reactions.
type Player struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	stats  *RunStats
}

// Bounds returns the player's world-space bounding box.
func (p *Player) Bounds() physics.Rect {
	return physics.NewRect(p.X, p.Y, p.W, p.H)
}

// XForce returns the player's horizontal velocity.
func (p *Player) XForce() float64 { return p.VX }

func (p *Player) velocity() (float64, float64) { return p.VX, p.VY }
func (p *Player) setVelocity(vx, vy float64)   { p.VX, p.VY = vx, vy }
func (p *Player) setPosition(x, y float64)     { p.X, p.Y = x, y }

// damage takes one life unless the post-hit cooldown is still running.
func (p *Player) damage() {
	if p.stats.Cooldown > 0 {
		return
	}
	p.stats.Lives--
	p.stats.Cooldown = p.stats.CooldownReset
}

// struck damages the player and deflects the drone that hit it.
func (p *Player) struck(m physics.Moving, side physics.Side) {
	p.stats.Collisions++
	p.damage()
	if k, ok := m.(kinetic); ok {
		deflect(k, side)
	}
}

// OnRightCollide handles a drone crashing into the player from the left.
func (p *Player) OnRightCollide(m physics.Moving) { p.struck(m, physics.SideRight) }

// OnLeftCollide handles a drone crashing into the player from the right.
func (p *Player) OnLeftCollide(m physics.Moving) { p.struck(m, physics.SideLeft) }

// OnTopCollide handles a drone dropping onto the player.
func (p *Player) OnTopCollide(m physics.Moving) { p.struck(m, physics.SideTop) }

// OnBottomCollide handles a drone rising into the player.
func (p *Player) OnBottomCollide(m physics.Moving) { p.struck(m, physics.SideBottom) }

// Drone is a drifting box. Drones are Moving (they initiate checks against
// the walls, the player and each other) and Collideable (other drones bounce
// off them).
type Drone struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	stats  *RunStats
}

// Bounds returns the drone's world-space bounding box.
func (d *Drone) Bounds() physics.Rect {
	return physics.NewRect(d.X, d.Y, d.W, d.H)
}

// XForce returns the drone's horizontal velocity.
func (d *Drone) XForce() float64 { return d.VX }

func (d *Drone) velocity() (float64, float64) { return d.VX, d.VY }
func (d *Drone) setVelocity(vx, vy float64)   { d.VX, d.VY = vx, vy }
func (d *Drone) setPosition(x, y float64)     { d.X, d.Y = x, y }

// react bounces this drone away along the hit axis and rebounds the mover.
func (d *Drone) react(m physics.Moving, side physics.Side) {
	d.stats.Collisions++

	switch side {
	case physics.SideRight:
		d.VX = math.Abs(d.VX)
	case physics.SideLeft:
		d.VX = -math.Abs(d.VX)
	case physics.SideTop:
		d.VY = math.Abs(d.VY)
	case physics.SideBottom:
		d.VY = -math.Abs(d.VY)
	}

	if k, ok := m.(kinetic); ok {
		deflect(k, side)
	}
}

// OnRightCollide bounces the pair apart horizontally.
func (d *Drone) OnRightCollide(m physics.Moving) { d.react(m, physics.SideRight) }

// OnLeftCollide bounces the pair apart horizontally.
func (d *Drone) OnLeftCollide(m physics.Moving) { d.react(m, physics.SideLeft) }

// OnTopCollide bounces the pair apart vertically.
func (d *Drone) OnTopCollide(m physics.Moving) { d.react(m, physics.SideTop) }

// OnBottomCollide bounces the pair apart vertically.
func (d *Drone) OnBottomCollide(m physics.Moving) { d.react(m, physics.SideBottom) }

// deflect reverses the mover's velocity component pointing into the face it
// hit.
func deflect(k kinetic, side physics.Side) {
	vx, vy := k.velocity()
	switch side {
	case physics.SideRight:
		k.setVelocity(-math.Abs(vx), vy)
	case physics.SideLeft:
		k.setVelocity(math.Abs(vx), vy)
	case physics.SideTop:
		k.setVelocity(vx, -math.Abs(vy))
	case physics.SideBottom:
		k.setVelocity(vx, math.Abs(vy))
	}
}

// Wall is the arena boundary; it reflects whatever runs into it.
type Wall struct {
	rect  physics.Rect
	stats *RunStats
}

// NewWall creates a boundary wall.
func NewWall(rect physics.Rect, stats *RunStats) *Wall {
	return &Wall{rect: rect, stats: stats}
}

// Bounds returns the wall's bounding box.
func (w *Wall) Bounds() physics.Rect { return w.rect }

// reflect pushes the mover flush against the hit face and reverses the
// offending velocity component.
func (w *Wall) reflect(m physics.Moving, side physics.Side) {
	w.stats.Collisions++
	k, ok := m.(kinetic)
	if !ok {
		return
	}
	deflect(k, side)

	mb := m.Bounds()
	switch side {
	case physics.SideRight:
		k.setPosition(w.rect.MinX-mb.Width(), mb.MinY)
	case physics.SideLeft:
		k.setPosition(w.rect.MaxX, mb.MinY)
	case physics.SideTop:
		k.setPosition(mb.MinX, w.rect.MinY-mb.Height())
	case physics.SideBottom:
		k.setPosition(mb.MinX, w.rect.MaxY)
	}
}

// OnRightCollide reflects the mover off the wall's left face.
func (w *Wall) OnRightCollide(m physics.Moving) { w.reflect(m, physics.SideRight) }

// OnLeftCollide reflects the mover off the wall's right face.
func (w *Wall) OnLeftCollide(m physics.Moving) { w.reflect(m, physics.SideLeft) }

// OnTopCollide reflects the mover off the wall's top face.
func (w *Wall) OnTopCollide(m physics.Moving) { w.reflect(m, physics.SideTop) }

// OnBottomCollide reflects the mover off the wall's underside.
func (w *Wall) OnBottomCollide(m physics.Moving) { w.reflect(m, physics.SideBottom) }
