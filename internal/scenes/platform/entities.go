package platform

import (
	"github.com/nvoronin/tui-bump/internal/physics"
)

// RunStats accumulates the outcome of one run. Obstacle reactions write to
// it instead of reaching back into the scene.
type RunStats struct {
	Score      int
	Collisions int
	Over       bool
}

// Player is the moving object of the platform scene. It satisfies
// physics.Moving; obstacles mutate it through their reactions.
type Player struct {
	X, Y     float64 // top-left, world units
	W, H     float64
	VX, VY   float64
	OnGround bool
}

// Bounds returns the player's world-space bounding box.
func (p *Player) Bounds() physics.Rect {
	return physics.NewRect(p.X, p.Y, p.W, p.H)
}

// XForce returns the player's horizontal velocity; the resolver uses its
// sign to pick between right and left face hits.
func (p *Player) XForce() float64 {
	return p.VX
}

// Block is solid terrain: ground, walls and floating platforms. Each
// reaction pushes the player flush against the face that was hit and kills
// the velocity component pointing into the block.
type Block struct {
	rect  physics.Rect
	stats *RunStats
}

// NewBlock creates a solid block with the given bounds.
func NewBlock(rect physics.Rect, stats *RunStats) *Block {
	return &Block{rect: rect, stats: stats}
}

// Bounds returns the block's bounding box.
func (b *Block) Bounds() physics.Rect { return b.rect }

// OnRightCollide pushes the mover out to the left of the block.
func (b *Block) OnRightCollide(m physics.Moving) {
	b.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.X = b.rect.MinX - p.W
		p.VX = 0
	}
}

// OnLeftCollide pushes the mover out to the right of the block.
func (b *Block) OnLeftCollide(m physics.Moving) {
	b.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.X = b.rect.MaxX
		p.VX = 0
	}
}

// OnTopCollide lands the mover on the block's top face.
func (b *Block) OnTopCollide(m physics.Moving) {
	b.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.Y = b.rect.MinY - p.H
		p.VY = 0
		p.OnGround = true
	}
}

// OnBottomCollide bumps the mover's head on the block's underside.
func (b *Block) OnBottomCollide(m physics.Moving) {
	b.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.Y = b.rect.MaxY
		if p.VY < 0 {
			p.VY = 0
		}
	}
}

// Spring launches whatever lands on it. Side hits behave like a block so a
// spring cannot be walked through.
type Spring struct {
	rect    physics.Rect
	impulse float64
	stats   *RunStats
}

// NewSpring creates a spring with the given upward launch impulse.
func NewSpring(rect physics.Rect, impulse float64, stats *RunStats) *Spring {
	return &Spring{rect: rect, impulse: impulse, stats: stats}
}

// Bounds returns the spring's bounding box.
func (s *Spring) Bounds() physics.Rect { return s.rect }

// OnTopCollide launches the mover upward.
func (s *Spring) OnTopCollide(m physics.Moving) {
	s.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.Y = s.rect.MinY - p.H
		p.VY = s.impulse
		p.OnGround = false
	}
}

// OnRightCollide blocks the mover like solid terrain.
func (s *Spring) OnRightCollide(m physics.Moving) {
	s.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.X = s.rect.MinX - p.W
		p.VX = 0
	}
}

// OnLeftCollide blocks the mover like solid terrain.
func (s *Spring) OnLeftCollide(m physics.Moving) {
	s.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.X = s.rect.MaxX
		p.VX = 0
	}
}

// OnBottomCollide stops upward movement.
func (s *Spring) OnBottomCollide(m physics.Moving) {
	s.stats.Collisions++
	if p, ok := m.(*Player); ok {
		p.Y = s.rect.MaxY
		if p.VY < 0 {
			p.VY = 0
		}
	}
}

// Spike ends the run on contact from any side.
type Spike struct {
	rect  physics.Rect
	stats *RunStats
}

// NewSpike creates a spike hazard.
func NewSpike(rect physics.Rect, stats *RunStats) *Spike {
	return &Spike{rect: rect, stats: stats}
}

// Bounds returns the spike's bounding box.
func (s *Spike) Bounds() physics.Rect { return s.rect }

func (s *Spike) hit() {
	s.stats.Collisions++
	s.stats.Over = true
}

// OnRightCollide ends the run.
func (s *Spike) OnRightCollide(physics.Moving) { s.hit() }

// OnLeftCollide ends the run.
func (s *Spike) OnLeftCollide(physics.Moving) { s.hit() }

// OnTopCollide ends the run.
func (s *Spike) OnTopCollide(physics.Moving) { s.hit() }

// OnBottomCollide ends the run.
func (s *Spike) OnBottomCollide(physics.Moving) { s.hit() }

// Coin scores once and deactivates itself, whichever side it was touched
// on. An inactive coin keeps its bounds but the scene stops offering it as
// a candidate pair.
type Coin struct {
	rect   physics.Rect
	value  int
	Active bool
	stats  *RunStats
}

// NewCoin creates an active coin worth the given score.
func NewCoin(rect physics.Rect, value int, stats *RunStats) *Coin {
	return &Coin{rect: rect, value: value, Active: true, stats: stats}
}

// Bounds returns the coin's bounding box.
func (c *Coin) Bounds() physics.Rect { return c.rect }

func (c *Coin) collect() {
	c.stats.Collisions++
	if c.Active {
		c.Active = false
		c.stats.Score += c.value
	}
}

// OnRightCollide collects the coin.
func (c *Coin) OnRightCollide(physics.Moving) { c.collect() }

// OnLeftCollide collects the coin.
func (c *Coin) OnLeftCollide(physics.Moving) { c.collect() }

// OnTopCollide collects the coin.
func (c *Coin) OnTopCollide(physics.Moving) { c.collect() }

// OnBottomCollide collects the coin.
func (c *Coin) OnBottomCollide(physics.Moving) { c.collect() }
