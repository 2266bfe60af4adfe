package arena

import "math"

// DroneState captures one drone's position and velocity.
type DroneState struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot captures the full scene state for determinism tests and replay.
type Snapshot struct {
	Tick       int
	PlayerX    float64
	PlayerY    float64
	Lives      int
	Cooldown   int
	Score      int
	Collisions int
	Drones     []DroneState
}

// Snapshot returns the current scene state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	drones := make([]DroneState, len(g.drones))
	for i, d := range g.drones {
		drones[i] = DroneState{X: d.X, Y: d.Y, VX: d.VX, VY: d.VY}
	}

	return Snapshot{
		Tick:       g.tickCount,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		Lives:      g.stats.Lives,
		Cooldown:   g.stats.Cooldown,
		Score:      g.stats.Score,
		Collisions: g.stats.Collisions,
		Drones:     drones,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + math.Float64bits(s.PlayerX)
	h = h*31 + math.Float64bits(s.PlayerY)
	h = h*31 + uint64(s.Lives)      //#nosec G115 -- remaining lives are non-negative here
	h = h*31 + uint64(s.Cooldown)   //#nosec G115 -- cooldown is non-negative
	h = h*31 + uint64(s.Score)      //#nosec G115 -- score is non-negative
	h = h*31 + uint64(s.Collisions) //#nosec G115 -- counter is non-negative
	for _, d := range s.Drones {
		h = h*31 + math.Float64bits(d.X)
		h = h*31 + math.Float64bits(d.Y)
		h = h*31 + math.Float64bits(d.VX)
		h = h*31 + math.Float64bits(d.VY)
	}
	return h
}
