package platform

import "math"

// Snapshot captures the full scene state for determinism tests and replay.
type Snapshot struct {
	Tick       int
	PlayerX    float64
	PlayerY    float64
	PlayerVX   float64
	PlayerVY   float64
	OnGround   bool
	Score      int
	Collisions int
	Over       bool
	CoinActive []bool
}

// Snapshot returns the current scene state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	coins := make([]bool, len(g.coins))
	for i, c := range g.coins {
		coins[i] = c.Active
	}

	return Snapshot{
		Tick:       g.tickCount,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		PlayerVX:   g.player.VX,
		PlayerVY:   g.player.VY,
		OnGround:   g.player.OnGround,
		Score:      g.stats.Score,
		Collisions: g.stats.Collisions,
		Over:       g.stats.Over,
		CoinActive: coins,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + math.Float64bits(s.PlayerX)
	h = h*31 + math.Float64bits(s.PlayerY)
	h = h*31 + math.Float64bits(s.PlayerVX)
	h = h*31 + math.Float64bits(s.PlayerVY)
	h = h*31 + uint64(s.Score)      //#nosec G115 -- score is non-negative
	h = h*31 + uint64(s.Collisions) //#nosec G115 -- counter is non-negative
	if s.OnGround {
		h = h*31 + 1
	}
	if s.Over {
		h = h*31 + 1
	}
	for _, active := range s.CoinActive {
		h *= 31
		if active {
			h++
		}
	}
	return h
}
