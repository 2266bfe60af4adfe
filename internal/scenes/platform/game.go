// Package platform implements the platform sandbox scene: a player box
// jumping between solid blocks, springs, spikes and coins. Every obstacle
// kind implements the physics.Collideable contract with its own per-side
// reactions; one shared resolver handles all of them, including the ground
// and the arena walls, which are ordinary blocks.
package platform

import (
	"fmt"
	"math/rand"

	"github.com/nvoronin/tui-bump/internal/config"
	"github.com/nvoronin/tui-bump/internal/core"
	"github.com/nvoronin/tui-bump/internal/physics"
	"github.com/nvoronin/tui-bump/internal/registry"
)

// Visual characters for rendering.
const (
	PlayerChar = '█'
	BlockChar  = '▓'
	GroundChar = '═'
	CoinChar   = '●'
	SpikeChar  = '▲'
	SpringChar = '≈'
)

// springImpulseFactor scales the jump impulse for spring launches.
const springImpulseFactor = 1.6

// Game implements the platform sandbox scene logic.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.PlatformConfig
	resolver *physics.Resolver

	player  *Player
	terrain []*Block // ground, walls, floating platforms
	springs []*Spring
	spikes  []*Spike
	coins   []*Coin

	stats     RunStats
	paused    bool
	tickCount int
	groundY   float64
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// precisionOverride, when non-nil, takes precedence over the configured
// collision precision.
var precisionOverride *int

// SetPrecision overrides the collision precision from the CLI.
func SetPrecision(p int) {
	precisionOverride = &p
}

func init() {
	registry.Register("platform", func() registry.Scene { return New() })
}

// New creates a new platform sandbox instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scene.
func (g *Game) ID() string {
	return "platform"
}

// Title returns the display name for this scene.
func (g *Game) Title() string {
	return "Platform Sandbox"
}

// Reset initializes or restarts the scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatform(configPath)
	if err != nil {
		cfg = config.DefaultPlatformConfig()
	}
	g.cfg = cfg

	precision := cfg.Collision.Precision
	if precisionOverride != nil {
		precision = *precisionOverride
	}
	g.resolver = physics.NewResolver(precision)

	g.stats = RunStats{}
	g.paused = false
	g.tickCount = 0
	g.groundY = float64(runtime.ScreenH - 2)

	g.player = &Player{
		X: 4,
		Y: g.groundY - cfg.Player.Height,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}

	g.buildWorld(rand.New(rand.NewSource(runtime.Seed)))
}

// fixedTerrainCount is the number of boundary blocks buildWorld prepends to
// the terrain slice (ground plus the two side walls); everything after them
// is a floating platform.
const fixedTerrainCount = 3

// buildWorld places terrain and obstacles deterministically from the seed.
func (g *Game) buildWorld(rng *rand.Rand) {
	w := float64(g.runtime.ScreenW)

	g.terrain = []*Block{
		// Ground and walls are plain blocks; they extend past the visible
		// area so their edges never line up with the player's corners.
		NewBlock(physics.Rect{MinX: -20, MinY: g.groundY, MaxX: w + 20, MaxY: g.groundY + 10}, &g.stats),
		NewBlock(physics.Rect{MinX: -10, MinY: -50, MaxX: 0, MaxY: g.groundY + 10}, &g.stats),
		NewBlock(physics.Rect{MinX: w, MinY: -50, MaxX: w + 10, MaxY: g.groundY + 10}, &g.stats),
	}

	for i := 0; i < g.cfg.World.BlockCount; i++ {
		width := float64(6 + rng.Intn(7))
		x := 10 + rng.Float64()*(w-20-width)
		y := g.groundY - float64(4+rng.Intn(10))
		g.terrain = append(g.terrain, NewBlock(physics.Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + 1}, &g.stats))
	}

	g.springs = nil
	for i := 0; i < g.cfg.World.SpringCount; i++ {
		x := 12 + rng.Float64()*(w-24)
		rect := physics.Rect{MinX: x, MinY: g.groundY - 1, MaxX: x + 3, MaxY: g.groundY}
		g.springs = append(g.springs, NewSpring(rect, g.cfg.Physics.JumpImpulse*springImpulseFactor, &g.stats))
	}

	g.spikes = nil
	for i := 0; i < g.cfg.World.SpikeCount; i++ {
		x := 15 + rng.Float64()*(w-30)
		rect := physics.Rect{MinX: x, MinY: g.groundY - 1, MaxX: x + 2, MaxY: g.groundY}
		g.spikes = append(g.spikes, NewSpike(rect, &g.stats))
	}

	g.coins = nil
	for i := 0; i < g.cfg.World.CoinCount; i++ {
		x := 8 + rng.Float64()*(w-16)
		y := g.groundY - float64(2+rng.Intn(12))
		rect := physics.Rect{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1}
		g.coins = append(g.coins, NewCoin(rect, g.cfg.World.CoinScore, &g.stats))
	}
}

// Step advances the scene by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.stats.Over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.applyInput(in)
	g.integrate()
	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

// applyInput updates velocities from this tick's actions.
func (g *Game) applyInput(in core.InputFrame) {
	p := g.player

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -g.cfg.Physics.MoveForce
	case in.Has(core.ActionRight):
		p.VX = g.cfg.Physics.MoveForce
	default:
		p.VX *= g.cfg.Physics.Friction
		if p.VX > -0.01 && p.VX < 0.01 {
			p.VX = 0
		}
	}

	if in.Has(core.ActionJump) && p.OnGround {
		p.VY = g.cfg.Physics.JumpImpulse
		p.OnGround = false
	}
}

// integrate applies gravity and moves the player.
func (g *Game) integrate() {
	p := g.player

	p.VY += g.cfg.Physics.Gravity
	if p.VY > g.cfg.Physics.MaxFallSpeed {
		p.VY = g.cfg.Physics.MaxFallSpeed
	}

	p.X += p.VX
	p.Y += p.VY
}

// resolveCollisions runs every overlapping player/obstacle pair through the
// shared resolver. The overlap filter is the candidate-pair discovery; the
// resolver decides sides and dispatches the reactions.
func (g *Game) resolveCollisions() {
	p := g.player
	p.OnGround = false

	pb := p.Bounds()
	for _, b := range g.terrain {
		if pb.Overlaps(b.Bounds()) {
			g.resolver.Resolve(p, b)
			pb = p.Bounds()
		}
	}
	for _, s := range g.springs {
		if pb.Overlaps(s.Bounds()) {
			g.resolver.Resolve(p, s)
			pb = p.Bounds()
		}
	}
	for _, s := range g.spikes {
		if pb.Overlaps(s.Bounds()) {
			g.resolver.Resolve(p, s)
		}
	}
	for _, c := range g.coins {
		if c.Active && pb.Overlaps(c.Bounds()) {
			g.resolver.Resolve(p, c)
		}
	}
}

// State returns the current scene state.
func (g *Game) State() core.SceneState {
	return core.SceneState{
		Score:      g.stats.Score,
		Collisions: g.stats.Collisions,
		GameOver:   g.stats.Over,
		Paused:     g.paused,
	}
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, int(g.groundY), dst.Width(), GroundChar)

	for _, b := range g.terrain[fixedTerrainCount:] {
		drawWorldRect(dst, b.Bounds(), BlockChar, core.ColorGray)
	}
	for _, s := range g.springs {
		drawWorldRect(dst, s.Bounds(), SpringChar, core.ColorCyan)
	}
	for _, s := range g.spikes {
		drawWorldRect(dst, s.Bounds(), SpikeChar, core.ColorBrightRed)
	}
	for _, c := range g.coins {
		if c.Active {
			drawWorldRect(dst, c.Bounds(), CoinChar, core.ColorBrightYellow)
		}
	}

	drawWorldRect(dst, g.player.Bounds(), PlayerChar, core.ColorBrightGreen)

	hud := fmt.Sprintf(" Score: %d  Bumps: %d ", g.stats.Score, g.stats.Collisions)
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "== PAUSED ==")
	}
	if g.stats.Over {
		dst.DrawTextCentered(dst.Height()/2-1, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, "Press R to restart, Q to quit")
	}
}

// drawWorldRect rasterizes a world-space rect onto the cell grid.
func drawWorldRect(dst *core.Screen, r physics.Rect, fill rune, c core.Color) {
	for y := int(r.MinY); y < int(r.MaxY+0.5); y++ {
		for x := int(r.MinX); x < int(r.MaxX+0.5); x++ {
			dst.SetColored(x, y, fill, c)
		}
	}
}
