// Package arena implements the bumper arena scene: a player box dodging
// drifting drones inside a walled box. Drones are both movers and collision
// targets, so a single resolver handles player-vs-wall, drone-vs-wall,
// player-vs-drone and drone-vs-drone pairs.
package arena

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
	DroneChar  = '◆'
	WallChar   = '▓'
	LifeChar   = '♥'
)

// scorePerTicks is how many survived ticks earn one point.
const scorePerTicks = 10

// Game implements the bumper arena scene logic.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.ArenaConfig
	resolver *physics.Resolver

	player *Player
	drones []*Drone
	walls  []*Wall

	stats     RunStats
	paused    bool
	tickCount int
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
	registry.Register("arena", func() registry.Scene { return New() })
}

// New creates a new bumper arena instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scene.
func (g *Game) ID() string {
	return "arena"
}

// Title returns the display name for this scene.
func (g *Game) Title() string {
	return "Bumper Arena"
}

// Reset initializes or restarts the scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
	}
	g.cfg = cfg

	precision := cfg.Collision.Precision
	if precisionOverride != nil {
		precision = *precisionOverride
	}
	g.resolver = physics.NewResolver(precision)

	g.stats = RunStats{
		Lives:         cfg.Gameplay.Lives,
		CooldownReset: cfg.Gameplay.HitCooldownTicks,
	}
	g.paused = false
	g.tickCount = 0

	w := float64(runtime.ScreenW)
	h := float64(runtime.ScreenH)

	g.player = &Player{
		X:     w/2 - cfg.Player.Width/2,
		Y:     h/2 - cfg.Player.Height/2,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		stats: &g.stats,
	}

	g.buildArena(rand.New(rand.NewSource(runtime.Seed)))
}

// buildArena places the boundary walls and seeds the drones.
func (g *Game) buildArena(rng *rand.Rand) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)

	// Walls extend past the corners so their edges never line up with a
	// mover's corners.
	g.walls = []*Wall{
		NewWall(physics.Rect{MinX: -20, MinY: -10, MaxX: w + 20, MaxY: 1}, &g.stats),
		NewWall(physics.Rect{MinX: -20, MinY: h - 1, MaxX: w + 20, MaxY: h + 10}, &g.stats),
		NewWall(physics.Rect{MinX: -10, MinY: -20, MaxX: 1, MaxY: h + 20}, &g.stats),
		NewWall(physics.Rect{MinX: w - 1, MinY: -20, MaxX: w + 10, MaxY: h + 20}, &g.stats),
	}

	g.drones = nil
	for i := 0; i < g.cfg.Drones.Count; i++ {
		g.drones = append(g.drones, g.spawnDrone(rng))
	}
}

// spawnDrone places one drone away from the player's starting position.
func (g *Game) spawnDrone(rng *rand.Rand) *Drone {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)

	d := &Drone{
		W:     g.cfg.Drones.Width,
		H:     g.cfg.Drones.Height,
		stats: &g.stats,
	}

	safe := g.player.Bounds()
	safe = physics.Rect{MinX: safe.MinX - 6, MinY: safe.MinY - 4, MaxX: safe.MaxX + 6, MaxY: safe.MaxY + 4}
	for {
		d.X = 2 + rng.Float64()*(w-4-d.W)
		d.Y = 2 + rng.Float64()*(h-4-d.H)
		if !d.Bounds().Overlaps(safe) {
			break
		}
	}

	speed := g.cfg.Drones.MinSpeed + rng.Float64()*(g.cfg.Drones.MaxSpeed-g.cfg.Drones.MinSpeed)
	angle := rng.Float64()
	d.VX = speed * (0.4 + 0.6*angle)
	d.VY = speed * (1.0 - 0.6*angle)
	if rng.Intn(2) == 0 {
		d.VX = -d.VX
	}
	if rng.Intn(2) == 0 {
		d.VY = -d.VY
	}
	return d
}

// Step advances the scene by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.stats.Lives <= 0 {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.stats.Cooldown > 0 {
		g.stats.Cooldown--
	}
	g.stats.Score = g.tickCount / scorePerTicks

	g.applyInput(in)
	g.integrate()
	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

// applyInput sets the player's velocity from this tick's actions. The
// player stops dead without input; dodging is all positioning.
func (g *Game) applyInput(in core.InputFrame) {
	p := g.player
	speed := g.cfg.Gameplay.PlayerSpeed

	p.VX = 0
	p.VY = 0
	if in.Has(core.ActionLeft) {
		p.VX = -speed
	}
	if in.Has(core.ActionRight) {
		p.VX = speed
	}
	if in.Has(core.ActionUp) {
		p.VY = -speed
	}
	if in.Has(core.ActionDown) {
		p.VY = speed
	}
}

// integrate moves the player and every drone.
func (g *Game) integrate() {
	g.player.X += g.player.VX
	g.player.Y += g.player.VY

	for _, d := range g.drones {
		d.X += d.VX
		d.Y += d.VY
	}
}

// resolveCollisions runs every overlapping pair through the shared resolver.
// The overlap filter is the candidate-pair discovery; the resolver decides
// sides and dispatches the reactions.
func (g *Game) resolveCollisions() {
	p := g.player

	pb := p.Bounds()
	for _, w := range g.walls {
		if pb.Overlaps(w.Bounds()) {
			g.resolver.Resolve(p, w)
			pb = p.Bounds()
		}
	}

	for _, d := range g.drones {
		db := d.Bounds()
		for _, w := range g.walls {
			if db.Overlaps(w.Bounds()) {
				g.resolver.Resolve(d, w)
				db = d.Bounds()
			}
		}
	}

	// Drones are the movers against the player, so the right/left tie-break
	// follows the drone's travel direction.
	pb = p.Bounds()
	for _, d := range g.drones {
		if pb.Overlaps(d.Bounds()) {
			g.resolver.Resolve(d, p)
		}
	}

	for i := 0; i < len(g.drones); i++ {
		for j := i + 1; j < len(g.drones); j++ {
			if g.drones[i].Bounds().Overlaps(g.drones[j].Bounds()) {
				g.resolver.Resolve(g.drones[i], g.drones[j])
			}
		}
	}
}

// State returns the current scene state.
func (g *Game) State() core.SceneState {
	return core.SceneState{
		Score:      g.stats.Score,
		Collisions: g.stats.Collisions,
		GameOver:   g.stats.Lives <= 0,
		Paused:     g.paused,
	}
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	for x := 0; x < w; x++ {
		dst.SetColored(x, 0, WallChar, core.ColorGray)
		dst.SetColored(x, h-1, WallChar, core.ColorGray)
	}
	for y := 0; y < h; y++ {
		dst.SetColored(0, y, WallChar, core.ColorGray)
		dst.SetColored(w-1, y, WallChar, core.ColorGray)
	}

	for _, d := range g.drones {
		drawWorldRect(dst, d.Bounds(), DroneChar, core.ColorBrightRed)
	}

	playerColor := core.ColorBrightGreen
	if g.stats.Cooldown > 0 && g.tickCount%4 < 2 {
		playerColor = core.ColorBrightYellow
	}
	drawWorldRect(dst, g.player.Bounds(), PlayerChar, playerColor)

	lives := ""
	for i := 0; i < g.stats.Lives; i++ {
		lives += string(LifeChar)
	}
	hud := fmt.Sprintf(" Score: %d  Bumps: %d  %s ", g.stats.Score, g.stats.Collisions, lives)
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if g.paused {
		dst.DrawTextCentered(h/2, "== PAUSED ==")
	}
	if g.stats.Lives <= 0 {
		dst.DrawTextCentered(h/2-1, "GAME OVER")
		dst.DrawTextCentered(h/2+1, "Press R to restart, Q to quit")
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
