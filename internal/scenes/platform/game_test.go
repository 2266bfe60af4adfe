package platform

import (
	"testing"

	"github.com/nvoronin/tui-bump/internal/core"
	"github.com/nvoronin/tui-bump/internal/physics"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%60 == 10:
			inputSequence[i].Set(core.ActionJump)
		case i%7 < 4:
			inputSequence[i].Set(core.ActionRight)
		default:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.Score != snap2.Score {
		t.Errorf("determinism failed: tick/score differ: %+v vs %+v", snap1, snap2)
	}
}

func TestResetClearsState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 50; i++ {
		g.Step(in)
	}

	g.Reset(testConfig())

	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.stats != (RunStats{}) {
		t.Errorf("Reset should clear stats, got %+v", g.stats)
	}
	if g.player.X != 4 {
		t.Errorf("Reset should respawn player, got X=%v", g.player.X)
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spikes = nil
	g.springs = nil
	g.coins = nil

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	p := g.player
	if !p.OnGround {
		t.Fatal("player should be grounded after settling")
	}
	if p.Y != g.groundY-p.H {
		t.Errorf("player should rest flush on the ground: Y=%v, expected %v", p.Y, g.groundY-p.H)
	}
	if p.VY != 0 {
		t.Errorf("vertical velocity should be zero on the ground, got %v", p.VY)
	}
}

func TestRenderDrawsEveryPlatform(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(testConfig().ScreenW, testConfig().ScreenH)
	g.Render(screen)

	// The boundary blocks sit off screen; every floating platform after them
	// must show up. Coins may overwrite single cells, so one visible cell per
	// platform is enough.
	for i, b := range g.terrain[fixedTerrainCount:] {
		r := b.Bounds()
		found := false
		for x := int(r.MinX); x < int(r.MaxX+0.5) && !found; x++ {
			if screen.Get(x, int(r.MinY)) == BlockChar {
				found = true
			}
		}
		if !found {
			t.Errorf("platform %d at %+v not drawn", i, r)
		}
	}
}

func TestWallStopsPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spikes = nil
	g.springs = nil
	g.coins = nil
	// Leave only ground and walls so nothing interrupts the walk.
	g.terrain = g.terrain[:fixedTerrainCount]

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 500; i++ {
		g.Step(in)
	}

	p := g.player
	maxX := float64(g.runtime.ScreenW) - p.W
	if p.X > maxX {
		t.Errorf("player escaped through the right wall: X=%v, wall at %v", p.X, maxX)
	}
	if p.X != maxX {
		t.Errorf("player should be flush against the wall: X=%v, expected %v", p.X, maxX)
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spikes = nil
	g.springs = nil

	p := g.player
	coin := NewCoin(physics.NewRect(p.X+1, p.Y+0.5, 1, 1), g.cfg.World.CoinScore, &g.stats)
	g.coins = []*Coin{coin}

	g.Step(core.NewInputFrame())

	if coin.Active {
		t.Fatal("overlapping coin should have been collected")
	}
	if g.stats.Score != g.cfg.World.CoinScore {
		t.Errorf("score = %d, expected %d", g.stats.Score, g.cfg.World.CoinScore)
	}

	// Further ticks must not double-score the same coin.
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.stats.Score != g.cfg.World.CoinScore {
		t.Errorf("coin scored more than once: score = %d", g.stats.Score)
	}
}

func TestSpikeEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.springs = nil
	g.coins = nil

	p := g.player
	g.spikes = []*Spike{NewSpike(physics.NewRect(p.X+1, p.Y+0.5, 2, 1), &g.stats)}

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("touching a spike should end the run")
	}

	// Steps after game over are no-ops.
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("scene should freeze after game over")
	}
}

func TestSpringLaunchesPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spikes = nil
	g.coins = nil
	g.terrain = g.terrain[:fixedTerrainCount]

	// Let the player settle on the ground first.
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	p := g.player
	spring := NewSpring(
		physics.Rect{MinX: p.X, MinY: g.groundY - 1, MaxX: p.X + 3, MaxY: g.groundY},
		g.cfg.Physics.JumpImpulse*springImpulseFactor,
		&g.stats,
	)
	g.springs = []*Spring{spring}

	g.Step(core.NewInputFrame())

	if p.VY >= g.cfg.Physics.JumpImpulse {
		t.Errorf("spring should launch harder than a jump: VY=%v, jump impulse=%v",
			p.VY, g.cfg.Physics.JumpImpulse)
	}

	startY := p.Y
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if p.Y >= startY {
		t.Errorf("player should have risen after spring launch: startY=%v, Y=%v", startY, p.Y)
	}
}
