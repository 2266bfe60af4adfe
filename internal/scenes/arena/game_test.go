package arena

import (
	"math"
	"testing"

	"github.com/nvoronin/tui-bump/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     98765,
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%9 < 3:
			inputSequence[i].Set(core.ActionRight)
		case i%9 < 5:
			inputSequence[i].Set(core.ActionUp)
		case i%9 < 7:
			inputSequence[i].Set(core.ActionLeft)
		default:
			inputSequence[i].Set(core.ActionDown)
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
	if snap1.Tick != snap2.Tick || snap1.Lives != snap2.Lives {
		t.Errorf("determinism failed: tick/lives differ: %+v vs %+v", snap1, snap2)
	}
}

func TestResetRestoresLives(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	startLives := g.stats.Lives
	if startLives <= 0 {
		t.Fatalf("expected positive starting lives, got %d", startLives)
	}

	g.stats.Lives = 1
	g.tickCount = 500

	g.Reset(testConfig())

	if g.stats.Lives != startLives {
		t.Errorf("Reset should restore lives to %d, got %d", startLives, g.stats.Lives)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.drones) != g.cfg.Drones.Count {
		t.Errorf("Reset should respawn %d drones, got %d", g.cfg.Drones.Count, len(g.drones))
	}
}

func TestWallReflectsPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.drones = nil // isolate the player/wall pair

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 200; i++ {
		g.Step(in)
	}

	wantX := float64(testConfig().ScreenW) - 1 - g.player.W
	if math.Abs(g.player.X-wantX) > 1e-9 {
		t.Errorf("player should sit flush against the right wall at X=%v, got X=%v", wantX, g.player.X)
	}
}

func TestDroneHitCostsOneLifePerCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	startLives := g.stats.Lives
	p := g.player

	// One drone parked inside the player; the player's right and bottom
	// edges both sit strictly inside the drone's span, so a single resolve
	// dispatches two reactions onto the player. The cooldown must keep that
	// at one life.
	g.drones = []*Drone{{
		X: p.X + 1, Y: p.Y + 0.5,
		W: 3, H: 2,
		VX: 0, VY: 0,
		stats: &g.stats,
	}}

	g.Step(core.NewInputFrame())

	if g.stats.Lives != startLives-1 {
		t.Errorf("expected exactly one life lost, lives %d -> %d", startLives, g.stats.Lives)
	}
	if g.stats.Cooldown == 0 {
		t.Error("expected hit cooldown to be running")
	}
	if g.stats.Collisions < 2 {
		t.Errorf("expected both detected sides to dispatch, got %d collisions", g.stats.Collisions)
	}
}

func TestDroneCrashDeflectsOffPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	startLives := g.stats.Lives
	p := g.player

	// A drone flying rightward into the player's left edge. The drone is the
	// mover, so detection lands on the player's reactions, which must cost a
	// life and throw the drone back the way it came.
	g.drones = []*Drone{{
		X: p.X - 2, Y: p.Y + 0.5,
		W: 3, H: 2,
		VX: 0.5, VY: 0,
		stats: &g.stats,
	}}

	g.Step(core.NewInputFrame())

	if g.stats.Lives != startLives-1 {
		t.Errorf("drone strike should cost a life, lives %d -> %d", startLives, g.stats.Lives)
	}
	if g.drones[0].VX >= 0 {
		t.Errorf("drone should rebound off the player, got VX=%v", g.drones[0].VX)
	}
	if g.stats.Collisions == 0 {
		t.Error("player reactions should count the collision")
	}
}

func TestDronesBounceApart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.drones = []*Drone{
		{X: 10, Y: 10, W: 3, H: 2, VX: 0.5, stats: &g.stats},
		{X: 12, Y: 10.5, W: 3, H: 2, VX: -0.5, stats: &g.stats},
	}

	g.Step(core.NewInputFrame())

	if g.drones[0].VX >= 0 {
		t.Errorf("left drone should rebound leftward, got VX=%v", g.drones[0].VX)
	}
	if g.drones[1].VX <= 0 {
		t.Errorf("right drone should rebound rightward, got VX=%v", g.drones[1].VX)
	}
}

func TestGameOverFreezesScene(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.stats.Lives = 1
	p := g.player
	g.drones = []*Drone{{
		X: p.X + 1, Y: p.Y + 0.5,
		W: 3, H: 2,
		stats: &g.stats,
	}}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over after losing the last life")
	}

	snap := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("scene should freeze after game over")
	}
}
