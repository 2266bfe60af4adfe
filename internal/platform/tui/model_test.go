package tui

import (
	"path/filepath"
	"testing"

	"github.com/nvoronin/tui-bump/internal/core"
	"github.com/nvoronin/tui-bump/internal/storage"
)

// stubScene is a minimal scene that reports a fixed state on every step.
type stubScene struct {
	state core.SceneState
}

func (s *stubScene) ID() string                           { return "stub" }
func (s *stubScene) Title() string                        { return "Stub" }
func (s *stubScene) Reset(core.RuntimeConfig)             {}
func (s *stubScene) Step(core.InputFrame) core.StepResult { return core.StepResult{State: s.state} }
func (s *stubScene) Render(*core.Screen)                  {}
func (s *stubScene) State() core.SceneState               { return s.state }

func TestZeroScoreRunIsRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// A run can end before any score accrues; it must still be persisted
	// with its collision count.
	scene := &stubScene{state: core.SceneState{GameOver: true, Collisions: 3}}
	m := NewModel(scene, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	m.handleTick()

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Score != 0 || runs[0].Collisions != 3 {
		t.Errorf("recorded run = score %d, collisions %d; want 0 and 3", runs[0].Score, runs[0].Collisions)
	}
}
