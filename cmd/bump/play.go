package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvoronin/tui-bump/internal/core"
	"github.com/nvoronin/tui-bump/internal/platform/tui"
	"github.com/nvoronin/tui-bump/internal/registry"
	"github.com/nvoronin/tui-bump/internal/scenes/arena"
	"github.com/nvoronin/tui-bump/internal/scenes/platform"
	"github.com/nvoronin/tui-bump/internal/storage"
)

var (
	flagConfig    string
	flagPrecision int
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene",
	Long: `Start playing the specified scene.

Controls:
  A/D, Left/Right - Move
  W/S, Up/Down    - Move (arena)
  Space           - Jump (platform)
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  bump play platform
  bump play arena --precision 2
  bump play platform --config ./my-platform.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().IntVar(&flagPrecision, "precision", 0, "Corner tolerance precision (epsilon = 10^-precision)")
}

// applySceneFlags pushes CLI overrides into the scene package before creation.
func applySceneFlags(cmd *cobra.Command, sceneID string) {
	switch sceneID {
	case "platform":
		platform.SetConfigPath(flagConfig)
		if cmd.Flags().Changed("precision") {
			platform.SetPrecision(flagPrecision)
		}
	case "arena":
		arena.SetConfigPath(flagConfig)
		if cmd.Flags().Changed("precision") {
			arena.SetPrecision(flagPrecision)
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'bump list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applySceneFlags(cmd, sceneID)

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - scene still works
		store = nil
	}

	runErr := tui.Run(scene, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
