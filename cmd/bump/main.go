// bump is a terminal collision playground: small physics scenes built around
// side-aware AABB collision resolution.
//
// Usage:
//
//	bump list                - List available scenes
//	bump play <scene>        - Play a scene
//	bump menu                - Start menu to pick scenes interactively
//	bump serve               - Start SSH server for remote play
//	bump scores <scene>      - Show best runs for a scene
//	bump resolve             - Resolve a single collision pair and print the sides
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.bump/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/nvoronin/tui-bump/internal/scenes/arena"
	_ "github.com/nvoronin/tui-bump/internal/scenes/platform"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bump",
	Short: "Bump - Collision playground in your terminal",
	Long: `Bump is a terminal playground for side-aware AABB collision
resolution. Each scene is a small simulation where every contact is
classified as a right, left, top or bottom hit and the target reacts
accordingly.

Available commands:
  list     - Show all available scenes
  play     - Play a specific scene directly
  menu     - Interactive scene picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs
  resolve  - Resolve one collision pair from the command line

Examples:
  bump list
  bump play platform
  bump menu
  bump serve --ssh :2222
  bump scores arena
  bump resolve --mover 0,0,10,10 --target 9,2,6,6 --x-force 1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bump/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resolveCmd)
}
