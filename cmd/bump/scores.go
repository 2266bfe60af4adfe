package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvoronin/tui-bump/internal/registry"
	"github.com/nvoronin/tui-bump/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <scene>",
	Short: "Show best runs for a scene",
	Long: `Display the top 10 runs for the specified scene.

Examples:
  bump scores platform
  bump scores arena`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'bump list' to see available scenes.")
		os.Exit(1)
	}

	// Get scene title
	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}
	title := scene.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(sceneID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bump play %s' to set the first best run!\n", sceneID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Bumps", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.Collisions, dateStr)
	}

	fmt.Println()
	best, err := store.BestScore(sceneID)
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
